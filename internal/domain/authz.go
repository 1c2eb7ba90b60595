package domain

// Action names an operation subject to access control.
type Action string

const (
	ActionCreateJob         Action = "create_job"
	ActionEditJob           Action = "edit_job"
	ActionDeleteJob         Action = "delete_job"
	ActionViewApplicants    Action = "view_applicants"
	ActionApply             Action = "apply"
	ActionDeleteApplication Action = "delete_application"
	ActionDeleteUser        Action = "delete_user"
	ActionViewAll           Action = "view_all"
)

// Denial reasons, one per policy-table rule.
const (
	ReasonAdminRequired          = "admin_required"
	ReasonEmployerRequired       = "employer_required"
	ReasonNotOwner               = "not_owner"
	ReasonOwnJob                 = "own_job"
	ReasonInsufficientCapability = "insufficient_capability"
)

type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Authorize is the access-control policy table: a pure, total function over
// (actor, action, job). Rules are evaluated in order, first match wins.
//
// Applying to one's own job is denied before the admin short-circuit: a job's
// owner can never apply to it, regardless of any other capability.
//
// The job argument is the target posting for job-scoped actions (including
// view_applicants, whose target is the job the applicants belong to) and nil
// otherwise.
func Authorize(actor *User, action Action, job *Job) Decision {
	if actor == nil {
		return deny(ReasonInsufficientCapability)
	}

	if action == ActionApply && job != nil && job.OwnerID == actor.ID {
		return deny(ReasonOwnJob)
	}

	if actor.IsAdmin {
		return allow()
	}

	switch action {
	case ActionCreateJob:
		if actor.IsEmployer {
			return allow()
		}
		return deny(ReasonEmployerRequired)

	case ActionEditJob, ActionDeleteJob, ActionViewApplicants:
		if job != nil && job.OwnerID == actor.ID {
			return allow()
		}
		return deny(ReasonNotOwner)

	case ActionApply:
		// Seeker is the implicit capability; duplicate submissions are caught
		// by the workflow's uniqueness guarantee, not here.
		return allow()

	case ActionDeleteApplication, ActionDeleteUser, ActionViewAll:
		return deny(ReasonAdminRequired)
	}

	return deny(ReasonInsufficientCapability)
}
