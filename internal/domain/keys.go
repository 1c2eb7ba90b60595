package domain

type CtxKey string

const (
	// KeyActor holds the resolved *User for the current request.
	KeyActor     CtxKey = "Actor"
	KeyRequestID CtxKey = "RequestID"
)
