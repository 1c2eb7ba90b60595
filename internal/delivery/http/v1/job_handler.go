package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - job postings are world-readable.
	// Facets live at /facets rather than /jobs/facets to avoid colliding with
	// the /jobs/:id parameter.
	public.GET("/jobs", handler.Search)
	public.GET("/jobs/:id", handler.GetDetails)
	public.GET("/facets", handler.Facets)

	// PROTECTED routes - posting and managing jobs requires authentication
	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.Error(apperror.Validation("id", "numeric", "Invalid ID format"))
		return 0, false
	}
	return id, true
}

// Search godoc
// @Summary      Search jobs
// @Description  List jobs filtered by keyword, company, location and job type
// @Tags         jobs
// @Produce      json
// @Param        q          query     string  false  "Keyword matched against title and description"
// @Param        company    query     string  false  "Company substring"
// @Param        location   query     string  false  "Location substring"
// @Param        job_type   query     string  false  "Exact job type"  Enums(full-time, part-time, internship)
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filter := domain.JobFilter{
		Query:    c.Query("q"),
		Company:  c.Query("company"),
		Location: c.Query("location"),
		JobType:  domain.JobType(c.Query("job_type")),
	}

	jobs, total, err := h.jobUC.SearchJobs(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// Facets godoc
// @Summary      Search facets
// @Description  Distinct companies and job types for filter dropdowns
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /facets [get]
func (h *JobHandler) Facets(c *gin.Context) {
	facets, err := h.jobUC.JobFacets(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Search facets", facets)
}

// GetDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// Create godoc
// @Summary      Create a new job
// @Description  Create a job posting (employer or admin only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      domain.JobInput  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var input domain.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.Validation("body", "json", "Invalid request body"))
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), middleware.Actor(c), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Replace a posting's content (owner or admin only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int              true  "Job ID"
// @Param        job  body      domain.JobInput  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input domain.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.Validation("body", "json", "Invalid request body"))
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), middleware.Actor(c), id, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Delete a posting and its applications (owner or admin only)
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), middleware.Actor(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}
