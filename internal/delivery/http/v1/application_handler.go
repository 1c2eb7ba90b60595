package v1

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC   domain.ApplicationUsecase
	resumes storage.ResumeStore
	cfg     *config.Config
}

func NewApplicationHandler(protected *gin.RouterGroup, appUC domain.ApplicationUsecase, resumes storage.ResumeStore, cfg *config.Config) {
	handler := &ApplicationHandler{appUC: appUC, resumes: resumes, cfg: cfg}

	uploadLimit := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(
		10, time.Duration(cfg.RateLimitWindowSeconds)*time.Second))

	protected.POST("/jobs/:id/apply", uploadLimit, handler.Apply)
	protected.GET("/jobs/:id/applicants", handler.ListApplicants)
	protected.GET("/me/applications", handler.MyApplications)
	protected.GET("/resumes/:ref", handler.DownloadResume)
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit a resume and optional cover letter; one application per job per user
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      int     true   "Job ID"
// @Param        resume        formData  file    true   "Resume (pdf, doc or docx)"
// @Param        cover_letter  formData  string  false  "Cover letter"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// Bound the whole multipart body before reading any of it.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.ResumeMaxBytes)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.Validation("resume", "required", "A resume file is required"))
		return
	}
	if fileHeader.Size > h.cfg.ResumeMaxBytes {
		c.Error(apperror.Validation("resume", "max_size", "Resume exceeds the maximum allowed size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Storage(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.Storage(err))
		return
	}

	app, err := h.appUC.Apply(c.Request.Context(), middleware.Actor(c), id, c.PostForm("cover_letter"), domain.ResumeUpload{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListApplicants godoc
// @Summary      List a job's applicants
// @Description  Applications for a job, oldest first (owner or admin only)
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applicants [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	apps, err := h.appUC.ListApplicantsFor(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant list", gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

// MyApplications godoc
// @Summary      List own applications
// @Description  The authenticated user's applications, newest first
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /me/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	apps, err := h.appUC.ListApplicationsOf(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Your applications", gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

// DownloadResume godoc
// @Summary      Download a resume
// @Description  Stream a stored resume by its opaque reference
// @Tags         applications
// @Produce      application/octet-stream
// @Param        ref  path      string  true  "Resume reference"
// @Success      200  {file}    file
// @Failure      404  {object}  response.Response
// @Router       /resumes/{ref} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	ref := c.Param("ref")

	reader, err := h.resumes.Open(c.Request.Context(), ref)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.Error(apperror.NotFound("resume", "Resume not found"))
			return
		}
		c.Error(apperror.Storage(err))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(ref))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", "attachment; filename=\""+filepath.Base(ref)+"\"")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are gone already; nothing sane to send back.
		return
	}
}
