package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
	appUC   domain.ApplicationUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase, appUC domain.ApplicationUsecase) {
	handler := &AdminHandler{adminUC: adminUC, appUC: appUC}

	admin := protected.Group("/admin")
	{
		admin.GET("/stats", handler.Stats)
		admin.GET("/users", handler.ListUsers)
		admin.GET("/jobs", handler.ListJobs)
		admin.DELETE("/users/:id", handler.DeleteUser)
		admin.DELETE("/jobs/:id", handler.DeleteJob)
		admin.DELETE("/applications/:id", handler.DeleteApplication)
	}
}

// Stats godoc
// @Summary      Dashboard counters
// @Description  Totals of users, jobs and applications (admin only)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard stats", stats)
}

// ListUsers godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	users, total, err := h.adminUC.ListUsers(c.Request.Context(), middleware.Actor(c), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User list", gin.H{
		"users":     users,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// ListJobs godoc
// @Summary      List all jobs
// @Tags         admin
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/jobs [get]
// @Security     BearerAuth
func (h *AdminHandler) ListJobs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.adminUC.ListJobs(c.Request.Context(), middleware.Actor(c), page, pageSize)
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

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Remove a user with their jobs and applications (admin only, not self)
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.adminUC.DeleteUser(c.Request.Context(), middleware.Actor(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted", nil)
}

// DeleteJob godoc
// @Summary      Delete any job
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/jobs/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.adminUC.DeleteJob(c.Request.Context(), middleware.Actor(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// DeleteApplication godoc
// @Summary      Delete an application
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/applications/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.appUC.DeleteApplication(c.Request.Context(), middleware.Actor(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application deleted", nil)
}
