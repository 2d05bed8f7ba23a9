package handlers

import (
	"net/http"

	"sahyogjeevan/internal/middleware"
	"sahyogjeevan/internal/models"
	"sahyogjeevan/internal/services"
	"sahyogjeevan/internal/services/dto"
	"sahyogjeevan/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		appService:  appService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/applications")
	apps.Use(middleware.RequireAuth())
	{
		apps.POST("", middleware.RequireRoles(models.UserRoleWorker), h.Create)
		apps.GET("/worker", middleware.RequireRoles(models.UserRoleWorker), h.ListForWorker)

		employerOnly := apps.Group("")
		employerOnly.Use(middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin))
		{
			employerOnly.GET("/employer/:jobId", h.ListForJob)
			employerOnly.PUT("/:id/status", h.UpdateStatus)
		}
	}
}

// Create
// @Summary  Apply to a job (worker session)
// @Tags     applications
// @Accept   json
// @Produce  json
// @Success  201 {object} models.Application
// @Router   /api/applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	workerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.appService.Apply(workerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) ListForWorker(c *gin.Context) {
	workerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	apps, err := h.appService.ListForWorker(workerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID, err := ParseParamUint(c, "jobId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	apps, err := h.appService.ListForJob(jobID, employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateStatus
// @Summary  Transition an application's status (owning employer only)
// @Tags     applications
// @Router   /api/applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.appService.UpdateStatus(id, employerID, models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
