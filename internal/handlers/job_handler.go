package handlers

import (
	"mime/multipart"
	"net/http"
	"path/filepath"

	"sahyogjeevan/internal/middleware"
	"sahyogjeevan/internal/models"
	"sahyogjeevan/internal/services"
	"sahyogjeevan/internal/services/dto"
	"sahyogjeevan/internal/storage"
	"sahyogjeevan/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
	storage    storage.Storage
	maxUpload  int64
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, store storage.Storage, maxUpload int64) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
		storage:     store,
		maxUpload:   maxUpload,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.List)
		jobs.GET("/:id", h.GetByID)

		employerOnly := jobs.Group("")
		employerOnly.Use(middleware.RequireAuth(), middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin))
		{
			employerOnly.POST("", h.Create)
			employerOnly.PUT("/:id/close", h.Close)
		}
	}

	employer := rg.Group("/employer")
	employer.Use(middleware.RequireAuth(), middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin))
	{
		employer.GET("/jobs", h.ListByEmployer)
	}
}

// Create
// @Summary  Create a job posting (multipart form with optional images)
// @Tags     jobs
// @Accept   multipart/form-data
// @Produce  json
// @Success  201 {object} models.Job
// @Router   /api/jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	companyLogo, ok := h.saveUpload(c, "companyLogo")
	if !ok {
		return
	}
	previewImage, ok := h.saveUpload(c, "previewImage")
	if !ok {
		return
	}

	job, err := h.jobService.Create(employerID, &req, companyLogo, previewImage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// saveUpload stores an optional form file under a generated name and
// returns its public URL. A missing file is fine; a failed save is not.
func (h *JobHandler) saveUpload(c *gin.Context, field string) (string, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", true // field absent
	}

	if file.Size > h.maxUpload {
		apperrors.HandleError(c, apperrors.NewBadRequestError(field+" exceeds the upload size limit"))
		return "", false
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := h.saveFile(c, file, name); err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return "", false
	}

	return h.storage.URL(name), true
}

func (h *JobHandler) saveFile(c *gin.Context, file *multipart.FileHeader, name string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	return h.storage.Save(c.Request.Context(), name, src)
}

// List returns all open jobs, newest first.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobService.ListOpen()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetByID(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	job, err := h.jobService.GetByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) ListByEmployer(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListByEmployer(employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Close transitions the employer's own job to closed.
func (h *JobHandler) Close(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	job, err := h.jobService.Close(id, employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
