package dto

type CreateApplicationRequest struct {
	JobID uint    `json:"jobId" validate:"required"`
	Note  *string `json:"note,omitempty" validate:"omitempty,max=1000"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}
