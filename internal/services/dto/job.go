package dto

// CreateJobRequest is bound from multipart form fields. Requirements and
// Benefits arrive as JSON-encoded string arrays, matching the web client.
type CreateJobRequest struct {
	Title        string `form:"title" json:"title" validate:"required,min=2,max=120"`
	Description  string `form:"description" json:"description"`
	Location     string `form:"location" json:"location" validate:"required"`
	Salary       string `form:"salary" json:"salary"`
	JobType      string `form:"type" json:"type" validate:"required,is-job-type"`
	Requirements string `form:"requirements" json:"requirements"` // JSON array
	Benefits     string `form:"benefits" json:"benefits"`         // JSON array
}
