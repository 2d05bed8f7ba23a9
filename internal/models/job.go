package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Job is a posting owned by an employer. Requirements and Benefits are
// string lists stored as jsonb.
type Job struct {
	BaseModel
	EmployerID   uint           `gorm:"not null;index" json:"employerId"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `json:"description"`
	Location     string         `json:"location"`
	Salary       string         `json:"salary"` // free text, e.g. "15000/month"
	Requirements datatypes.JSON `gorm:"type:jsonb" json:"requirements" swaggerignore:"true"`
	Benefits     datatypes.JSON `gorm:"type:jsonb" json:"benefits" swaggerignore:"true"`
	JobType      JobType        `gorm:"type:varchar(20)" json:"type"`
	Status       JobStatus      `gorm:"type:varchar(20);default:'open';index" json:"status"`
	CompanyLogo  string         `json:"companyLogo,omitempty"`
	PreviewImage string         `json:"previewImage,omitempty"`

	Employer *User `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
}

// GetRequirements decodes the jsonb requirements list.
func (j *Job) GetRequirements() []string {
	var out []string
	if len(j.Requirements) > 0 {
		_ = json.Unmarshal(j.Requirements, &out)
	}
	return out
}

// SetRequirements encodes the requirements list as jsonb.
func (j *Job) SetRequirements(reqs []string) {
	data, _ := json.Marshal(reqs)
	j.Requirements = datatypes.JSON(data)
}

// GetBenefits decodes the jsonb benefits list.
func (j *Job) GetBenefits() []string {
	var out []string
	if len(j.Benefits) > 0 {
		_ = json.Unmarshal(j.Benefits, &out)
	}
	return out
}

// SetBenefits encodes the benefits list as jsonb.
func (j *Job) SetBenefits(benefits []string) {
	data, _ := json.Marshal(benefits)
	j.Benefits = datatypes.JSON(data)
}
