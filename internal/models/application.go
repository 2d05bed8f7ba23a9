package models

// Application links a worker to a job. One row per (job, worker) pair;
// status transitions belong to the job's owning employer.
type Application struct {
	BaseModel
	JobID    uint              `gorm:"not null;uniqueIndex:idx_applications_job_worker" json:"jobId"`
	WorkerID uint              `gorm:"not null;uniqueIndex:idx_applications_job_worker" json:"workerId"`
	Status   ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Note     *string           `json:"note,omitempty"`

	Job    *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Worker *User `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
}
