package services

import (
	"encoding/json"

	"sahyogjeevan/internal/models"
	"sahyogjeevan/internal/repositories"
	"sahyogjeevan/internal/services/dto"
	"sahyogjeevan/pkg/apperrors"
)

type JobService interface {
	Create(employerID uint, req *dto.CreateJobRequest, companyLogo, previewImage string) (*models.Job, error)
	GetByID(id uint) (*models.Job, error)
	ListOpen() ([]models.Job, error)
	ListByEmployer(employerID uint) ([]models.Job, error)
	Close(id, employerID uint) (*models.Job, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

// Create builds a job from the multipart form. Requirements and benefits
// arrive as JSON-encoded arrays; malformed input is the caller's error, not
// a 500.
func (s *JobServiceImpl) Create(employerID uint, req *dto.CreateJobRequest, companyLogo, previewImage string) (*models.Job, error) {
	requirements, err := parseStringArray(req.Requirements)
	if err != nil {
		return nil, apperrors.NewBadRequestError("requirements must be a JSON array of strings")
	}
	benefits, err := parseStringArray(req.Benefits)
	if err != nil {
		return nil, apperrors.NewBadRequestError("benefits must be a JSON array of strings")
	}

	job := &models.Job{
		EmployerID:   employerID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Salary:       req.Salary,
		JobType:      models.JobType(req.JobType),
		Status:       models.JobStatusOpen,
		CompanyLogo:  companyLogo,
		PreviewImage: previewImage,
	}
	job.SetRequirements(requirements)
	job.SetBenefits(benefits)

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) GetByID(id uint) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ListOpen() ([]models.Job, error) {
	jobs, err := s.jobRepo.ListOpen()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) ListByEmployer(employerID uint) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// Close transitions a job to closed. Only the owning employer may close.
func (s *JobServiceImpl) Close(id, employerID uint) (*models.Job, error) {
	job, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrNotJobOwner
	}

	if err := s.jobRepo.UpdateStatus(id, models.JobStatusClosed); err != nil {
		return nil, apperrors.InternalError(err)
	}
	job.Status = models.JobStatusClosed
	return job, nil
}

// parseStringArray decodes a JSON string array, treating "" as empty.
func parseStringArray(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}
