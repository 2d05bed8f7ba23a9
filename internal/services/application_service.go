package services

import (
	"fmt"

	"sahyogjeevan/internal/email"
	"sahyogjeevan/internal/logger"
	"sahyogjeevan/internal/models"
	"sahyogjeevan/internal/repositories"
	"sahyogjeevan/internal/services/dto"
	"sahyogjeevan/pkg/apperrors"
)

type ApplicationService interface {
	Apply(workerID uint, req *dto.CreateApplicationRequest) (*models.Application, error)
	ListForWorker(workerID uint) ([]models.Application, error)
	ListForJob(jobID, employerID uint) ([]models.Application, error)
	UpdateStatus(id, employerID uint, status models.ApplicationStatus) (*models.Application, error)
}

type ApplicationServiceImpl struct {
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	emails   email.Sender
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	emails email.Sender,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		emails:   emails,
	}
}

// Apply creates a pending application. One per (job, worker); closed jobs
// reject applications.
func (s *ApplicationServiceImpl) Apply(workerID uint, req *dto.CreateApplicationRequest) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrJobClosed
	}

	app := &models.Application{
		JobID:    req.JobID,
		WorkerID: workerID,
		Status:   models.ApplicationStatusPending,
		Note:     req.Note,
	}
	if err := s.appRepo.Create(app); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifyEmployer(job)

	return app, nil
}

// notifyEmployer emails the job owner about a new application when they
// registered an address. Best effort: failure never surfaces to the worker.
func (s *ApplicationServiceImpl) notifyEmployer(job *models.Job) {
	employer, err := s.userRepo.FindByID(job.EmployerID)
	if err != nil || employer.Email == nil {
		return
	}

	subject := fmt.Sprintf("New application for %q", job.Title)
	body := fmt.Sprintf("A worker has applied to your posting %q. Review it in your dashboard.", job.Title)
	if err := s.emails.Send(*employer.Email, subject, body); err != nil {
		logger.Warn("failed to notify employer of new application",
			"employer_id", employer.ID, "job_id", job.ID, "error", err.Error())
	}
}

func (s *ApplicationServiceImpl) ListForWorker(workerID uint) ([]models.Application, error) {
	apps, err := s.appRepo.ListByWorker(workerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// ListForJob returns applications for a job the employer owns.
func (s *ApplicationServiceImpl) ListForJob(jobID, employerID uint) ([]models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrNotJobOwner
	}

	apps, err := s.appRepo.ListByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// UpdateStatus applies an enum-validated transition, restricted to the
// owning employer.
func (s *ApplicationServiceImpl) UpdateStatus(id, employerID uint, status models.ApplicationStatus) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, apperrors.ErrInvalidStatus("application",
			"status must be one of: pending, shortlisted, accepted, rejected")
	}

	app, err := s.appRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	job := app.Job
	if job == nil {
		job, err = s.jobRepo.FindByID(app.JobID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrNotJobOwner
	}

	if err := s.appRepo.UpdateStatus(id, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	app.Status = status
	return app, nil
}
