package repositories

import (
	"errors"

	"sahyogjeevan/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and worker")
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id uint) (*models.Application, error)
	ListByWorker(workerID uint) ([]models.Application, error)
	ListByJob(jobID uint) ([]models.Application, error)
	UpdateStatus(id uint, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		// The unique index on (job_id, worker_id) enforces one application
		// per worker per job, including under concurrent applies.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("Job").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListByWorker(workerID uint) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Job").
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID uint) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Worker").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id uint, status models.ApplicationStatus) error {
	return r.db.Model(&models.Application{}).Where("id = ?", id).
		Update("status", status).Error
}
