package services

import (
	"sahyogjeevan/internal/models"
	"sahyogjeevan/internal/repositories"
	"sahyogjeevan/internal/services/dto"
	"sahyogjeevan/pkg/apperrors"

	"github.com/lib/pq"
)

type ProfileService interface {
	Get(userID uint) (*models.Profile, error)
	Upsert(userID uint, req *dto.UpsertProfileRequest) (*models.Profile, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

// Get returns the user's profile, or an empty default when none was saved
// yet (registration creates one, but old rows may predate that).
func (s *ProfileServiceImpl) Get(userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if apperrors.Is(err, repositories.ErrProfileNotFound) {
		return &models.Profile{UserID: userID}, nil
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) Upsert(userID uint, req *dto.UpsertProfileRequest) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:             userID,
		Bio:                req.Bio,
		Skills:             pq.StringArray(req.Skills),
		Location:           req.Location,
		ContactInfo:        req.ContactInfo,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
	}
	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
