package services

import (
	"context"
	"fmt"
	"time"

	"sahyogjeevan/internal/auth"
	"sahyogjeevan/internal/logger"
	"sahyogjeevan/internal/models"
	"sahyogjeevan/internal/repositories"
	"sahyogjeevan/internal/services/dto"
	"sahyogjeevan/internal/session"
	"sahyogjeevan/internal/sms"
	"sahyogjeevan/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	LoginWithPassword(req *dto.LoginRequest) (*models.User, error)
	RequestOTP(phone string) error
	VerifyOTP(phone, otp string) (*models.User, error)

	EstablishSession(ctx context.Context, user *models.User) (*session.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(userID uint) (*models.User, error)
}

type AuthServiceImpl struct {
	db          *gorm.DB
	userRepo    repositories.UserRepository
	smsProvider sms.Provider
	sessions    session.Store
	sessionTTL  time.Duration
}

func NewAuthService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	smsProvider sms.Provider,
	sessions session.Store,
	sessionTTL time.Duration,
) AuthService {
	return &AuthServiceImpl{
		db:          db,
		userRepo:    userRepo,
		smsProvider: smsProvider,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
	}
}

// Register creates a user with role-appropriate credentials. User, profile
// and settings rows go in one transaction so a failure leaves no orphans.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*models.User, error) {
	role := models.UserRole(req.Role)

	user := &models.User{Role: role}

	switch role {
	case models.UserRoleEmployer:
		if req.Username == "" || req.Password == "" {
			return nil, apperrors.NewBadRequestError("username and password are required for employer registration")
		}
		if err := auth.ValidatePassword(req.Password); err != nil {
			return nil, apperrors.ErrWeakPassword
		}
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.Username = &req.Username
		user.PasswordHash = &hashed
		if req.Email != "" {
			user.Email = &req.Email
		}

	case models.UserRoleWorker:
		if req.Phone == "" {
			return nil, apperrors.NewBadRequestError("phone is required for worker registration")
		}
		user.Phone = &req.Phone

	default:
		// Admin accounts are provisioned at startup, never self-registered.
		return nil, apperrors.ErrInvalidUserRole
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewUserRepository(tx).Create(user); err != nil {
			return err
		}

		settings := &models.UserSettings{
			UserID:            user.ID,
			PreferredLanguage: req.PreferredLanguage,
			Region:            req.Region,
		}
		if settings.PreferredLanguage == "" {
			settings.PreferredLanguage = "en"
		}
		if err := tx.Create(settings).Error; err != nil {
			return err
		}

		profile := &models.Profile{UserID: user.ID}
		return tx.Create(profile).Error
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "user", "username or phone already registered")
		}
		return nil, apperrors.InternalError(err)
	}

	return user.Sanitize(), nil
}

// LoginWithPassword is the employer path. Failure messages distinguish
// unknown username, phone-only accounts and hash mismatch.
func (s *AuthServiceImpl) LoginWithPassword(req *dto.LoginRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.NewBadRequestError("username and password are required")
	}

	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrIncorrectUsername
		}
		return nil, apperrors.InternalError(err)
	}

	if user.PasswordHash == nil {
		return nil, apperrors.ErrInvalidLoginMethod
	}

	if !auth.ComparePassword(req.Password, *user.PasswordHash) {
		return nil, apperrors.ErrIncorrectPassword
	}

	return user.Sanitize(), nil
}

// RequestOTP upserts the worker row for the phone and stores a fresh code
// with a 10-minute expiry. Delivery goes through the SMS provider.
func (s *AuthServiceImpl) RequestOTP(phone string) error {
	user, err := s.userRepo.FindByPhone(phone)
	if apperrors.Is(err, repositories.ErrUserNotFound) {
		user, err = s.createWorkerByPhone(phone)
	}
	if err != nil {
		return apperrors.InternalError(err)
	}

	otp := auth.GenerateOTP()
	expiry := auth.OTPExpiry()
	if err := s.userRepo.SetOTP(user.ID, otp, expiry); err != nil {
		return apperrors.InternalError(err)
	}

	msg := fmt.Sprintf("Your SahyogJeevan verification code is %s. Valid for 10 minutes.", otp)
	if err := s.smsProvider.Send(phone, msg); err != nil {
		// Delivery failure is not fatal to the stored OTP; the client can
		// retry send-otp.
		logger.Warn("failed to deliver OTP", "phone", phone, "error", err.Error())
	}

	return nil
}

func (s *AuthServiceImpl) createWorkerByPhone(phone string) (*models.User, error) {
	user := &models.User{
		Role:  models.UserRoleWorker,
		Phone: &phone,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewUserRepository(tx).Create(user); err != nil {
			return err
		}
		settings := &models.UserSettings{UserID: user.ID, PreferredLanguage: "en"}
		if err := tx.Create(settings).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{UserID: user.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyOTP checks phone + code. The stored code is cleared on the first
// successful verification, so replays fail.
func (s *AuthServiceImpl) VerifyOTP(phone, otp string) (*models.User, error) {
	user, err := s.userRepo.FindByPhone(phone)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrOTPInvalid
		}
		return nil, apperrors.InternalError(err)
	}

	if user.OTP == nil || user.OTPExpiresAt == nil {
		return nil, apperrors.ErrOTPInvalid
	}
	if time.Now().After(*user.OTPExpiresAt) {
		return nil, apperrors.ErrOTPExpired
	}
	if *user.OTP != otp {
		return nil, apperrors.ErrOTPInvalid
	}

	if err := s.userRepo.ClearOTP(user.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return user.Sanitize(), nil
}

// EstablishSession issues a session token for an authenticated user.
func (s *AuthServiceImpl) EstablishSession(ctx context.Context, user *models.User) (*session.Session, error) {
	sess := session.New(user.ID, user.Role, s.sessionTTL)
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return sess, nil
}

// Logout destroys the session. Idempotent: an unknown token is a no-op.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) CurrentUser(userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("user not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user.Sanitize(), nil
}
