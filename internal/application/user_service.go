package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/hirestack/jobboard-api/internal/domain/entity"
	repo "github.com/hirestack/jobboard-api/internal/domain/repository"
	"github.com/hirestack/jobboard-api/pkg/helpers"
	"github.com/hirestack/jobboard-api/pkg/mailer"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
)

// UserService owns signup, login, profile and password-reset flows.
type UserService struct {
	Repo          repo.UserRepository
	JWT           *helpers.JWTManager
	Redis         *redis.Client
	ResetTokenTTL time.Duration
	ResetURLBase  string
	GCS           *storage.Client
	GCSBucket     string
	Pub           *helpers.RabbitPublisher
	MailEnabled   bool
	Logger        *logrus.Logger
}

// AuthResult is what signup and login hand back to the HTTP layer.
type AuthResult struct {
	User        *entity.User
	Token       string
	TokenExpiry time.Time
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

func (s *UserService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = "user"
	}
	u := &entity.User{Email: in.Email, Password: hash, Name: in.Name, Role: role}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.enqueueEmail(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"Name": u.Name},
	})

	return s.issue(u)
}

func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *UserService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Generate(u.ID, u.Email, u.Role)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, err
	}
	return &AuthResult{User: u, Token: token, TokenExpiry: exp}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

type UpdateProfileInput struct {
	Name            string
	CurrentPassword string
	NewPassword     string
}

// UpdateProfile updates the display name and, when a (current, new) password
// pair is supplied, re-verifies the current password before re-hashing.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if in.NewPassword != "" {
		if !helpers.CompareHashAndPassword(u.Password, in.CurrentPassword) {
			return nil, ErrInvalidCredentials
		}
		hash, err := helpers.HashPassword(in.NewPassword)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	if in.Name != "" {
		u.Name = in.Name
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}

	if in.NewPassword != "" {
		s.enqueueEmail(ctx, mailer.EmailJob{
			To:       u.Email,
			Template: mailer.TemplatePasswordChanged,
			Data:     map[string]any{"Name": u.Name},
		})
	}
	return u, nil
}

// InitPasswordReset stores a one-shot reset token in Redis and mails the link.
// An unknown email yields no error so the endpoint cannot be used to enumerate
// accounts.
func (s *UserService) InitPasswordReset(ctx context.Context, email string) error {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil
		}
		return err
	}
	if s.Redis == nil {
		return nil
	}
	tok, err := helpers.GenOpaqueToken(32)
	if err != nil {
		return err
	}
	if err := helpers.StoreResetToken(ctx, s.Redis, tok, u.ID, s.ResetTokenTTL); err != nil {
		return err
	}
	s.enqueueEmail(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateResetPassword,
		Data: map[string]any{
			"Name":      u.Name,
			"ResetURL":  s.ResetURLBase + "?token=" + tok,
			"ExpiresIn": s.ResetTokenTTL.String(),
		},
	})
	return nil
}

var ErrResetTokenInvalid = errors.New("invalid or expired token")

// ConfirmPasswordReset consumes the token and stores the new password hash.
func (s *UserService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if s.Redis == nil {
		return ErrResetTokenInvalid
	}
	uid, err := helpers.ConsumeResetToken(ctx, s.Redis, token)
	if err != nil {
		return err
	}
	if uid == "" {
		return ErrResetTokenInvalid
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePassword(ctx, uid, hash); err != nil {
		return err
	}
	if u, err := s.Repo.GetByID(ctx, uid); err == nil && u != nil {
		s.enqueueEmail(ctx, mailer.EmailJob{
			To:       u.Email,
			Template: mailer.TemplatePasswordChanged,
			Data:     map[string]any{"Name": u.Name},
		})
	}
	return nil
}

// UploadAvatar stores the avatar in GCS and persists the public URL.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	u.AvatarURL = url
	if err := s.Repo.Update(ctx, u); err != nil {
		return "", err
	}
	return url, nil
}

func (s *UserService) enqueueEmail(ctx context.Context, job mailer.EmailJob) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("template", job.Template).Warn("failed to publish email job")
	}
}
