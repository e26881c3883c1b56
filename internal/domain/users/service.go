package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption-workflow/internal/domain/workflow"
	"pet-adoption-workflow/internal/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"component": "users"}),
		now:  time.Now,
	}
}

// Register crea un usuario con contraseña explícita.
func (s *Service) Register(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, workflow.Validation("username and password are required")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return User{}, err
	}

	u, err := s.repo.Create(ctx, User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return User{}, workflow.Storage("create user", err)
	}

	s.log.Info("user registered", map[string]any{"username": u.Username, "user_id": u.ID})
	return u, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return User{}, workflow.Validation("username is required")
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return User{}, workflow.Storage("get user", err)
	}
	return u, nil
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", workflow.Validation("password too long")
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// PlaceholderPasswordHash genera la credencial de los usuarios creados por un
// envío de cuestionario: hash de un secreto aleatorio que nadie conoce.
func PlaceholderPasswordHash() (string, error) {
	return HashPassword(uuid.NewString())
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
