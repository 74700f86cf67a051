package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	userRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/user"
	"github.com/m04kA/SMC-BarberService/internal/service/auth/models"
)

const minPasswordLength = 6

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Service регистрация и вход сотрудников барбершопа
type Service struct {
	userRepo   UserRepository
	tokens     TokenIssuer
	bcryptCost int
	logger     Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(userRepo UserRepository, tokens TokenIssuer, bcryptCost int, logger Logger) *Service {
	return &Service{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register создаёт аккаунт барбершопа и сразу выдаёт токен
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	slug := strings.ToLower(strings.TrimSpace(req.ShopSlug))
	name := strings.TrimSpace(req.Name)

	s.logger.Info("Register: registering shop slug=%s", slug)

	if name == "" || len([]rune(name)) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("%w: shopSlug must contain lowercase letters, digits and dashes", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		ShopSlug:     slug,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserExists) {
			s.logger.Warn("Register: email or slug already taken (slug=%s)", slug)
			return nil, ErrUserExists
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created user id=%d", user.ID)
	return s.issue(user)
}

// Login проверяет пароль и выдаёт токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return s.issue(user)
}

func (s *Service) issue(user *domain.User) (*models.TokenResponse, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID, user.ShopSlug)
	if err != nil {
		s.logger.Error("issue: failed to sign token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	return &models.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      models.FromDomainUser(user),
	}, nil
}
