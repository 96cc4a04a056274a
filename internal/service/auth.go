package service

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/franchise-api/internal/repository"
)

type SessionRepository interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (string, error)
	Consume(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type AuthService struct {
	userRepo    UserRepository
	sessionRepo SessionRepository
	privateKey  *rsa.PrivateKey
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

func NewAuthService(userRepo UserRepository, sessionRepo SessionRepository, privateKey *rsa.PrivateKey, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		privateKey:  privateKey,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
	}
}

// Login checks the credentials and opens a session. Unknown emails and wrong
// passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Session{}, ErrWrongCredentials
		}
		return domain.Session{}, fmt.Errorf("s.userRepo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.Session{}, ErrWrongCredentials
	}

	return s.openSession(ctx, user)
}

// Refresh consumes a refresh token and opens a new session for its user.
// A token can only be used once.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.Session, error) {
	if refreshToken == "" {
		return domain.Session{}, ErrInvalidSession
	}

	id, err := s.sessionRepo.Consume(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domain.Session{}, ErrInvalidSession
		}
		return domain.Session{}, fmt.Errorf("s.sessionRepo.Consume -> %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Session{}, ErrInvalidSession
		}
		return domain.Session{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	return s.openSession(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := s.sessionRepo.Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("s.sessionRepo.Delete -> %w", err)
	}

	return nil
}

// RegisterAdmin creates the first administrator. It fails once any
// administrator exists.
func (s *AuthService) RegisterAdmin(ctx context.Context, user domain.User) (domain.User, error) {
	exists, err := s.userRepo.AdminExists(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.userRepo.AdminExists -> %w", err)
	}
	if exists {
		return domain.User{}, ErrAdminExists
	}

	hash, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashPassword -> %w", err)
	}
	user.Password = hash
	user.Role = domain.RoleAdmin
	user.FranchiseID = nil

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return domain.User{}, translate(err, "s.userRepo.Create", nil)
	}

	return created, nil
}

func (s *AuthService) openSession(ctx context.Context, user domain.User) (domain.Session, error) {
	accessToken, err := jwthelper.GenerateAccessToken(s.privateKey, user, s.accessTTL)
	if err != nil {
		return domain.Session{}, fmt.Errorf("jwthelper.GenerateAccessToken -> %w", err)
	}

	refreshToken, err := s.sessionRepo.Create(ctx, user.ID, s.refreshTTL)
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.sessionRepo.Create -> %w", err)
	}

	return domain.Session{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
