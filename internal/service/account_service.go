package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"doclyn-be/internal/cache"
	"doclyn-be/internal/config"
	"doclyn-be/internal/entities"
	"doclyn-be/internal/models"
	"doclyn-be/internal/repository"
)

const (
	ActionCreateAccount = "createAccount"
	ActionSignIn        = "signIn"
)

// AccountService defines the interface for login/account-creation business logic.
// Business failures come back as success=false responses with a nil error;
// a non-nil error always means a storage/infrastructure fault.
type AccountService interface {
	ProcessLogin(req *models.UserLoginRequest) (*models.UserLoginResponse, error)
}

type accountService struct {
	repo     repository.UserRepository
	cache    cache.Cache
	mode     config.AccountMode
	cacheTTL time.Duration
	ctx      context.Context
}

// NewAccountService creates a new account service
func NewAccountService(repo repository.UserRepository, cacheClient cache.Cache, mode config.AccountMode, cacheTTL time.Duration) AccountService {
	svc := &accountService{
		repo:     repo,
		mode:     mode,
		cacheTTL: cacheTTL,
		ctx:      context.Background(),
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// ProcessLogin dispatches a login request to the configured mode
func (s *accountService) ProcessLogin(req *models.UserLoginRequest) (*models.UserLoginResponse, error) {
	if s.mode == config.ModeAction {
		return s.processAction(req)
	}
	return s.processUpsert(req)
}

// processUpsert handles upsert-mode logins: the row keyed by the
// caller-supplied id is created on first login and overwritten on every
// subsequent one.
func (s *accountService) processUpsert(req *models.UserLoginRequest) (*models.UserLoginResponse, error) {
	existing, err := s.findByID(req.ID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	message := "User created and login successful"
	user := &entities.User{
		ID:       req.ID,
		Email:    req.Email,
		FullName: req.FullName,
	}
	if existing != nil {
		if s.cache != nil && existing.Email != req.Email {
			s.cache.Delete(s.ctx, userEmailKey(existing.Email))
		}
		existing.Email = req.Email
		existing.FullName = req.FullName
		user = existing
		message = "User login successful"
	}

	saved, err := s.repo.Save(user)
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	s.cacheUser(saved)

	return &models.UserLoginResponse{
		Message:  message,
		Success:  true,
		ID:       &saved.ID,
		Email:    &saved.Email,
		FullName: &saved.FullName,
	}, nil
}

// processAction handles action-mode logins: explicit createAccount/signIn
// actions keyed by email, with exact-match password comparison.
func (s *accountService) processAction(req *models.UserLoginRequest) (*models.UserLoginResponse, error) {
	existing, err := s.findByEmail(req.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	switch req.Action {
	case ActionCreateAccount:
		if existing != nil {
			return models.Failure("An account with this email already exists"), nil
		}

		user := &entities.User{
			ID:       uuid.NewString(),
			Email:    req.Email,
			Password: req.Password,
		}
		created, err := s.repo.Create(user)
		if err != nil {
			if errors.Is(err, repository.ErrUserExists) {
				return models.Failure("An account with this email already exists"), nil
			}
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		s.cacheUser(created)

		return &models.UserLoginResponse{
			Message: "Account created successfully",
			Success: true,
		}, nil

	case ActionSignIn:
		// Same message for unknown email and wrong password so callers
		// cannot enumerate accounts
		if existing == nil || existing.Password != req.Password {
			return models.Failure("Invalid email or password"), nil
		}
		return &models.UserLoginResponse{
			Message: "Login successful",
			Success: true,
		}, nil

	default:
		return models.Failure("Invalid action specified"), nil
	}
}

// cachedUser mirrors entities.User with the password included, since the
// entity deliberately omits it from JSON
type cachedUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *cachedUser) toEntity() *entities.User {
	return &entities.User{
		ID:        c.ID,
		Email:     c.Email,
		FullName:  c.FullName,
		Password:  c.Password,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// findByID checks the cache before hitting the database
func (s *accountService) findByID(id string) (*entities.User, error) {
	if s.cache != nil {
		var cached cachedUser
		if err := s.cache.GetJSON(s.ctx, userIDKey(id), &cached); err == nil {
			return cached.toEntity(), nil
		}
	}

	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.cacheUser(user)
	return user, nil
}

// findByEmail checks the cache before hitting the database
func (s *accountService) findByEmail(email string) (*entities.User, error) {
	if s.cache != nil {
		var cached cachedUser
		if err := s.cache.GetJSON(s.ctx, userEmailKey(email), &cached); err == nil {
			return cached.toEntity(), nil
		}
	}

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	s.cacheUser(user)
	return user, nil
}

// cacheUser writes a user under both lookup keys; failures are ignored since
// the cache is best-effort
func (s *accountService) cacheUser(user *entities.User) {
	if s.cache == nil || user == nil {
		return
	}
	entry := &cachedUser{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Password:  user.Password,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	s.cache.SetJSON(s.ctx, userIDKey(user.ID), entry, s.cacheTTL)
	s.cache.SetJSON(s.ctx, userEmailKey(user.Email), entry, s.cacheTTL)
}

func userIDKey(id string) string {
	return fmt.Sprintf("user:id:%s", id)
}

func userEmailKey(email string) string {
	return fmt.Sprintf("user:email:%s", email)
}
