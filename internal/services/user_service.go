package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"user-management-api/internal/config"
	"user-management-api/internal/constants"
	"user-management-api/internal/helpers"
	"user-management-api/internal/models"
	"user-management-api/internal/store"
	"user-management-api/pkg/utils"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService orchestrates registration, login, listing and the
// administrative status and bulk operations. Status transitions happen only
// here; login never changes status.
type UserService struct {
	store store.UserStore
	jwt   *JWTService
	auth  config.AuthConfig
}

func NewUserService(userStore store.UserStore, jwtService *JWTService, auth config.AuthConfig) *UserService {
	return &UserService{
		store: userStore,
		jwt:   jwtService,
		auth:  auth,
	}
}

// Register creates a new account and returns it together with a signed
// token. The raw password is hashed before it reaches the store.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	email = utils.NormalizeEmail(email)

	if name == "" {
		return nil, "", &ValidationError{Field: "name", Reason: "name is required"}
	}
	if email == "" {
		return nil, "", &ValidationError{Field: "email", Reason: "email is required"}
	}
	if !emailPattern.MatchString(email) {
		return nil, "", &ValidationError{Field: "email", Reason: "invalid email format"}
	}
	if password == "" {
		return nil, "", &ValidationError{Field: "password", Reason: "password is required"}
	}
	if len(password) < s.auth.PasswordStrength.MinLength {
		return nil, "", &ValidationError{
			Field:  "password",
			Reason: fmt.Sprintf("password must be at least %d characters long", s.auth.PasswordStrength.MinLength),
		}
	}

	hashed, err := helpers.HashPassword(password, s.auth.Bcrypt.Cost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Status:   constants.StatusActive,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials and returns the account with a fresh token.
// The password is checked before the status, so a blocked account with a
// wrong password still reports invalid credentials rather than revealing
// its existence.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = utils.NormalizeEmail(email)

	if email == "" {
		return nil, "", &ValidationError{Field: "email", Reason: "email is required"}
	}
	if password == "" {
		return nil, "", &ValidationError{Field: "password", Reason: "password is required"}
	}

	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	match, err := helpers.CheckPassword(password, user.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		return nil, "", ErrInvalidCredentials
	}

	if user.IsBlocked() {
		return nil, "", ErrAccountBlocked
	}

	if err := s.store.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, "", fmt.Errorf("failed to update last login: %w", err)
	}

	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ListUsers returns all accounts. Password hashes never serialize (the
// model hides them from JSON).
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.List(ctx)
}

// SetStatus moves the account with the given email to the given status.
func (s *UserService) SetStatus(ctx context.Context, email string, status constants.UserStatus) error {
	email = utils.NormalizeEmail(email)

	if email == "" {
		return &ValidationError{Field: "email", Reason: "email is required"}
	}
	if !constants.IsValidStatus(status) {
		return &ValidationError{Field: "status", Reason: "status must be 'active' or 'blocked'"}
	}

	if err := s.store.UpdateStatusByEmail(ctx, email, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

// BulkAction applies block, unblock or delete to the given id set as a
// best-effort batch. IDs with no matching account are no-ops.
func (s *UserService) BulkAction(ctx context.Context, ids []uint, action constants.BulkAction) error {
	if len(ids) == 0 {
		return &ValidationError{Field: "userIds", Reason: "at least one user id is required"}
	}
	if !constants.IsValidBulkAction(action) {
		return &ValidationError{Field: "action", Reason: "action must be 'block', 'unblock' or 'delete'"}
	}

	var err error
	switch action {
	case constants.ActionBlock:
		err = s.store.UpdateStatusByIDs(ctx, ids, constants.StatusBlocked)
	case constants.ActionUnblock:
		err = s.store.UpdateStatusByIDs(ctx, ids, constants.StatusActive)
	case constants.ActionDelete:
		err = s.store.DeleteByIDs(ctx, ids)
	}
	if err != nil {
		return fmt.Errorf("failed to %s users: %w", action, err)
	}
	return nil
}
