package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"golang.org/x/crypto/bcrypt"

	"errandgo/internal/entities"
)

type Auth struct {
	repository UserRepository
	sessions   SessionStore
}

func New(repository UserRepository, sessions SessionStore) *Auth {
	return &Auth{
		repository: repository,
		sessions:   sessions,
	}
}

type SignUpParams struct {
	FullName        string
	Username        string
	Email           string
	Phone           string
	DateOfBirth     string
	Password        string
	ConfirmPassword string
}

func (s *Auth) SignUp(ctx context.Context, params SignUpParams) (*entities.User, string, error) {
	if params.FullName == "" ||
		params.Username == "" ||
		params.Email == "" ||
		params.Phone == "" ||
		params.DateOfBirth == "" ||
		params.Password == "" {
		return nil, "", ErrMissingRequiredFields
	}

	if !isValidEmail(params.Email) {
		return nil, "", ErrInvalidEmail
	}
	if !isValidPhone(params.Phone) {
		return nil, "", ErrInvalidPhone
	}
	if !isValidPassword(params.Password) {
		return nil, "", ErrPasswordTooShort
	}
	if params.Password != params.ConfirmPassword {
		return nil, "", ErrPasswordMismatch
	}

	age, ok := ageAt(params.DateOfBirth, time.Now())
	if !ok || age < minClientAge {
		return nil, "", ErrUnderage
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	role := entities.DefaultUserRole
	user, err := s.repository.Create(ctx, entities.UserModify{
		FullName:     pointer.To(strings.TrimSpace(params.FullName)),
		Username:     pointer.To(strings.TrimSpace(params.Username)),
		Email:        pointer.To(strings.ToLower(strings.TrimSpace(params.Email))),
		Phone:        pointer.To(strings.TrimSpace(params.Phone)),
		PasswordHash: pointer.To(string(hash)),
		Role:         &role,
	})
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.sessions.Create(ctx, user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	return user, token, nil
}

// SignIn authenticates by username. An email address in the username field is
// resolved through the email column, so either identifier works.
func (s *Auth) SignIn(ctx context.Context, username, password string) (*entities.User, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrMissingRequiredFields
	}

	user, err := s.lookupByIdentifier(ctx, strings.TrimSpace(username))
	if err != nil {
		// An unknown account reads the same as a wrong password from outside.
		return nil, "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	return user, token, nil
}

func (s *Auth) lookupByIdentifier(ctx context.Context, identifier string) (*entities.User, error) {
	if strings.Contains(identifier, "@") {
		return s.repository.GetByEmail(ctx, strings.ToLower(identifier))
	}
	return s.repository.GetByUsername(ctx, identifier)
}

func (s *Auth) SignOut(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *Auth) GetUser(ctx context.Context, userID int64) (*entities.User, error) {
	user, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

type UpdateProfileParams struct {
	UserID          int64
	FullName        *string
	Username        *string
	Email           *string
	Phone           *string
	Password        *string
	ConfirmPassword *string
}

// UpdateProfile is the self-service profile edit, including a password change
// when both password fields are supplied.
func (s *Auth) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*entities.User, error) {
	userModify := entities.UserModify{
		ID:       &params.UserID,
		FullName: params.FullName,
		Username: params.Username,
		Email:    params.Email,
		Phone:    params.Phone,
	}

	if params.Password != nil {
		if !isValidPassword(*params.Password) {
			return nil, ErrPasswordTooShort
		}
		if params.ConfirmPassword == nil || *params.Password != *params.ConfirmPassword {
			return nil, ErrPasswordMismatch
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(*params.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		userModify.PasswordHash = pointer.To(string(hash))
	}

	return s.UpdateUser(ctx, userModify)
}

func (s *Auth) UpdateUser(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.FullName == nil &&
		userModify.Username == nil &&
		userModify.Email == nil &&
		userModify.Phone == nil &&
		userModify.PasswordHash == nil &&
		userModify.Role == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if userModify.Email != nil && !isValidEmail(*userModify.Email) {
		return nil, ErrInvalidEmail
	}
	if userModify.Phone != nil && !isValidPhone(*userModify.Phone) {
		return nil, ErrInvalidPhone
	}

	user, err := s.repository.Update(ctx, userModify)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
