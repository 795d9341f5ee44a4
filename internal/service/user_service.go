package service

import (
	"context"
	"errors"

	"app/internal/apperror"
	"app/internal/model"
	"app/internal/repository"
	"app/internal/sec"
)

var (
	// ErrUserNotFound means no user exists for the presented email address.
	ErrUserNotFound = apperror.NewAuth("user not found")
	// ErrPasswordMismatch means the user exists but the password is wrong.
	ErrPasswordMismatch = apperror.NewAuth("password mismatch")
	// ErrEmailTaken means the email address is already registered.
	ErrEmailTaken = apperror.NewValidation([]string{"The email you entered already exists"})
)

type UserService interface {
	// Create hashes the plaintext password and persists the user.
	Create(ctx context.Context, u *model.User, password string) error
	// Authenticate resolves a user by email address and verifies the password
	// against the stored salted hash. It returns ErrUserNotFound or
	// ErrPasswordMismatch on failure; callers must not expose which one.
	Authenticate(ctx context.Context, emailAddress, password string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	hasher   sec.PasswordHasher
}

func NewUserService(userRepo repository.UserRepository, hasher sec.PasswordHasher) UserService {
	return &userService{userRepo: userRepo, hasher: hasher}
}

func (s *userService) Create(ctx context.Context, u *model.User, password string) error {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return apperror.NewInternal("failed to hash password", err)
	}
	u.PasswordHash = digest

	if err := s.userRepo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return apperror.NewInternal("failed to create user", err)
	}
	return nil
}

func (s *userService) Authenticate(ctx context.Context, emailAddress, password string) (*model.User, error) {
	// Lookup is by exact, case-sensitive email match.
	u, err := s.userRepo.GetUserByEmail(ctx, emailAddress)
	if err != nil {
		return nil, apperror.NewInternal("failed to look up user", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, ErrPasswordMismatch
	}
	return u, nil
}
