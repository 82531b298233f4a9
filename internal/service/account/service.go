package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"retify/internal/domain"
	identityrepo "retify/internal/repository/identity"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when email/password do not match. Unknown
// emails and wrong passwords are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service handles registration and login. Passwords are stored as bcrypt
// hashes, never as plaintext.
type Service struct {
	repo identityrepo.Repository
}

func New(repo identityrepo.Repository) *Service {
	return &Service{repo: repo}
}

// RegisterInput captures fields expected by the register endpoint.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// Register creates the identity record and returns the session-facing
// profile snapshot. A taken email fails with domain.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Profile, error) {
	if strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: email required", domain.ErrInvalidInput)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, domain.User{
		Email:        in.Email,
		PasswordHash: string(hashed),
		Name:         in.Name,
		Phone:        in.Phone,
	})
	if err != nil {
		return nil, err
	}
	profile := created.Profile()
	return &profile, nil
}

// Login verifies credentials and returns the profile snapshot to bind into
// the session.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Profile, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	profile := u.Profile()
	return &profile, nil
}
