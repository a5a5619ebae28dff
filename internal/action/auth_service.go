package action

import (
	"context"
	"fmt"

	"boardhub/internal/auth"
	"boardhub/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// UserUpserter is the slice of the user repository the auth service needs.
type UserUpserter interface {
	UpsertByEmail(ctx context.Context, email, name string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type AuthService struct {
	users UserUpserter
}

func NewAuthService(users UserUpserter) *AuthService {
	return &AuthService{users: users}
}

// SignInOAuth upserts the user for a provider-verified identity. First
// sign-in creates the record; later sign-ins return it untouched.
func (s *AuthService) SignInOAuth(ctx context.Context, identity *auth.Identity) (*model.User, error) {
	user, err := s.users.UpsertByEmail(ctx, identity.Email, identity.Name)
	if err != nil {
		return nil, fmt.Errorf("upsert user %q: %w", identity.Email, err)
	}
	return user, nil
}

// SignInCredentials verifies the email/password pair against the stored
// bcrypt hash. Only the seeded test user carries a password; this path is
// gated behind ENABLE_TEST_LOGIN.
func (s *AuthService) SignInCredentials(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user %q: %w", email, err)
	}
	if user == nil || user.HashedPassword == "" {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
