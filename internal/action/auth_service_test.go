package action_test

import (
	"context"
	"testing"

	"boardhub/internal/action"
	"boardhub/internal/auth"
	"boardhub/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserUpserter struct {
	mock.Mock
}

func (m *MockUserUpserter) UpsertByEmail(ctx context.Context, email, name string) (*model.User, error) {
	args := m.Called(ctx, email, name)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserUpserter) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func TestSignInOAuth_UpsertsByEmail(t *testing.T) {
	users := new(MockUserUpserter)
	svc := action.NewAuthService(users)

	expected := &model.User{ID: uuid.New(), Email: "test@example.com", Name: "Test User"}
	users.On("UpsertByEmail", mock.Anything, "test@example.com", "Test User").Return(expected, nil)

	user, err := svc.SignInOAuth(context.Background(), &auth.Identity{
		Email: "test@example.com",
		Name:  "Test User",
	})

	assert.NoError(t, err)
	assert.Equal(t, expected.ID, user.ID)
	users.AssertExpectations(t)
}

func TestSignInCredentials_UnknownEmail(t *testing.T) {
	users := new(MockUserUpserter)
	svc := action.NewAuthService(users)

	users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	_, err := svc.SignInCredentials(context.Background(), "ghost@example.com", "password123")

	assert.ErrorIs(t, err, action.ErrInvalidCredentials)
}

func TestSignInCredentials_UserWithoutPassword(t *testing.T) {
	users := new(MockUserUpserter)
	svc := action.NewAuthService(users)

	// OAuth users carry no password and cannot use the credentials path.
	users.On("FindByEmail", mock.Anything, "oauth@example.com").
		Return(&model.User{ID: uuid.New(), Email: "oauth@example.com"}, nil)

	_, err := svc.SignInCredentials(context.Background(), "oauth@example.com", "password123")

	assert.ErrorIs(t, err, action.ErrInvalidCredentials)
}

func TestSignInCredentials_WrongPassword(t *testing.T) {
	users := new(MockUserUpserter)
	svc := action.NewAuthService(users)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)
	users.On("FindByEmail", mock.Anything, "test@example.com").
		Return(&model.User{ID: uuid.New(), Email: "test@example.com", HashedPassword: string(hash)}, nil)

	_, err = svc.SignInCredentials(context.Background(), "test@example.com", "wrong")

	assert.ErrorIs(t, err, action.ErrInvalidCredentials)
}

func TestSignInCredentials_Success(t *testing.T) {
	users := new(MockUserUpserter)
	svc := action.NewAuthService(users)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)
	expected := &model.User{ID: uuid.New(), Email: "test@example.com", HashedPassword: string(hash)}
	users.On("FindByEmail", mock.Anything, "test@example.com").Return(expected, nil)

	user, err := svc.SignInCredentials(context.Background(), "test@example.com", "password123")

	assert.NoError(t, err)
	assert.Equal(t, expected.ID, user.ID)
}
