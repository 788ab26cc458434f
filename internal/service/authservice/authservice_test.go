package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/Stiofain-MacMathuna/airgead/internal/domain"
	"github.com/Stiofain-MacMathuna/airgead/pkg/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	return service, repo, hashService, jwtService
}

var testUserID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		username      string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			username: "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = testUserID
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           testUserID,
				Username:     "testuser",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "User already exists",
			username: "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "testuser").Return(&domain.User{Username: "testuser"}, nil)
			},
			expectedUser:  nil,
			expectedError: ErrUserExists,
		},
		{
			name:     "Hashing failure",
			username: "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hash error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("hash error"),
		},
		{
			name:     "Repository failure",
			username: "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "testuser").Return(nil, errors.New("db error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.username, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		username      string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful authentication",
			username: "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "testuser").Return(&domain.User{
					Username:     "testuser",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedError: nil,
		},
		{
			name:     "Unknown user",
			username: "nobody",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "nobody").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			username: "testuser",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "testuser").Return(&domain.User{
					Username:     "testuser",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.username, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		username      string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:     "Successful token generation",
			username: "testuser",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("testuser", gomock.Any()).Return("token123", nil)
			},
			expectedToken: "token123",
		},
		{
			name:     "Token generation failure",
			username: "testuser",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("testuser", gomock.Any()).Return("", errors.New("sign error"))
			},
			expectedError: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(tt.username)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
