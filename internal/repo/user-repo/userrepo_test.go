package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/Stiofain-MacMathuna/airgead/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var testUserID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		username  string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:     "Existing user",
			username: "alice",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "username", "password_hash"}).
					AddRow(testUserID, "alice", "hashed")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash FROM users WHERE username = $1`)).
					WithArgs("alice").
					WillReturnRows(rows)
			},
			result: &domain.User{ID: testUserID, Username: "alice", PasswordHash: "hashed"},
		},
		{
			name:     "Unknown user returns nil",
			username: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash FROM users WHERE username = $1`)).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:     "Database error",
			username: "alice",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash FROM users WHERE username = $1`)).
					WithArgs("alice").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUsername(context.Background(), tt.username)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates user",
			user: &domain.User{Username: "alice", PasswordHash: "hashed"},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(testUserID)
				mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id`)).
					WithArgs("alice", "hashed").
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			user: &domain.User{Username: "alice", PasswordHash: "hashed"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id`)).
					WithArgs("alice", "hashed").
					WillReturnError(errors.New("unique violation"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testUserID, result.ID)
			}
		})
	}
}
