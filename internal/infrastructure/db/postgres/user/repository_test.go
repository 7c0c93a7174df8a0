package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-registration-api/internal/domain/user"
)

var userColumns = []string{
	"id", "name", "email", "password_hash", "token",
	"created", "modified", "last_login", "is_active",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func userRow(id uuid.UUID, email, token string, ts time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).
		AddRow(id, "Ana", email, "$2a$10$digest", token, ts, ts, ts, true)
}

func TestRepository_ExistsByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(SelectExistsByEmail)).
		WithArgs("ana@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchUserByEmail_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(SelectUserByEmail)).
		WithArgs("ghost@x.com").
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.FetchUserByEmail(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.Nil(t, u)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchUserByID_WithPhones(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
		WithArgs(id).
		WillReturnRows(userRow(id, "ana@x.com", "tok", now))
	mock.ExpectQuery(regexp.QuoteMeta(SelectPhonesByUserID)).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"number", "citycode", "countrycode"}).
			AddRow("555", "1", "57").
			AddRow("777", "2", "57"))

	u, err := repo.FetchUserByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.Equal(t, id, u.ID)
	assert.Equal(t, "ana@x.com", u.Email)
	require.Len(t, u.Phones, 2)
	assert.Equal(t, domain.Phone{Number: "555", CityCode: "1", CountryCode: "57"}, u.Phones[0])
	assert.Equal(t, domain.Phone{Number: "777", CityCode: "2", CountryCode: "57"}, u.Phones[1])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateUser_Success(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	id := uuid.New()
	now := time.Now()
	req := domain.User{
		ID:           id,
		Name:         "Ana",
		Email:        "ana@x.com",
		PasswordHash: "$2a$10$digest",
		Token:        "tok",
		Phones: domain.Phones{
			{Number: "555", CityCode: "1", CountryCode: "57"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
		WithArgs(id, "Ana", "ana@x.com", "$2a$10$digest", "tok").
		WillReturnRows(userRow(id, "ana@x.com", "tok", now))
	mock.ExpectExec(regexp.QuoteMeta(InsertPhone)).
		WithArgs(id, "555", "1", "57").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	u, err := repo.CreateUser(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.Equal(t, id, u.ID)
	assert.True(t, u.IsActive)
	assert.Equal(t, req.Phones, u.Phones)
	require.NoError(t, mock.ExpectationsWereMet())
}

// The unique index is the arbiter for concurrent registrations: its
// violation comes back as the duplicate-email conflict.
func TestRepository_CreateUser_UniqueViolation(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	id := uuid.New()
	req := domain.User{ID: id, Name: "Ana", Email: "ana@x.com", PasswordHash: "h", Token: "t"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
		WithArgs(id, "Ana", "ana@x.com", "h", "t").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	mock.ExpectRollback()

	_, err := repo.CreateUser(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateToken(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(UpdateUserToken)).
		WithArgs("new-tok", id).
		WillReturnRows(userRow(id, "ana@x.com", "new-tok", now))
	mock.ExpectQuery(regexp.QuoteMeta(SelectPhonesByUserID)).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"number", "citycode", "countrycode"}))

	u, err := repo.UpdateToken(context.Background(), id, "new-tok")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "new-tok", u.Token)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TouchLastLogin_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(UpdateUserLastLogin)).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.TouchLastLogin(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, u)
	require.NoError(t, mock.ExpectationsWereMet())
}
