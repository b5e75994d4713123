package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"eshop_backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepoMock(t *testing.T) (pgxmock.PgxPoolIface, UserRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserRepository(mock)
}

func TestUserRepository_Save(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (login, password, first_name, last_name)`)).
		WithArgs("jdoe", "pass", "John", "Doe").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

	user := &model.User{Login: "jdoe", Password: "pass", FirstName: "John", LastName: "Doe"}
	saved, err := repo.Save(context.Background(), user)

	assert.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 7, saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Save_DuplicateLoginIsAbsent(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("jdoe", "pass", "", "").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	saved, err := repo.Save(context.Background(), &model.User{Login: "jdoe", Password: "pass"})

	assert.NoError(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Save_DBError(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("jdoe", "pass", "", "").
		WillReturnError(errors.New("connection reset"))

	saved, err := repo.Save(context.Background(), &model.User{Login: "jdoe", Password: "pass"})

	assert.Error(t, err)
	assert.Nil(t, saved)
}

func TestUserRepository_Update(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET`)).
		WithArgs("jdoe", "pass", "John", "Doe", 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	user := &model.User{ID: 7, Login: "jdoe", Password: "pass", FirstName: "John", LastName: "Doe"}
	updated, err := repo.Update(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, user, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_MissingRowIsAbsent(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET`)).
		WithArgs("jdoe", "pass", "", "", 99).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	updated, err := repo.Update(context.Background(), &model.User{ID: 99, Login: "jdoe", Password: "pass"})

	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUserRepository_FindByID(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password, first_name, last_name FROM users WHERE id = $1`)).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows([]string{"id", "login", "password", "first_name", "last_name"}).
			AddRow(7, "jdoe", "pass", "John", "Doe"))

	user, err := repo.FindByID(context.Background(), 7)

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "jdoe", user.Login)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password, first_name, last_name FROM users WHERE id = $1`)).
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByID(context.Background(), 99)

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_FindByLoginAndPassword(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE login = $1 AND password = $2`)).
		WithArgs("jdoe", "pass").
		WillReturnRows(pgxmock.NewRows([]string{"id", "login", "password", "first_name", "last_name"}).
			AddRow(7, "jdoe", "pass", "John", "Doe"))

	user, err := repo.FindByLoginAndPassword(context.Background(), "jdoe", "pass")

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 7, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindAll(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password, first_name, last_name FROM users ORDER BY id`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "login", "password", "first_name", "last_name"}).
			AddRow(1, "admin", "x", "", "").
			AddRow(2, "jdoe", "pass", "John", "Doe"))

	users, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Login)
	assert.Equal(t, "jdoe", users[1].Login)
}

func TestUserRepository_Delete(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), &model.User{ID: 7})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_MissingRowIsNoop(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), &model.User{ID: 99})

	assert.NoError(t, err)
}
