package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newResetTokenRepoWithMock(t *testing.T) (*ResetTokenRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewResetTokenRepository(db), mock, db
}

func TestResetTokenCreate(t *testing.T) {
	repo, mock, db := newResetTokenRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+reset_tokens\s*\(user_id,\s*token_hash,\s*expires_at,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*$`

	expires := time.Now().Add(time.Hour)
	mock.ExpectExec(q).
		WithArgs(1, "abc123", expires, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), 1, "abc123", expires); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestResetTokenConsume_Success(t *testing.T) {
	repo, mock, db := newResetTokenRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+reset_tokens\s+SET\s+consumed_at\s*=\s*\$1\s+WHERE\s+user_id\s*=\s*\$2.*token_hash\s*=\s*\$3.*consumed_at\s+IS\s+NULL.*expires_at\s*>\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs(sqlmock.AnyArg(), 1, "abc123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Consume(context.Background(), 1, "abc123"); err != nil {
		t.Fatalf("Consume error: %v", err)
	}
}

func TestResetTokenConsume_AlreadyUsedOrExpired(t *testing.T) {
	repo, mock, db := newResetTokenRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+reset_tokens\s+SET\s+consumed_at\b`

	mock.ExpectExec(q).
		WithArgs(sqlmock.AnyArg(), 1, "abc123").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Consume(context.Background(), 1, "abc123")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound when no row matches, got %v", err)
	}
}

func TestResetTokenConsume_DBError(t *testing.T) {
	repo, mock, db := newResetTokenRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+reset_tokens\s+SET\s+consumed_at\b`

	mock.ExpectExec(q).
		WithArgs(sqlmock.AnyArg(), 1, "abc123").
		WillReturnError(errors.New("db down"))

	err := repo.Consume(context.Background(), 1, "abc123")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected raw db error, got %v", err)
	}
}
