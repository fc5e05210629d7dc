package catalog

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"placement-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var employerCols = []string{"id", "name", "logo", "role", "package", "eligibility", "deadline", "type", "location", "description"}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func employerRow(rows *sqlmock.Rows, e models.Employer) *sqlmock.Rows {
	return rows.AddRow(e.ID, e.Name, e.Logo, e.Role, e.Package, e.Eligibility, e.Deadline, e.Type, e.Location, e.Description)
}

func TestPostgresRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresRepository(db)

	seed := SeedEmployers()
	rows := sqlmock.NewRows(employerCols)
	employerRow(rows, seed[3])
	employerRow(rows, seed[6])

	mock.ExpectQuery(`SELECT (.+) FROM employers WHERE (.+) ORDER BY created_at, id`).
		WithArgs("", "banking").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), Filter{Type: "Banking"})
	require.NoError(t, err)
	assert.Equal(t, []string{"HDFC Bank", "Kotak Mahindra Bank"}, names(got))
	assert.Equal(t, "2026-03-20", got[0].Deadline)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_List_AllTypeIsUnfiltered(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM employers`).
		WithArgs("gold", "").
		WillReturnRows(employerRow(sqlmock.NewRows(employerCols), SeedEmployers()[0]))

	got, err := repo.List(context.Background(), Filter{Search: "gold", Type: "all"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_List_SearchIsLiteral(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`WHERE \(\$1 = '' OR strpos\(LOWER\(name\), LOWER\(\$1\)\) > 0 OR strpos\(LOWER\(role\), LOWER\(\$1\)\) > 0\)`).
		WithArgs("100%_", "").
		WillReturnRows(sqlmock.NewRows(employerCols))

	got, err := repo.List(context.Background(), Filter{Search: "100%_"})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_List_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM employers`).WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background(), Filter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Get(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM employers WHERE id = \$1`).
		WithArgs("2").
		WillReturnRows(employerRow(sqlmock.NewRows(employerCols), SeedEmployers()[1]))

	e, err := repo.Get(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "McKinsey & Company", e.Name)

	mock.ExpectQuery(`SELECT (.+) FROM employers WHERE id = \$1`).
		WithArgs("99").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.Get(context.Background(), "99")
	assert.ErrorIs(t, err, ErrEmployerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Add(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`INSERT INTO employers`).
		WithArgs(sqlmock.AnyArg(), "Acme", "", "Analyst", "₹10 LPA", "", "", "", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	e, err := repo.Add(context.Background(), models.Employer{Name: "Acme", Role: "Analyst", Package: "₹10 LPA"})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)

	_, err = repo.Add(context.Background(), models.Employer{Role: "Analyst"})
	assert.ErrorIs(t, err, ErrInvalidEmployer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Seed(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresRepository(db)

	for range SeedEmployers() {
		mock.ExpectExec(`INSERT INTO employers (.+) ON CONFLICT \(id\) DO NOTHING`).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, repo.Seed(context.Background(), SeedEmployers()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Remove(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`DELETE FROM employers WHERE id = \$1`).
		WithArgs("3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM employers WHERE id = \$1`).
		WithArgs("3").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Remove(context.Background(), "3"))
	assert.ErrorIs(t, repo.Remove(context.Background(), "3"), ErrEmployerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
