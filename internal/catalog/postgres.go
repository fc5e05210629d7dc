package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"placement-workers/internal/models"
)

const employerColumns = `id, name, logo, role, package, eligibility,
		COALESCE(to_char(deadline, 'YYYY-MM-DD'), ''), type, location, description`

// PostgresRepository reads and writes the employers table.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List matches Search literally; % and _ are not wildcards.
func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]models.Employer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+employerColumns+`
		FROM employers
		WHERE ($1 = '' OR strpos(LOWER(name), LOWER($1)) > 0 OR strpos(LOWER(role), LOWER($1)) > 0)
		  AND ($2 = '' OR LOWER(type) = $2)
		ORDER BY created_at, id`, f.Search, f.typeFilter())
	if err != nil {
		return nil, fmt.Errorf("list employers: %w", err)
	}
	defer rows.Close()

	out := []models.Employer{}
	for rows.Next() {
		e, err := scanEmployer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employer: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employers: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (models.Employer, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+employerColumns+`
		FROM employers
		WHERE id = $1`, id)

	e, err := scanEmployer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Employer{}, ErrEmployerNotFound
	}
	if err != nil {
		return models.Employer{}, fmt.Errorf("get employer %s: %w", id, err)
	}
	return e, nil
}

func (r *PostgresRepository) Add(ctx context.Context, e models.Employer) (models.Employer, error) {
	e, err := prepare(e)
	if err != nil {
		return models.Employer{}, err
	}
	if err := r.insert(ctx, e, false); err != nil {
		return models.Employer{}, err
	}
	return e, nil
}

// Seed inserts employers keeping their ids. Rows that already exist are left alone.
func (r *PostgresRepository) Seed(ctx context.Context, employers []models.Employer) error {
	for _, e := range employers {
		if err := r.insert(ctx, e, true); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) insert(ctx context.Context, e models.Employer, skipExisting bool) error {
	query := `
		INSERT INTO employers (id, name, logo, role, package, eligibility, deadline, type, location, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::date, $8, $9, $10, NOW())`
	if skipExisting {
		query += ` ON CONFLICT (id) DO NOTHING`
	}

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Name, e.Logo, e.Role, e.Package, e.Eligibility,
		e.Deadline, e.Type, e.Location, e.Description,
	)
	if err != nil {
		return fmt.Errorf("insert employer %s: %w", e.ID, err)
	}
	return nil
}

func (r *PostgresRepository) Remove(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employer %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete employer %s: %w", id, err)
	}
	if n == 0 {
		return ErrEmployerNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployer(s scanner) (models.Employer, error) {
	var e models.Employer
	err := s.Scan(&e.ID, &e.Name, &e.Logo, &e.Role, &e.Package, &e.Eligibility,
		&e.Deadline, &e.Type, &e.Location, &e.Description)
	return e, err
}
