package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"talento-joven/internal/database"
	"talento-joven/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

const companyColumns = `id, name, industry, description, website, email, phone, city,
	status, views, created_at, updated_at`

func (r *PostgresCompanyRepository) List(ctx context.Context, f catalog.ListFilter) ([]catalog.Company, int, error) {
	where, args := catalogListWhere(f, []string{"name", "industry", "city"})

	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM companies`+where, args...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)
	n := len(args)
	rows, err := r.db.Query(ctx,
		`SELECT `+companyColumns+` FROM companies`+where+
			` ORDER BY name ASC LIMIT $`+strconv.Itoa(n-1)+` OFFSET $`+strconv.Itoa(n),
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]catalog.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// catalogListWhere builds the shared search/status filter used by every
// catalog table. searchCols are the columns matched by ILIKE.
func catalogListWhere(f catalog.ListFilter, searchCols []string) (string, []any) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		p := strconv.Itoa(len(args))
		ors := make([]string, 0, len(searchCols))
		for _, col := range searchCols {
			ors = append(ors, col+` ILIKE $`+p)
		}
		conds = append(conds, `(`+strings.Join(ors, " OR ")+`)`)
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, `status = $`+strconv.Itoa(len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (catalog.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, c catalog.Company) (catalog.Company, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, name, industry, description, website, email, phone, city, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		c.ID, c.Name, c.Industry, c.Description, c.Website, c.Email, c.Phone, c.City, string(c.Status),
	)
	if err != nil {
		return catalog.Company{}, err
	}
	return r.GetByID(ctx, c.ID)
}

func (r *PostgresCompanyRepository) Update(ctx context.Context, c catalog.Company) (catalog.Company, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE companies SET
		 name = $2, industry = $3, description = $4, website = $5, email = $6,
		 phone = $7, city = $8, status = $9, updated_at = now()
		 WHERE id = $1`,
		c.ID, c.Name, c.Industry, c.Description, c.Website, c.Email, c.Phone, c.City, string(c.Status),
	)
	if err != nil {
		return catalog.Company{}, err
	}
	if n == 0 {
		return catalog.Company{}, catalog.ErrNotFound
	}
	return r.GetByID(ctx, c.ID)
}

func (r *PostgresCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *PostgresCompanyRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE companies SET views = views + 1 WHERE id = $1`, id)
	return err
}

func scanCompany(row database.Row) (catalog.Company, error) {
	var c catalog.Company
	var status string
	err := row.Scan(
		&c.ID, &c.Name, &c.Industry, &c.Description, &c.Website, &c.Email,
		&c.Phone, &c.City, &status, &c.Views, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return catalog.Company{}, catalog.ErrNotFound
		}
		return catalog.Company{}, err
	}
	c.Status = catalog.Status(status)
	return c, nil
}
