package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"talento-joven/internal/database"
	"talento-joven/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresOfferRepository struct {
	db database.DB
}

func NewPostgresOfferRepository(db database.DB) *PostgresOfferRepository {
	return &PostgresOfferRepository{db: db}
}

const offerColumns = `id, company_id, title, description, requirements, location, modality,
	salary_min, salary_max, salary_currency, status, views, applications,
	published_at, closes_at, created_at, updated_at`

func (r *PostgresOfferRepository) List(ctx context.Context, f offer.ListFilter) ([]offer.JobOffer, int, error) {
	where, args := offerListWhere(f)

	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM job_offers`+where, args...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.PageSize
	offset := (f.Page - 1) * f.PageSize
	args = append(args, limit, offset)
	n := len(args)

	rows, err := r.db.Query(ctx,
		`SELECT `+offerColumns+` FROM job_offers`+where+
			` ORDER BY created_at DESC LIMIT $`+strconv.Itoa(n-1)+` OFFSET $`+strconv.Itoa(n),
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]offer.JobOffer, 0)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func offerListWhere(f offer.ListFilter) (string, []any) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		p := strconv.Itoa(len(args))
		conds = append(conds, `(title ILIKE $`+p+` OR description ILIKE $`+p+` OR location ILIKE $`+p+`)`)
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

func (r *PostgresOfferRepository) GetByID(ctx context.Context, id uuid.UUID) (offer.JobOffer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM job_offers WHERE id = $1`, id)
	return scanOffer(row)
}

func (r *PostgresOfferRepository) Create(ctx context.Context, o offer.JobOffer) (offer.JobOffer, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_offers
		 (id, company_id, title, description, requirements, location, modality,
		  salary_min, salary_max, salary_currency, status, published_at, closes_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		o.ID, o.CompanyID, o.Title, o.Description, o.Requirements, o.Location, o.Modality,
		o.SalaryMin, o.SalaryMax, o.SalaryCurrency, string(o.Status), o.PublishedAt, o.ClosesAt,
	)
	if err != nil {
		return offer.JobOffer{}, err
	}
	return r.GetByID(ctx, o.ID)
}

func (r *PostgresOfferRepository) Update(ctx context.Context, o offer.JobOffer) (offer.JobOffer, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE job_offers SET
		 company_id = $2, title = $3, description = $4, requirements = $5, location = $6,
		 modality = $7, salary_min = $8, salary_max = $9, salary_currency = $10,
		 status = $11, published_at = $12, closes_at = $13, updated_at = now()
		 WHERE id = $1`,
		o.ID, o.CompanyID, o.Title, o.Description, o.Requirements, o.Location, o.Modality,
		o.SalaryMin, o.SalaryMax, o.SalaryCurrency, string(o.Status), o.PublishedAt, o.ClosesAt,
	)
	if err != nil {
		return offer.JobOffer{}, err
	}
	if n == 0 {
		return offer.JobOffer{}, offer.ErrNotFound
	}
	return r.GetByID(ctx, o.ID)
}

func (r *PostgresOfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM job_offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return offer.ErrNotFound
	}
	return nil
}

func (r *PostgresOfferRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE job_offers SET views = views + 1 WHERE id = $1`, id)
	return err
}

func scanOffer(row database.Row) (offer.JobOffer, error) {
	var o offer.JobOffer
	var status string
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.Title, &o.Description, &o.Requirements, &o.Location,
		&o.Modality, &o.SalaryMin, &o.SalaryMax, &o.SalaryCurrency, &status,
		&o.Views, &o.Applications, &o.PublishedAt, &o.ClosesAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return offer.JobOffer{}, offer.ErrNotFound
		}
		return offer.JobOffer{}, err
	}
	o.Status = offer.Status(status)
	return o, nil
}
