package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"talento-joven/internal/database"
	"talento-joven/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Youth-content repositories: institutions, mentors, networking
// contacts and resources share the list/get/create/update/delete shape.

type PostgresInstitutionRepository struct {
	db database.DB
}

func NewPostgresInstitutionRepository(db database.DB) *PostgresInstitutionRepository {
	return &PostgresInstitutionRepository{db: db}
}

const institutionColumns = `id, name, kind, description, website, email, phone, city,
	status, views, created_at, updated_at`

func (r *PostgresInstitutionRepository) List(ctx context.Context, f catalog.ListFilter) ([]catalog.Institution, int, error) {
	where, args := catalogListWhere(f, []string{"name", "kind", "city"})

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM institutions`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)
	n := len(args)
	rows, err := r.db.Query(ctx,
		`SELECT `+institutionColumns+` FROM institutions`+where+
			` ORDER BY name ASC LIMIT $`+strconv.Itoa(n-1)+` OFFSET $`+strconv.Itoa(n),
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]catalog.Institution, 0)
	for rows.Next() {
		i, err := scanInstitution(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresInstitutionRepository) GetByID(ctx context.Context, id uuid.UUID) (catalog.Institution, error) {
	row := r.db.QueryRow(ctx, `SELECT `+institutionColumns+` FROM institutions WHERE id = $1`, id)
	return scanInstitution(row)
}

func (r *PostgresInstitutionRepository) Create(ctx context.Context, i catalog.Institution) (catalog.Institution, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO institutions (id, name, kind, description, website, email, phone, city, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		i.ID, i.Name, i.Kind, i.Description, i.Website, i.Email, i.Phone, i.City, string(i.Status),
	)
	if err != nil {
		return catalog.Institution{}, err
	}
	return r.GetByID(ctx, i.ID)
}

func (r *PostgresInstitutionRepository) Update(ctx context.Context, i catalog.Institution) (catalog.Institution, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE institutions SET
		 name = $2, kind = $3, description = $4, website = $5, email = $6,
		 phone = $7, city = $8, status = $9, updated_at = now()
		 WHERE id = $1`,
		i.ID, i.Name, i.Kind, i.Description, i.Website, i.Email, i.Phone, i.City, string(i.Status),
	)
	if err != nil {
		return catalog.Institution{}, err
	}
	if n == 0 {
		return catalog.Institution{}, catalog.ErrNotFound
	}
	return r.GetByID(ctx, i.ID)
}

func (r *PostgresInstitutionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "institutions", id)
}

func scanInstitution(row database.Row) (catalog.Institution, error) {
	var i catalog.Institution
	var status string
	err := row.Scan(
		&i.ID, &i.Name, &i.Kind, &i.Description, &i.Website, &i.Email,
		&i.Phone, &i.City, &status, &i.Views, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return catalog.Institution{}, catalog.ErrNotFound
		}
		return catalog.Institution{}, err
	}
	i.Status = catalog.Status(status)
	return i, nil
}

type PostgresMentorRepository struct {
	db database.DB
}

func NewPostgresMentorRepository(db database.DB) *PostgresMentorRepository {
	return &PostgresMentorRepository{db: db}
}

const mentorColumns = `id, full_name, specialty, bio, email, phone, city, status, views, created_at, updated_at`

func (r *PostgresMentorRepository) List(ctx context.Context, f catalog.ListFilter) ([]catalog.Mentor, int, error) {
	where, args := catalogListWhere(f, []string{"full_name", "specialty", "city"})

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM mentors`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)
	n := len(args)
	rows, err := r.db.Query(ctx,
		`SELECT `+mentorColumns+` FROM mentors`+where+
			` ORDER BY full_name ASC LIMIT $`+strconv.Itoa(n-1)+` OFFSET $`+strconv.Itoa(n),
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]catalog.Mentor, 0)
	for rows.Next() {
		m, err := scanMentor(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresMentorRepository) GetByID(ctx context.Context, id uuid.UUID) (catalog.Mentor, error) {
	row := r.db.QueryRow(ctx, `SELECT `+mentorColumns+` FROM mentors WHERE id = $1`, id)
	return scanMentor(row)
}

func (r *PostgresMentorRepository) Create(ctx context.Context, m catalog.Mentor) (catalog.Mentor, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO mentors (id, full_name, specialty, bio, email, phone, city, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		m.ID, m.FullName, m.Specialty, m.Bio, m.Email, m.Phone, m.City, string(m.Status),
	)
	if err != nil {
		return catalog.Mentor{}, err
	}
	return r.GetByID(ctx, m.ID)
}

func (r *PostgresMentorRepository) Update(ctx context.Context, m catalog.Mentor) (catalog.Mentor, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE mentors SET
		 full_name = $2, specialty = $3, bio = $4, email = $5, phone = $6,
		 city = $7, status = $8, updated_at = now()
		 WHERE id = $1`,
		m.ID, m.FullName, m.Specialty, m.Bio, m.Email, m.Phone, m.City, string(m.Status),
	)
	if err != nil {
		return catalog.Mentor{}, err
	}
	if n == 0 {
		return catalog.Mentor{}, catalog.ErrNotFound
	}
	return r.GetByID(ctx, m.ID)
}

func (r *PostgresMentorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "mentors", id)
}

func scanMentor(row database.Row) (catalog.Mentor, error) {
	var m catalog.Mentor
	var status string
	err := row.Scan(
		&m.ID, &m.FullName, &m.Specialty, &m.Bio, &m.Email, &m.Phone,
		&m.City, &status, &m.Views, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return catalog.Mentor{}, catalog.ErrNotFound
		}
		return catalog.Mentor{}, err
	}
	m.Status = catalog.Status(status)
	return m, nil
}

type PostgresContactRepository struct {
	db database.DB
}

func NewPostgresContactRepository(db database.DB) *PostgresContactRepository {
	return &PostgresContactRepository{db: db}
}

const contactColumns = `id, full_name, organization, position, email, phone, city, status, views, created_at, updated_at`

func (r *PostgresContactRepository) List(ctx context.Context, f catalog.ListFilter) ([]catalog.NetworkContact, int, error) {
	where, args := catalogListWhere(f, []string{"full_name", "organization", "position"})

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM network_contacts`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)
	n := len(args)
	rows, err := r.db.Query(ctx,
		`SELECT `+contactColumns+` FROM network_contacts`+where+
			` ORDER BY full_name ASC LIMIT $`+strconv.Itoa(n-1)+` OFFSET $`+strconv.Itoa(n),
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]catalog.NetworkContact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
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

func (r *PostgresContactRepository) GetByID(ctx context.Context, id uuid.UUID) (catalog.NetworkContact, error) {
	row := r.db.QueryRow(ctx, `SELECT `+contactColumns+` FROM network_contacts WHERE id = $1`, id)
	return scanContact(row)
}

func (r *PostgresContactRepository) Create(ctx context.Context, c catalog.NetworkContact) (catalog.NetworkContact, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO network_contacts (id, full_name, organization, position, email, phone, city, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		c.ID, c.FullName, c.Organization, c.Position, c.Email, c.Phone, c.City, string(c.Status),
	)
	if err != nil {
		return catalog.NetworkContact{}, err
	}
	return r.GetByID(ctx, c.ID)
}

func (r *PostgresContactRepository) Update(ctx context.Context, c catalog.NetworkContact) (catalog.NetworkContact, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE network_contacts SET
		 full_name = $2, organization = $3, position = $4, email = $5, phone = $6,
		 city = $7, status = $8, updated_at = now()
		 WHERE id = $1`,
		c.ID, c.FullName, c.Organization, c.Position, c.Email, c.Phone, c.City, string(c.Status),
	)
	if err != nil {
		return catalog.NetworkContact{}, err
	}
	if n == 0 {
		return catalog.NetworkContact{}, catalog.ErrNotFound
	}
	return r.GetByID(ctx, c.ID)
}

func (r *PostgresContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "network_contacts", id)
}

func scanContact(row database.Row) (catalog.NetworkContact, error) {
	var c catalog.NetworkContact
	var status string
	err := row.Scan(
		&c.ID, &c.FullName, &c.Organization, &c.Position, &c.Email, &c.Phone,
		&c.City, &status, &c.Views, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return catalog.NetworkContact{}, catalog.ErrNotFound
		}
		return catalog.NetworkContact{}, err
	}
	c.Status = catalog.Status(status)
	return c, nil
}

type PostgresResourceRepository struct {
	db database.DB
}

func NewPostgresResourceRepository(db database.DB) *PostgresResourceRepository {
	return &PostgresResourceRepository{db: db}
}

const resourceColumns = `id, title, category, description, url, status, views, created_at, updated_at`

func (r *PostgresResourceRepository) List(ctx context.Context, f catalog.ListFilter) ([]catalog.Resource, int, error) {
	where, args := catalogListWhere(f, []string{"title", "category"})

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM resources`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)
	n := len(args)
	rows, err := r.db.Query(ctx,
		`SELECT `+resourceColumns+` FROM resources`+where+
			` ORDER BY title ASC LIMIT $`+strconv.Itoa(n-1)+` OFFSET $`+strconv.Itoa(n),
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]catalog.Resource, 0)
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresResourceRepository) GetByID(ctx context.Context, id uuid.UUID) (catalog.Resource, error) {
	row := r.db.QueryRow(ctx, `SELECT `+resourceColumns+` FROM resources WHERE id = $1`, id)
	return scanResource(row)
}

func (r *PostgresResourceRepository) Create(ctx context.Context, res catalog.Resource) (catalog.Resource, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO resources (id, title, category, description, url, status)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		res.ID, res.Title, res.Category, res.Description, res.URL, string(res.Status),
	)
	if err != nil {
		return catalog.Resource{}, err
	}
	return r.GetByID(ctx, res.ID)
}

func (r *PostgresResourceRepository) Update(ctx context.Context, res catalog.Resource) (catalog.Resource, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE resources SET
		 title = $2, category = $3, description = $4, url = $5, status = $6, updated_at = now()
		 WHERE id = $1`,
		res.ID, res.Title, res.Category, res.Description, res.URL, string(res.Status),
	)
	if err != nil {
		return catalog.Resource{}, err
	}
	if n == 0 {
		return catalog.Resource{}, catalog.ErrNotFound
	}
	return r.GetByID(ctx, res.ID)
}

func (r *PostgresResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "resources", id)
}

func scanResource(row database.Row) (catalog.Resource, error) {
	var res catalog.Resource
	var status string
	err := row.Scan(
		&res.ID, &res.Title, &res.Category, &res.Description, &res.URL,
		&status, &res.Views, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return catalog.Resource{}, catalog.ErrNotFound
		}
		return catalog.Resource{}, err
	}
	res.Status = catalog.Status(status)
	return res, nil
}

func deleteByID(ctx context.Context, db database.DB, table string, id uuid.UUID) error {
	n, err := db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}
