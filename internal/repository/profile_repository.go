package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"talento-joven/internal/database"
	"talento-joven/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// tableFor maps a profile kind to its federation table. Kinds are
// validated at the usecase boundary; an unknown kind here is a bug.
func tableFor(kind profile.Kind) (string, error) {
	switch kind {
	case profile.KindAthlete:
		return "atletas", nil
	case profile.KindCoach:
		return "entrenadores", nil
	case profile.KindJudge:
		return "jueces", nil
	}
	return "", fmt.Errorf("unknown profile kind %q", kind)
}

const profileColumns = `id, user_id, nombre, apellido, ci, fecha_nacimiento, genero,
	asociacion, municipio, datos, created_at, updated_at`

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, kind profile.Kind, userID uuid.UUID) (profile.Record, error) {
	table, err := tableFor(kind)
	if err != nil {
		return profile.Record{}, err
	}
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM `+table+` WHERE user_id = $1`, userID)
	return scanProfile(row, kind)
}

func (r *PostgresProfileRepository) ExistsByUserID(ctx context.Context, kind profile.Kind, userID uuid.UUID) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM `+table+` WHERE user_id = $1)`, userID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts the profile and flips the owner's denormalized estado
// in one transaction, so a half-registered user is never observable.
func (r *PostgresProfileRepository) Create(ctx context.Context, rec profile.Record, estado string) (profile.Record, error) {
	table, err := tableFor(rec.Kind)
	if err != nil {
		return profile.Record{}, err
	}
	datos, err := json.Marshal(rec.Datos)
	if err != nil {
		return profile.Record{}, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return profile.Record{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO `+table+`
		 (id, user_id, nombre, apellido, ci, fecha_nacimiento, genero, asociacion, municipio, datos)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		rec.ID, rec.UserID, rec.Nombre, rec.Apellido, rec.CI,
		rec.FechaNacimiento, rec.Genero, rec.Asociacion, rec.Municipio, datos,
	); err != nil {
		return profile.Record{}, err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE users SET estado = $2, updated_at = now() WHERE id = $1`,
		rec.UserID, estado,
	); err != nil {
		return profile.Record{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return profile.Record{}, err
	}
	return rec, nil
}

func (r *PostgresProfileRepository) Update(ctx context.Context, rec profile.Record) error {
	table, err := tableFor(rec.Kind)
	if err != nil {
		return err
	}
	datos, err := json.Marshal(rec.Datos)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE `+table+`
		 SET nombre = $2, apellido = $3, ci = $4, fecha_nacimiento = $5, genero = $6,
		     asociacion = $7, municipio = $8, datos = $9, updated_at = now()
		 WHERE user_id = $1`,
		rec.UserID, rec.Nombre, rec.Apellido, rec.CI, rec.FechaNacimiento,
		rec.Genero, rec.Asociacion, rec.Municipio, datos,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func scanProfile(row database.Row, kind profile.Kind) (profile.Record, error) {
	var rec profile.Record
	var datos []byte
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Nombre, &rec.Apellido, &rec.CI,
		&rec.FechaNacimiento, &rec.Genero, &rec.Asociacion, &rec.Municipio,
		&datos, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.Record{}, profile.ErrNotFound
		}
		return profile.Record{}, err
	}
	rec.Kind = kind
	if len(datos) > 0 {
		if err := json.Unmarshal(datos, &rec.Datos); err != nil {
			return profile.Record{}, fmt.Errorf("unmarshal profile datos: %w", err)
		}
	}
	return rec, nil
}
