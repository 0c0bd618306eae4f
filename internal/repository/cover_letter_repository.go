package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"talento-joven/internal/database"
	"talento-joven/internal/domain/cv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresCoverLetterRepository struct {
	db database.DB
}

func NewPostgresCoverLetterRepository(db database.DB) *PostgresCoverLetterRepository {
	return &PostgresCoverLetterRepository{db: db}
}

func (r *PostgresCoverLetterRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (cv.CoverLetter, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, content, subject, recipient, created_at, updated_at
		 FROM cover_letters WHERE user_id = $1`, userID)

	var cl cv.CoverLetter
	var recipient []byte
	err := row.Scan(&cl.ID, &cl.UserID, &cl.Content, &cl.Subject, &recipient, &cl.CreatedAt, &cl.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return cv.CoverLetter{}, cv.ErrNotFound
		}
		return cv.CoverLetter{}, err
	}
	if len(recipient) > 0 {
		if err := json.Unmarshal(recipient, &cl.Recipient); err != nil {
			return cv.CoverLetter{}, fmt.Errorf("unmarshal recipient: %w", err)
		}
	}
	return cl, nil
}

func (r *PostgresCoverLetterRepository) Create(ctx context.Context, cl cv.CoverLetter) error {
	recipient, err := json.Marshal(cl.Recipient)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO cover_letters (id, user_id, content, subject, recipient)
		 VALUES ($1, $2, $3, $4, $5)`,
		cl.ID, cl.UserID, cl.Content, cl.Subject, recipient,
	)
	return err
}

func (r *PostgresCoverLetterRepository) Update(ctx context.Context, cl cv.CoverLetter) error {
	recipient, err := json.Marshal(cl.Recipient)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE cover_letters
		 SET content = $2, subject = $3, recipient = $4, updated_at = now()
		 WHERE user_id = $1`,
		cl.UserID, cl.Content, cl.Subject, recipient,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return cv.ErrNotFound
	}
	return nil
}
