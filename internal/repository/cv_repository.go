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

type PostgresCVRepository struct {
	db database.DB
}

func NewPostgresCVRepository(db database.DB) *PostgresCVRepository {
	return &PostgresCVRepository{db: db}
}

const cvColumns = `id, user_id, job_title, professional_summary, personal_info,
	education, skills, languages, social_links, work_experience, projects,
	achievements, interests, created_at, updated_at`

func (r *PostgresCVRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (cv.Document, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+cvColumns+` FROM cv_documents WHERE user_id = $1`, userID)
	return scanCVDocument(row)
}

func (r *PostgresCVRepository) Create(ctx context.Context, doc cv.Document) error {
	cols, err := marshalCVSections(doc)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO cv_documents
		 (id, user_id, job_title, professional_summary, personal_info, education,
		  skills, languages, social_links, work_experience, projects, achievements, interests)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		doc.ID, doc.UserID, doc.JobTitle, doc.Summary,
		cols.personalInfo, cols.education, cols.skills, cols.languages,
		cols.socialLinks, cols.workExperience, cols.projects, cols.achievements, cols.interests,
	)
	return err
}

func (r *PostgresCVRepository) Update(ctx context.Context, doc cv.Document) error {
	cols, err := marshalCVSections(doc)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE cv_documents SET
		 job_title = $2, professional_summary = $3, personal_info = $4, education = $5,
		 skills = $6, languages = $7, social_links = $8, work_experience = $9,
		 projects = $10, achievements = $11, interests = $12, updated_at = now()
		 WHERE user_id = $1`,
		doc.UserID, doc.JobTitle, doc.Summary,
		cols.personalInfo, cols.education, cols.skills, cols.languages,
		cols.socialLinks, cols.workExperience, cols.projects, cols.achievements, cols.interests,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return cv.ErrNotFound
	}
	return nil
}

type cvJSONColumns struct {
	personalInfo   []byte
	education      []byte
	skills         []byte
	languages      []byte
	socialLinks    []byte
	workExperience []byte
	projects       []byte
	achievements   []byte
	interests      []byte
}

func marshalCVSections(doc cv.Document) (cvJSONColumns, error) {
	var c cvJSONColumns
	var err error
	marshal := func(dst *[]byte, v any) {
		if err != nil {
			return
		}
		*dst, err = json.Marshal(v)
	}

	marshal(&c.personalInfo, doc.PersonalInfo)
	marshal(&c.education, doc.Education)
	marshal(&c.skills, emptySlice(doc.Skills))
	marshal(&c.languages, emptySlice(doc.Languages))
	marshal(&c.socialLinks, emptySlice(doc.SocialLinks))
	marshal(&c.workExperience, emptySlice(doc.WorkExperience))
	marshal(&c.projects, emptySlice(doc.Projects))
	marshal(&c.achievements, emptySlice(doc.Achievements))
	marshal(&c.interests, emptySlice(doc.Interests))
	if err != nil {
		return cvJSONColumns{}, fmt.Errorf("marshal cv sections: %w", err)
	}
	return c, nil
}

// emptySlice keeps JSONB columns as [] instead of null.
func emptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func scanCVDocument(row database.Row) (cv.Document, error) {
	var doc cv.Document
	var personalInfo, education, skills, languages, socialLinks []byte
	var workExperience, projects, achievements, interests []byte

	err := row.Scan(
		&doc.ID, &doc.UserID, &doc.JobTitle, &doc.Summary, &personalInfo,
		&education, &skills, &languages, &socialLinks, &workExperience,
		&projects, &achievements, &interests, &doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return cv.Document{}, cv.ErrNotFound
		}
		return cv.Document{}, err
	}

	for _, u := range []struct {
		raw []byte
		out any
	}{
		{personalInfo, &doc.PersonalInfo},
		{education, &doc.Education},
		{skills, &doc.Skills},
		{languages, &doc.Languages},
		{socialLinks, &doc.SocialLinks},
		{workExperience, &doc.WorkExperience},
		{projects, &doc.Projects},
		{achievements, &doc.Achievements},
		{interests, &doc.Interests},
	} {
		if len(u.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(u.raw, u.out); err != nil {
			return cv.Document{}, fmt.Errorf("unmarshal cv section: %w", err)
		}
	}

	return doc, nil
}
