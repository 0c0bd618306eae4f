package seeder

import (
	"context"

	"talento-joven/internal/database"
)

// DemoCatalogSeeder fills empty catalog tables with a handful of sample
// rows for local development. Tables that already hold data are left
// untouched.
type DemoCatalogSeeder struct{}

func (DemoCatalogSeeder) Name() string { return "demo_catalog" }

func (DemoCatalogSeeder) Run(ctx context.Context, db database.DB) error {
	if err := seedCompanies(ctx, db); err != nil {
		return err
	}
	if err := seedInstitutions(ctx, db); err != nil {
		return err
	}
	if err := seedMentors(ctx, db); err != nil {
		return err
	}
	return seedResources(ctx, db)
}

func tableEmpty(ctx context.Context, db database.DB, table string) (bool, error) {
	var count int
	row := db.QueryRow(ctx, `SELECT COUNT(*) FROM `+table)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func seedCompanies(ctx context.Context, db database.DB) error {
	empty, err := tableEmpty(ctx, db, "companies")
	if err != nil || !empty {
		return err
	}

	items := []struct {
		Name, Industry, City string
	}{
		{"Banco Sol", "Finanzas", "La Paz"},
		{"Tigo Bolivia", "Telecomunicaciones", "Santa Cruz de la Sierra"},
		{"Industrias Venado", "Alimentos", "Cochabamba"},
	}
	for _, it := range items {
		_, err := db.Exec(ctx, `
			INSERT INTO companies (name, industry, city, status)
			VALUES ($1, $2, $3, 'ACTIVE')`,
			it.Name, it.Industry, it.City,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedInstitutions(ctx context.Context, db database.DB) error {
	empty, err := tableEmpty(ctx, db, "institutions")
	if err != nil || !empty {
		return err
	}

	items := []struct {
		Name, Kind, City string
	}{
		{"Universidad Mayor de San Andrés", "universidad", "La Paz"},
		{"INFOCAL", "instituto", "Santa Cruz de la Sierra"},
	}
	for _, it := range items {
		_, err := db.Exec(ctx, `
			INSERT INTO institutions (name, kind, city, status)
			VALUES ($1, $2, $3, 'ACTIVE')`,
			it.Name, it.Kind, it.City,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedMentors(ctx context.Context, db database.DB) error {
	empty, err := tableEmpty(ctx, db, "mentors")
	if err != nil || !empty {
		return err
	}

	items := []struct {
		FullName, Specialty string
	}{
		{"María Fernanda Soliz", "Orientación vocacional"},
		{"Jorge Luis Camacho", "Emprendimiento"},
	}
	for _, it := range items {
		_, err := db.Exec(ctx, `
			INSERT INTO mentors (full_name, specialty, status)
			VALUES ($1, $2, 'ACTIVE')`,
			it.FullName, it.Specialty,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedResources(ctx context.Context, db database.DB) error {
	empty, err := tableEmpty(ctx, db, "resources")
	if err != nil || !empty {
		return err
	}

	items := []struct {
		Title, Category, URL string
	}{
		{"Guía para tu primera entrevista", "empleabilidad", "https://example.org/entrevista"},
		{"Cómo armar un portafolio", "empleabilidad", "https://example.org/portafolio"},
	}
	for _, it := range items {
		_, err := db.Exec(ctx, `
			INSERT INTO resources (title, category, url, status)
			VALUES ($1, $2, $3, 'ACTIVE')`,
			it.Title, it.Category, it.URL,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
