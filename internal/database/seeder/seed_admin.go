package seeder

import (
	"context"
	"fmt"
	"strings"

	"talento-joven/internal/database"
	"talento-joven/internal/domain/profile"
	"talento-joven/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
)

// AdminSeeder ensures one admin account exists so a fresh deployment
// can be administered without touching the database by hand.
type AdminSeeder struct {
	Email    string
	Password string
}

func (AdminSeeder) Name() string { return "admin_user" }

func (s AdminSeeder) Run(ctx context.Context, db database.DB) error {
	email := strings.ToLower(strings.TrimSpace(s.Email))
	if email == "" {
		return nil
	}
	if len(s.Password) < 8 {
		return fmt.Errorf("admin password too short")
	}

	var count int
	row := db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = $1`, email)
	if err := row.Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		INSERT INTO users (email, password_hash, full_name, role, estado)
		VALUES ($1, $2, $3, $4, $5)`,
		email, string(hash), "Administrador", user.RoleAdmin, profile.EstadoSinPerfil,
	)
	return err
}
