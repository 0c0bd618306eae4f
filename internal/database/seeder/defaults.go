package seeder

import "talento-joven/internal/config"

func Defaults(cfg config.SeedConfig) []Seeder {
	var out []Seeder
	if cfg.AdminEmail != "" {
		out = append(out, AdminSeeder{Email: cfg.AdminEmail, Password: cfg.AdminPassword})
	}
	if cfg.DemoData {
		out = append(out, DemoCatalogSeeder{})
	}
	return out
}
