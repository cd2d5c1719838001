package main

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/hirestack/jobboard-api/config"
	"github.com/hirestack/jobboard-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@jobboard.local"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name=EXCLUDED.name
		RETURNING id
	`, email, hash, "Admin", "admin").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	jobs := []struct {
		title, description, company, location, salary string
		requirements                                  []string
		featured                                      bool
	}{
		{"Backend Engineer", "Build and operate our Go services.", "ACME", "Remote", "120k-150k", []string{"Go", "Postgres"}, true},
		{"Frontend Engineer", "Own the hiring dashboard UI.", "ACME", "NY", "110k-140k", []string{"TypeScript", "React"}, false},
		{"SRE", "Keep the board up.", "Initech", "Remote", "130k-160k", []string{"Kubernetes", "Terraform"}, false},
	}
	for _, j := range jobs {
		var jid string
		if err := db.QueryRow(`
			INSERT INTO jobs (title, description, company, location, salary, requirements, featured)
			VALUES ($1, $2, $3, $4, $5, string_to_array($6, ','), $7)
			RETURNING id
		`, j.title, j.description, j.company, j.location, j.salary, strings.Join(j.requirements, ","), j.featured).Scan(&jid); err != nil {
			log.Fatalf("failed to seed job %q: %v", j.title, err)
		}
		fmt.Printf("seeded job: id=%s title=%s\n", jid, j.title)
	}
}
