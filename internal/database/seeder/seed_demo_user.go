package seeder

import (
	"context"
	"fmt"

	"roadtrip-career/internal/database"
	"roadtrip-career/internal/domain/career"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	DemoEmail    = "demo@roadtrip.local"
	DemoPassword = "roadtrip-demo"
	demoRoleID   = "data-analyst"
)

// DemoUserSeeder creates a demo account with a half-filled data analyst
// profile. Existing rows are left untouched.
type DemoUserSeeder struct {
	Catalog *career.Catalog
}

func (DemoUserSeeder) Name() string { return "demo_user" }

func (s DemoUserSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "profiles", "user_id", "name", "career_goal", "skills"); err != nil {
		return err
	}

	catalog := s.Catalog
	if catalog == nil {
		catalog = career.Default()
	}
	role, ok := catalog.GetRole(demoRoleID)
	if !ok {
		return fmt.Errorf("demo role %s not in catalog", demoRoleID)
	}
	skills := role.RequiredSkills[:len(role.RequiredSkills)/2]

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var id uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		 RETURNING id`,
		uuid.New(), DemoEmail, string(hash),
	).Scan(&id)
	if err != nil {
		return err
	}

	name := "Demo"
	if _, err := tx.Exec(ctx,
		`INSERT INTO profiles (user_id, name, career_goal, skills) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO NOTHING`,
		id, name, role.ID, skills,
	); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
