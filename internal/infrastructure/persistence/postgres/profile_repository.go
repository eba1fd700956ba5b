package postgres

import (
	"context"

	"roadtrip-career/internal/database"
	"roadtrip-career/internal/domain/user"

	"github.com/google/uuid"
)

type ProfileRepository struct {
	db database.DB
}

func NewProfileRepository(db database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const selectProfile = `SELECT user_id, name, career_goal, skills, created_at, updated_at FROM profiles`

func (r *ProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx, selectProfile+` WHERE user_id = $1`, userID)
	return scanProfile(row)
}

// UpsertProfile replaces name, career goal and skills for the user in a single
// statement so concurrent saves never interleave fields.
func (r *ProfileRepository) UpsertProfile(ctx context.Context, p user.Profile) (user.Profile, error) {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO profiles (user_id, name, career_goal, skills)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE
		 SET name = EXCLUDED.name,
		     career_goal = EXCLUDED.career_goal,
		     skills = EXCLUDED.skills,
		     updated_at = now()
		 RETURNING user_id, name, career_goal, skills, created_at, updated_at`,
		p.UserID, p.Name, p.CareerGoal, skills,
	)
	return scanProfile(row)
}

func scanProfile(row database.Row) (user.Profile, error) {
	var p user.Profile
	if err := row.Scan(&p.UserID, &p.Name, &p.CareerGoal, &p.Skills, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if isNoRows(err) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}
