package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the stored career goal and skill set of a user. CareerGoal is
// nil until the user picks a role.
type Profile struct {
	UserID     uuid.UUID
	Name       *string
	CareerGoal *string
	Skills     []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (p Profile) HasCareerGoal() bool {
	return p.CareerGoal != nil && *p.CareerGoal != ""
}
