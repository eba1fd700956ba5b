package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"roadtrip-career/internal/domain/career"
	"roadtrip-career/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrNotFound     = errors.New("user not found")
	ErrUnknownRole  = errors.New("unknown career goal")
	ErrNoSkills     = errors.New("at least one skill is required")
)

const maxNameLength = 100

type Profile struct {
	UserID     uuid.UUID
	Email      string
	Name       *string
	CareerGoal *string
	Skills     []string
	UpdatedAt  time.Time
}

// DisplayName is the profile name, else the local part of the email, else "User".
func (p Profile) DisplayName() string {
	if p.Name != nil {
		if n := strings.TrimSpace(*p.Name); n != "" {
			return n
		}
	}
	if local, _, _ := strings.Cut(p.Email, "@"); local != "" {
		return local
	}
	return "User"
}

func (p Profile) HasCareerGoal() bool {
	return p.CareerGoal != nil && *p.CareerGoal != ""
}

// UpdateProfileInput replaces the career goal and skill set. A nil Name keeps
// the stored one.
type UpdateProfileInput struct {
	Name       *string
	CareerGoal string
	Skills     []string
}

type Service struct {
	users    user.Repository
	profiles user.ProfileRepository
	catalog  *career.Catalog
}

func NewService(users user.Repository, profiles user.ProfileRepository, catalog *career.Catalog) *Service {
	if catalog == nil {
		catalog = career.Default()
	}
	return &Service{users: users, profiles: profiles, catalog: catalog}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, ErrInternal
	}

	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, user.ErrProfileNotFound) {
			return Profile{}, ErrInternal
		}
		p = user.Profile{UserID: userID, Skills: []string{}}
	}

	return toProfile(usr, p), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (Profile, error) {
	goal := strings.TrimSpace(in.CareerGoal)
	if goal == "" {
		return Profile{}, ErrInvalidInput
	}
	if _, ok := s.catalog.GetRole(goal); !ok {
		return Profile{}, ErrUnknownRole
	}

	skills := NormalizeSkills(in.Skills)
	if len(skills) == 0 {
		return Profile{}, ErrNoSkills
	}

	current, err := s.GetProfile(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	name := current.Name
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if len(n) > maxNameLength {
			return Profile{}, ErrInvalidInput
		}
		name = nil
		if n != "" {
			name = &n
		}
	}

	saved, err := s.profiles.UpsertProfile(ctx, user.Profile{
		UserID:     userID,
		Name:       name,
		CareerGoal: &goal,
		Skills:     skills,
	})
	if err != nil {
		return Profile{}, ErrInternal
	}

	current.Name = saved.Name
	current.CareerGoal = saved.CareerGoal
	current.Skills = saved.Skills
	current.UpdatedAt = saved.UpdatedAt
	return current, nil
}

// NormalizeSkills trims every entry, drops blanks and removes duplicates,
// keeping the first occurrence. Case is preserved.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func toProfile(u user.User, p user.Profile) Profile {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return Profile{
		UserID:     u.ID,
		Email:      u.Email,
		Name:       p.Name,
		CareerGoal: p.CareerGoal,
		Skills:     skills,
		UpdatedAt:  p.UpdatedAt,
	}
}
