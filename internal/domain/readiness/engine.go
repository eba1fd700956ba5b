// Package readiness compares a user's skill set with a role's requirements.
//
// Compute is a pure function: the same role and skills always produce the
// same Result, and the Result shares no memory with its inputs, so callers
// may cache or recompute it freely.
package readiness

import (
	"math"

	"roadtrip-career/internal/domain/career"
)

type Result struct {
	RoleID         string
	RequiredSkills []string
	MatchedSkills  []string
	MissingSkills  []string
	Percentage     int
	Tier           Tier
}

// Compute splits role.RequiredSkills into matched and missing, keeping the
// role's order. Matching is exact and case-sensitive.
func Compute(role career.Role, userSkills []string) Result {
	owned := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		owned[s] = struct{}{}
	}

	required := make([]string, 0, len(role.RequiredSkills))
	matched := make([]string, 0, len(role.RequiredSkills))
	missing := make([]string, 0, len(role.RequiredSkills))

	seen := make(map[string]struct{}, len(role.RequiredSkills))
	for _, s := range role.RequiredSkills {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		required = append(required, s)

		if _, ok := owned[s]; ok {
			matched = append(matched, s)
			continue
		}
		missing = append(missing, s)
	}

	pct := Percentage(len(matched), len(required))
	return Result{
		RoleID:         role.ID,
		RequiredSkills: required,
		MatchedSkills:  matched,
		MissingSkills:  missing,
		Percentage:     pct,
		Tier:           Classify(pct),
	}
}

// Percentage rounds 100*matched/total to the nearest integer, ties up.
// A zero total yields 0.
func Percentage(matched, total int) int {
	if total <= 0 || matched <= 0 {
		return 0
	}
	if matched >= total {
		return 100
	}
	return int(math.Floor(100*float64(matched)/float64(total) + 0.5))
}
