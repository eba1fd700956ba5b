package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"
	"strings"
)

const readinessCacheKeyPrefix = "readiness:"

type readinessCacheKeyInput struct {
	RoleID string   `json:"role_id"`
	Skills []string `json:"skills"`
}

// ReadinessCacheKey hashes the role and the sorted, de-duplicated skill set so
// the same set in any order shares one entry. Skill case is kept because
// matching is case-sensitive.
func ReadinessCacheKey(snap CareerSnapshot) string {
	skills := make([]string, 0, len(snap.Skills))
	for _, s := range snap.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}
	slices.Sort(skills)
	skills = slices.Compact(skills)

	in := readinessCacheKeyInput{
		RoleID: strings.TrimSpace(snap.RoleID),
		Skills: skills,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return readinessCacheKeyPrefix + hex.EncodeToString(sum[:])
}
