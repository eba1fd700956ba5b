package readiness

import (
	"sort"

	"roadtrip-career/internal/domain/career"
)

// Rank scores userSkills against every role and orders the results best fit
// first: higher percentage, then more matched skills. Roles that tie keep the
// order they were given in.
func Rank(roles []career.Role, userSkills []string) []Result {
	out := make([]Result, 0, len(roles))
	for _, r := range roles {
		out = append(out, Compute(r, userSkills))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return len(out[i].MatchedSkills) > len(out[j].MatchedSkills)
	})
	return out
}
