package usecase

import (
	ucuser "roadtrip-career/internal/usecase/user"
)

// CareerSnapshot is the engine's view of a user: a role id and a skill set,
// detached from how profiles are stored.
type CareerSnapshot struct {
	RoleID string
	Skills []string
}

// SnapshotFromProfile returns false when the profile has no career goal.
func SnapshotFromProfile(p ucuser.Profile) (CareerSnapshot, bool) {
	if !p.HasCareerGoal() {
		return CareerSnapshot{}, false
	}
	skills := make([]string, len(p.Skills))
	copy(skills, p.Skills)
	return CareerSnapshot{RoleID: *p.CareerGoal, Skills: skills}, true
}
