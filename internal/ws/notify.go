package ws

import (
	"encoding/json"
	"time"

	"roadtrip-career/internal/usecase"

	"github.com/google/uuid"
)

const EventReadinessUpdated = "readiness_updated"

type ReadinessEvent struct {
	Type          string   `json:"type"`
	RoleID        string   `json:"role_id"`
	RoleTitle     string   `json:"role_title"`
	Percentage    int      `json:"percentage"`
	Tier          string   `json:"tier"`
	Message       string   `json:"message"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Timestamp     string   `json:"timestamp"`
}

// Notifier pushes readiness updates through a Hub. It satisfies
// usecase.ReadinessNotifier.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) NotifyReadiness(userID uuid.UUID, report usecase.ReadinessReport) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ReadinessEvent{
		Type:          EventReadinessUpdated,
		RoleID:        report.Role.ID,
		RoleTitle:     report.Role.Title,
		Percentage:    report.Result.Percentage,
		Tier:          string(report.Result.Tier),
		Message:       report.Message,
		MatchedSkills: report.Result.MatchedSkills,
		MissingSkills: report.Result.MissingSkills,
		Timestamp:     n.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.SendToUser(userID, b)
}
