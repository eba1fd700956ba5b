package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	ucuser "roadtrip-career/internal/usecase/user"

	"github.com/google/uuid"
)

type stubProfiles struct {
	p   ucuser.Profile
	err error
}

func (s stubProfiles) GetProfile(context.Context, uuid.UUID) (ucuser.Profile, error) {
	return s.p, s.err
}

type memCache struct {
	mu     sync.Mutex
	items  map[string][]byte
	gets   int
	sets   int
	getErr error
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}}
}

func (m *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.getErr != nil {
		return false, m.getErr
	}
	b, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.sets++
	m.items[key] = b
	return nil
}

type recordingNotifier struct {
	calls []ReadinessReport
	users []uuid.UUID
}

func (r *recordingNotifier) NotifyReadiness(userID uuid.UUID, report ReadinessReport) {
	r.users = append(r.users, userID)
	r.calls = append(r.calls, report)
}

func strptr(s string) *string { return &s }

func profileWithGoal(goal string, skills ...string) ucuser.Profile {
	return ucuser.Profile{
		UserID:     uuid.New(),
		Email:      "ana@example.com",
		CareerGoal: strptr(goal),
		Skills:     skills,
	}
}
