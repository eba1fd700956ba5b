package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"roadtrip-career/internal/domain/readiness"
	ucuser "roadtrip-career/internal/usecase/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestReadiness_Compute(t *testing.T) {
	uc := NewReadinessUsecase(nil, nil, nil, zap.NewNop())

	report, err := uc.Compute(context.Background(), CareerSnapshot{
		RoleID: "data-analyst",
		Skills: []string{"SQL", " Python ", "Go"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Role.ID != "data-analyst" || report.Role.Title != "Data Analyst" {
		t.Fatalf("unexpected role: %+v", report.Role)
	}
	if want := []string{"Python", "SQL"}; !reflect.DeepEqual(report.Result.MatchedSkills, want) {
		t.Fatalf("expected matched %v, got %v", want, report.Result.MatchedSkills)
	}
	if report.Result.Percentage != 33 || report.Result.Tier != readiness.TierLow {
		t.Fatalf("unexpected result: %+v", report.Result)
	}
	if report.Message != readiness.TierLow.Message() {
		t.Fatalf("unexpected message %q", report.Message)
	}
}

func TestReadiness_Compute_UnknownRole(t *testing.T) {
	uc := NewReadinessUsecase(nil, nil, newMemCache(), nil)
	if _, err := uc.Compute(context.Background(), CareerSnapshot{RoleID: "astronaut"}); !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestReadiness_Compute_UsesCache(t *testing.T) {
	cache := newMemCache()
	uc := NewReadinessUsecase(nil, nil, cache, zap.NewNop())
	ctx := context.Background()

	first, err := uc.Compute(ctx, CareerSnapshot{RoleID: "data-analyst", Skills: []string{"SQL", "Excel"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	second, err := uc.Compute(ctx, CareerSnapshot{RoleID: "data-analyst", Skills: []string{"Excel", "SQL", "SQL"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache hit, got %d writes", cache.sets)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached report differs:\n%+v\n%+v", first, second)
	}
}

func TestReadiness_Compute_CacheErrorFallsBack(t *testing.T) {
	cache := newMemCache()
	cache.getErr = errors.New("redis down")
	uc := NewReadinessUsecase(nil, nil, cache, zap.NewNop())

	report, err := uc.Compute(context.Background(), CareerSnapshot{RoleID: "data-analyst", Skills: []string{"SQL"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Result.Percentage != 17 {
		t.Fatalf("expected 17, got %d", report.Result.Percentage)
	}
}

func TestReadiness_ForUser(t *testing.T) {
	cases := []struct {
		name    string
		reader  stubProfiles
		goalSet bool
		pct     int
		err     error
	}{
		{name: "goal set", reader: stubProfiles{p: profileWithGoal("data-analyst", "Python", "SQL", "Excel")}, goalSet: true, pct: 50},
		{name: "no goal", reader: stubProfiles{p: ucuser.Profile{Skills: []string{"SQL"}}}, goalSet: false},
		{name: "stale goal", reader: stubProfiles{p: profileWithGoal("retired-role", "SQL")}, goalSet: false},
		{name: "unknown user", reader: stubProfiles{err: ucuser.ErrNotFound}, err: ErrUserNotFound},
		{name: "store failure", reader: stubProfiles{err: ucuser.ErrInternal}, err: ErrInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewReadinessUsecase(nil, tc.reader, nil, zap.NewNop())
			got, err := uc.ForUser(context.Background(), uuid.New())
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got.GoalSet != tc.goalSet {
				t.Fatalf("expected goalSet=%v, got %v", tc.goalSet, got.GoalSet)
			}
			if tc.goalSet && got.Report.Result.Percentage != tc.pct {
				t.Fatalf("expected %d%%, got %d%%", tc.pct, got.Report.Result.Percentage)
			}
		})
	}
}

func TestSnapshotFromProfile_Copies(t *testing.T) {
	p := profileWithGoal("data-analyst", "SQL")
	snap, ok := SnapshotFromProfile(p)
	if !ok {
		t.Fatalf("expected snapshot")
	}
	snap.Skills[0] = "mutated"
	if p.Skills[0] != "SQL" {
		t.Fatalf("snapshot aliases profile skills")
	}

	if _, ok := SnapshotFromProfile(ucuser.Profile{CareerGoal: strptr("")}); ok {
		t.Fatalf("empty goal must not produce a snapshot")
	}
}
