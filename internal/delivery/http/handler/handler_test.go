package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"roadtrip-career/internal/delivery/http/dto"
	"roadtrip-career/internal/delivery/http/middleware"
	"roadtrip-career/internal/domain/user"
	"roadtrip-career/internal/usecase"
	ucuser "roadtrip-career/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type memUsers struct {
	byID map[uuid.UUID]user.User
}

func (m memUsers) CreateUser(_ context.Context, u user.User) error { m.byID[u.ID] = u; return nil }
func (m memUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}
func (m memUsers) GetUserByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (m memUsers) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

type memProfiles struct {
	byID map[uuid.UUID]user.Profile
}

func (m memProfiles) GetProfile(_ context.Context, id uuid.UUID) (user.Profile, error) {
	p, ok := m.byID[id]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}
func (m memProfiles) UpsertProfile(_ context.Context, p user.Profile) (user.Profile, error) {
	m.byID[p.UserID] = p
	return p, nil
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type fixture struct {
	app    *fiber.App
	userID uuid.UUID
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	id := uuid.New()
	users := memUsers{byID: map[uuid.UUID]user.User{id: {ID: id, Email: "ana@example.com"}}}
	profiles := memProfiles{byID: map[uuid.UUID]user.Profile{}}

	profileSvc := ucuser.NewService(users, profiles, nil)
	careerUC := usecase.NewCareerUsecase(nil)
	readinessUC := usecase.NewReadinessUsecase(nil, profileSvc, nil, zap.NewNop())
	roadmapUC := usecase.NewRoadmapUsecase(nil, nil, profileSvc)
	dashboardUC := usecase.NewDashboardUsecase(profileSvc, readinessUC)
	userUC := usecase.NewUserUsecase(profileSvc, readinessUC, nil, zap.NewNop())

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(zap.NewNop()).Middleware())

	api := app.Group("/api/v1")
	NewRoleHandler(careerUC, roadmapUC).RegisterRoutes(api)
	NewSkillHandler(careerUC).RegisterRoutes(api)
	NewReadinessHandler(readinessUC).RegisterRoutes(api)

	protected := api.Group("/users", func(c fiber.Ctx) error {
		if c.Get("X-Test-User") == "" {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		c.Locals(middleware.CtxUserIDKey, id)
		return c.Next()
	})
	NewUserHandler(userUC, readinessUC, roadmapUC, dashboardUC).RegisterRoutes(protected)

	return fixture{app: app, userID: id}
}

func (f fixture) do(t *testing.T, method, path string, body any, authed bool) (int, envelope) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("X-Test-User", "1")
	}

	resp, err := f.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode %s %s: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode data: %v (%s)", err, raw)
	}
	return v
}

func TestRoles(t *testing.T) {
	f := newFixture(t)

	status, env := f.do(t, http.MethodGet, "/api/v1/roles", nil, false)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	roles := decode[[]dto.RoleResponse](t, env.Data)
	if len(roles) != 5 || roles[0].ID != "software-developer" {
		t.Fatalf("unexpected roles: %+v", roles)
	}

	status, env = f.do(t, http.MethodGet, "/api/v1/roles/data-analyst", nil, false)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	role := decode[dto.RoleResponse](t, env.Data)
	if role.Title != "Data Analyst" || len(role.RequiredSkills) != 6 {
		t.Fatalf("unexpected role: %+v", role)
	}

	status, env = f.do(t, http.MethodGet, "/api/v1/roles/astronaut", nil, false)
	if status != http.StatusNotFound || env.Message != "Role not found" {
		t.Fatalf("expected 404 Role not found, got %d %q", status, env.Message)
	}
}

func TestRoleRoadmap(t *testing.T) {
	f := newFixture(t)

	status, env := f.do(t, http.MethodGet, "/api/v1/roles/cloud-engineer/roadmap", nil, false)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	rm := decode[dto.RoadmapResponse](t, env.Data)
	if rm.Role.ID != "cloud-engineer" || len(rm.Stages) != 6 || len(rm.Legend) != 4 {
		t.Fatalf("unexpected roadmap: %+v", rm)
	}
	if rm.Stages[0].Category != "learn" || rm.Stages[0].CategoryLabel != "Learn" {
		t.Fatalf("unexpected first stage: %+v", rm.Stages[0])
	}

	status, _ = f.do(t, http.MethodGet, "/api/v1/roles/astronaut/roadmap", nil, false)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestSkills(t *testing.T) {
	f := newFixture(t)
	status, env := f.do(t, http.MethodGet, "/api/v1/skills", nil, false)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if skills := decode[[]string](t, env.Data); len(skills) != 37 {
		t.Fatalf("expected 37 skills, got %d", len(skills))
	}
}

func TestComputeReadiness(t *testing.T) {
	f := newFixture(t)

	status, env := f.do(t, http.MethodPost, "/api/v1/readiness", dto.ReadinessRequest{
		RoleID: "data-analyst",
		Skills: []string{"Python", "SQL", "Excel", "Statistics", "R"},
	}, false)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	res := decode[dto.ReadinessResponse](t, env.Data)
	if res.Percentage != 83 || res.Tier != "high" || res.Message != "Excellent! You're almost ready!" {
		t.Fatalf("unexpected readiness: %+v", res)
	}
	if len(res.MissingSkills) != 1 || res.MissingSkills[0] != "Data Visualization" {
		t.Fatalf("unexpected missing skills: %v", res.MissingSkills)
	}

	status, env = f.do(t, http.MethodPost, "/api/v1/readiness", dto.ReadinessRequest{RoleID: "data-analyst"}, false)
	if status != http.StatusOK {
		t.Fatalf("expected 200 for empty skills, got %d", status)
	}
	if res := decode[dto.ReadinessResponse](t, env.Data); res.Percentage != 0 || len(res.MatchedSkills) != 0 || res.MatchedSkills == nil {
		t.Fatalf("unexpected empty-skill readiness: %+v", res)
	}

	if status, _ := f.do(t, http.MethodPost, "/api/v1/readiness", dto.ReadinessRequest{Skills: []string{"SQL"}}, false); status != http.StatusBadRequest {
		t.Fatalf("expected 400 without role, got %d", status)
	}
	if status, _ := f.do(t, http.MethodPost, "/api/v1/readiness", dto.ReadinessRequest{RoleID: "astronaut"}, false); status != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown role, got %d", status)
	}
}

func TestMeEndpoints_NoGoal(t *testing.T) {
	f := newFixture(t)

	status, env := f.do(t, http.MethodGet, "/api/v1/users/me/readiness", nil, true)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if r := decode[dto.MeReadinessResponse](t, env.Data); r.GoalSet || r.Readiness != nil {
		t.Fatalf("expected goal_set=false, got %+v", r)
	}

	status, env = f.do(t, http.MethodGet, "/api/v1/users/me/roadmap", nil, true)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if r := decode[dto.MeRoadmapResponse](t, env.Data); r.GoalSet || r.Roadmap != nil {
		t.Fatalf("expected goal_set=false, got %+v", r)
	}

	status, env = f.do(t, http.MethodGet, "/api/v1/users/me/dashboard", nil, true)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if d := decode[dto.DashboardResponse](t, env.Data); d.GoalSet || d.DisplayName != "ana" || d.Role != nil {
		t.Fatalf("unexpected dashboard: %+v", d)
	}
}

func TestMeEndpoints_AfterUpdate(t *testing.T) {
	f := newFixture(t)

	status, env := f.do(t, http.MethodPut, "/api/v1/users/me", dto.UpdateProfileRequest{
		CareerGoal: "devops-engineer",
		Skills:     []string{"Linux", "Docker", "Git", "Docker"},
	}, true)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, env.Message)
	}
	prof := decode[dto.UserProfileResponse](t, env.Data)
	if prof.ID != f.userID || len(prof.Skills) != 3 || prof.CareerGoal == nil || *prof.CareerGoal != "devops-engineer" {
		t.Fatalf("unexpected profile: %+v", prof)
	}

	_, env = f.do(t, http.MethodGet, "/api/v1/users/me/readiness", nil, true)
	r := decode[dto.MeReadinessResponse](t, env.Data)
	// 3 of 7 = 42.86
	if !r.GoalSet || r.Readiness == nil || r.Readiness.Percentage != 43 || r.Readiness.Tier != "low" {
		t.Fatalf("unexpected readiness: %+v", r)
	}

	_, env = f.do(t, http.MethodGet, "/api/v1/users/me/roadmap", nil, true)
	if rm := decode[dto.MeRoadmapResponse](t, env.Data); !rm.GoalSet || rm.Roadmap.Role.ID != "devops-engineer" {
		t.Fatalf("unexpected roadmap: %+v", rm)
	}

	_, env = f.do(t, http.MethodGet, "/api/v1/users/me/dashboard", nil, true)
	d := decode[dto.DashboardResponse](t, env.Data)
	if !d.GoalSet || d.SkillCount != 3 || d.RequiredSkillCount != 7 || d.Percentage != 43 {
		t.Fatalf("unexpected dashboard: %+v", d)
	}
}

func TestUpdateMe_Validation(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name string
		body dto.UpdateProfileRequest
		msg  string
	}{
		{name: "no goal", body: dto.UpdateProfileRequest{Skills: []string{"Git"}}, msg: "Invalid request payload"},
		{name: "unknown goal", body: dto.UpdateProfileRequest{CareerGoal: "astronaut", Skills: []string{"Git"}}, msg: "Unknown career goal"},
		{name: "no skills", body: dto.UpdateProfileRequest{CareerGoal: "data-analyst"}, msg: "Select at least one skill"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := f.do(t, http.MethodPut, "/api/v1/users/me", tc.body, true)
			if status != http.StatusBadRequest || env.Message != tc.msg {
				t.Fatalf("expected 400 %q, got %d %q", tc.msg, status, env.Message)
			}
		})
	}
}

func TestMe_Unauthorized(t *testing.T) {
	f := newFixture(t)
	if status, _ := f.do(t, http.MethodGet, "/api/v1/users/me", nil, false); status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHealth(t *testing.T) {
	cases := []struct {
		name   string
		db     Pinger
		cache  Pinger
		status int
		want   dto.HealthResponse
	}{
		{name: "all up", db: stubPinger{}, cache: stubPinger{}, status: http.StatusOK, want: dto.HealthResponse{Status: "ok", Database: "up", Redis: "up"}},
		{name: "redis down", db: stubPinger{}, cache: stubPinger{err: errors.New("down")}, status: http.StatusOK, want: dto.HealthResponse{Status: "ok", Database: "up", Redis: "down"}},
		{name: "db down", db: stubPinger{err: errors.New("down")}, cache: nil, status: http.StatusServiceUnavailable, want: dto.HealthResponse{Status: "degraded", Database: "down", Redis: "disabled"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			NewHealthHandler(tc.db, tc.cache).RegisterRoutes(app)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.StatusCode)
			}
			var env envelope
			if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := decode[dto.HealthResponse](t, env.Data); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}
