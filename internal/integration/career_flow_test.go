package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"roadtrip-career/internal/app"
	"roadtrip-career/internal/config"
	"roadtrip-career/internal/database"
	"roadtrip-career/internal/database/migration"
	dbpostgres "roadtrip-career/internal/database/postgres"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	User struct {
		ID uuid.UUID `json:"id"`
	} `json:"user"`
	AccessToken string `json:"access_token"`
}

type readinessData struct {
	GoalSet   bool `json:"goal_set"`
	Readiness *struct {
		Percentage    int      `json:"percentage"`
		Tier          string   `json:"tier"`
		MatchedSkills []string `json:"matched_skills"`
		MissingSkills []string `json:"missing_skills"`
	} `json:"readiness"`
}

func TestIntegration_Register_SetGoal_Readiness(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)

	f := newTestApp(t, db)

	email := "it-" + uuid.NewString()[:8] + "@example.com"
	auth := registerUser(t, f, email)
	defer cleanupUser(ctx, db, auth.User.ID)

	before := getReadiness(t, f, auth.AccessToken)
	if before.GoalSet || before.Readiness != nil {
		t.Fatalf("fresh account: expected goal_set=false, got %+v", before)
	}

	sr := doJSON(t, f, "PUT", "/api/v1/users/me", auth.AccessToken, map[string]any{
		"name":        "Integration",
		"career_goal": "data-analyst",
		"skills":      []string{"SQL", " Python ", "Excel", "SQL", "Go"},
	})
	if sr.Status != 200 {
		t.Fatalf("update profile: expected 200, got %d (message=%s)", sr.Status, sr.Message)
	}

	after := getReadiness(t, f, auth.AccessToken)
	if !after.GoalSet || after.Readiness == nil {
		t.Fatalf("expected readiness after setting goal, got %+v", after)
	}
	// 3 of 6
	if after.Readiness.Percentage != 50 || after.Readiness.Tier != "medium" {
		t.Fatalf("unexpected readiness: %+v", after.Readiness)
	}
	if got := strings.Join(after.Readiness.MatchedSkills, ","); got != "Python,SQL,Excel" {
		t.Fatalf("matched skills must follow role order, got %s", got)
	}

	sr = doJSON(t, f, "PUT", "/api/v1/users/me", auth.AccessToken, map[string]any{
		"career_goal": "astronaut",
		"skills":      []string{"SQL"},
	})
	if sr.Status != 400 {
		t.Fatalf("unknown goal: expected 400, got %d", sr.Status)
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("ROADTRIP_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("ROADTRIP_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("ROADTRIP_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("ROADTRIP_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("ROADTRIP_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("ROADTRIP_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set ROADTRIP_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	r := migration.Runner{Dir: resolveMigrationsDir(t)}
	if _, err := r.Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func resolveMigrationsDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve migrations dir: runtime.Caller failed")
	}

	// this file: internal/integration/career_flow_test.go
	root := filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
	migDir := filepath.Join(root, "migrations")

	files, _ := filepath.Glob(filepath.Join(migDir, "V*__*.sql"))
	if len(files) == 0 {
		t.Fatalf("resolve migrations dir: no migration files found in %s", migDir)
	}
	return migDir
}

func newTestApp(t *testing.T, db database.DB) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{AppName: "RoadtripCareer", Environment: "test", HTTPPort: "0"},
		JWT: config.JWTConfig{
			AccessSecret:     stringsOrDefault(os.Getenv("ROADTRIP_TEST_JWT_ACCESS_SECRET"), "test-access-secret"),
			RefreshSecret:    stringsOrDefault(os.Getenv("ROADTRIP_TEST_JWT_REFRESH_SECRET"), "test-refresh-secret"),
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}

	a := app.New(app.Wire(cfg, zap.NewNop(), db, nil))
	t.Cleanup(a.Container.Hub.Stop)
	return a.Fiber
}

func cleanupUser(ctx context.Context, db database.DB, id uuid.UUID) {
	_, _ = db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, id)
	_, _ = db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
}

func registerUser(t *testing.T, f *fiber.App, email string) authData {
	t.Helper()

	sr := doJSON(t, f, "POST", "/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	if sr.Status != 201 {
		t.Fatalf("register: expected status=201, got %d (message=%s)", sr.Status, sr.Message)
	}

	var out authData
	if err := json.Unmarshal(sr.Data, &out); err != nil {
		t.Fatalf("register: data unmarshal error: %v", err)
	}
	if out.AccessToken == "" || out.User.ID == uuid.Nil {
		t.Fatalf("register: missing token or user id: %s", sr.Data)
	}
	return out
}

func getReadiness(t *testing.T, f *fiber.App, token string) readinessData {
	t.Helper()

	sr := doJSON(t, f, "GET", "/api/v1/users/me/readiness", token, nil)
	if sr.Status != 200 {
		t.Fatalf("readiness: expected status=200, got %d (message=%s)", sr.Status, sr.Message)
	}
	var out readinessData
	if err := json.Unmarshal(sr.Data, &out); err != nil {
		t.Fatalf("readiness: data unmarshal error: %v", err)
	}
	return out
}

func doJSON(t *testing.T, f *fiber.App, method, path, token string, body any) semanticResponse {
	t.Helper()

	var rd *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.Test(req)
	if err != nil {
		t.Fatalf("%s %s: request error: %v", method, path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("%s %s: decode error: %v", method, path, err)
	}
	return sr
}

func stringsOrDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
