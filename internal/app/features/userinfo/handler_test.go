package userinfo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/skillswap/skillswap/internal/testutil"
)

func TestServeUserInfo_Anonymous(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeUserInfo(rec, testutil.NewRequest(http.MethodGet, "/me", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out["isAuthenticated"] != false {
		t.Errorf("isAuthenticated = %v, want false", out["isAuthenticated"])
	}
	if _, present := out["email"]; present {
		t.Error("anonymous response should not leak identity fields")
	}
}

func TestServeUserInfo_SignedIn(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	u := fx.CreateUser(ctx, "Info User", "info@test.com",
		[]string{"Python", "SQL"}, []string{"AWS"})

	h := NewHandler(db, zap.NewNop())
	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/me", "",
		testutil.AsTestUser(u.ID, u.FullName, u.Role))
	rec := httptest.NewRecorder()
	h.ServeUserInfo(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out struct {
		IsAuthenticated bool   `json:"isAuthenticated"`
		Name            string `json:"name"`
		Role            string `json:"role"`
		SkillsHave      int    `json:"skillsHave"`
		SkillsWant      int    `json:"skillsWant"`
		Groups          int    `json:"groups"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !out.IsAuthenticated || out.Name != "Info User" || out.Role != "member" {
		t.Errorf("identity = %+v", out)
	}
	if out.SkillsHave != 2 || out.SkillsWant != 1 || out.Groups != 0 {
		t.Errorf("counts = %+v", out)
	}
}
