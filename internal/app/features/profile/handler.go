// Package profile serves the current user's profile and handles skill-list
// updates, which are the trigger for group reconciliation.
package profile

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap/internal/app/assign"
	userstore "github.com/skillswap/skillswap/internal/app/store/users"
	"github.com/skillswap/skillswap/internal/app/system/auth"
	"github.com/skillswap/skillswap/internal/app/system/htmlsanitize"
	"github.com/skillswap/skillswap/internal/app/system/timeouts"
)

// maxSkills caps each skill list; beyond this the request is rejected.
const maxSkills = 50

type Handler struct {
	Users    *userstore.Store
	Assigner *assign.Assigner
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    userstore.New(db),
		Assigner: assign.New(db, logger),
		Log:      logger,
	}
}

// ServeProfile returns the current user's full profile document.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := currentUserID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		h.Log.Error("profile: load failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(u)
}

type skillsRequest struct {
	SkillsHave []string `json:"skillsHave"`
	SkillsWant []string `json:"skillsWant"`
}

type skillsResponse struct {
	SkillsHave   []string `json:"skillsHave"`
	SkillsWant   []string `json:"skillsWant"`
	JoinedGroups []string `json:"joinedGroups"`
}

// HandleUpdateSkills replaces both skill lists and immediately reconciles
// the user's group memberships (the skill-change hook). Reconciliation is
// additive: shrinking a skill list never leaves a group.
func (h *Handler) HandleUpdateSkills(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := currentUserID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req skillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if len(req.SkillsHave) > maxSkills || len(req.SkillsWant) > maxSkills {
		http.Error(w, "too many skills", http.StatusBadRequest)
		return
	}

	have := cleanSkills(req.SkillsHave)
	want := cleanSkills(req.SkillsWant)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Users.UpdateSkills(ctx, uid, have, want); err != nil {
		h.Log.Error("profile: skill update failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	joined, err := h.Assigner.ReconcileUser(ctx, uid)
	if err != nil {
		h.Log.Error("profile: reconcile failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if joined == nil {
		joined = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(skillsResponse{
		SkillsHave:   have,
		SkillsWant:   want,
		JoinedGroups: joined,
	})
}

// cleanSkills sanitizes each entry to plain text and drops empties and
// case-insensitive duplicates, preserving order.
func cleanSkills(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = htmlsanitize.Text(s)
		if s == "" {
			continue
		}
		key := text.Fold(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func currentUserID(r *http.Request) (*auth.SessionUser, primitive.ObjectID, bool) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		return nil, primitive.NilObjectID, false
	}
	uid, err := primitive.ObjectIDFromHex(su.ID)
	if err != nil {
		return nil, primitive.NilObjectID, false
	}
	return su, uid, true
}
