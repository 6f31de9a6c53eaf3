// internal/app/features/userinfo/handler.go
package userinfo

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/skillswap/skillswap/internal/app/store/users"
	"github.com/skillswap/skillswap/internal/app/system/auth"
	"github.com/skillswap/skillswap/internal/app/system/timeouts"
)

// Handler serves identity information for the current session.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

// NewHandler creates a new userinfo handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Users: userstore.New(db), Log: logger}
}

// ServeUserInfo returns JSON with the current user's authentication status,
// identity, and skill/group counts.
//
// Response format:
//
//	{ "isAuthenticated": bool, "id": "...", "name": "...", "email": "...",
//	  "role": "...", "skillsHave": n, "skillsWant": n, "groups": n }
func (h *Handler) ServeUserInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, ok := auth.CurrentUser(r)
	if !ok {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"isAuthenticated": false,
		})
		return
	}

	resp := map[string]any{
		"isAuthenticated": true,
		"id":              user.ID,
		"name":            user.Name,
		"email":           user.Email,
		"role":            user.Role,
	}

	if uid, err := primitive.ObjectIDFromHex(user.ID); err == nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()
		if u, err := h.Users.GetByID(ctx, uid); err == nil {
			resp["skillsHave"] = len(u.SkillsHave)
			resp["skillsWant"] = len(u.SkillsWant)
			resp["groups"] = len(u.Groups)
		} else {
			h.Log.Warn("userinfo: load user failed", zap.Error(err))
		}
	}

	_ = json.NewEncoder(w).Encode(resp)
}
