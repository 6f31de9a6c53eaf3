// internal/app/features/groups/list.go
package groups

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap/internal/app/quiz"
	"github.com/skillswap/skillswap/internal/app/system/auth"
	"github.com/skillswap/skillswap/internal/app/system/timeouts"
)

// ServeGroupsList handles GET /groups: every existing group partitioned for
// the current user into userGroups / availableGroups / lockedGroups.
//
// The partition is derived on every request from the stored membership sets
// and lock records; lock expiry is just a timestamp comparison here.
func (h *Handler) ServeGroupsList(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := currentUserID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		h.Log.Error("groups list: load user failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	all, err := h.Groups.ListAll(ctx)
	if err != nil {
		h.Log.Error("groups list: load groups failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(quiz.CategorizeGroups(u, all, time.Now().UTC()))
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
