// internal/app/features/groups/view.go
package groups

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap/internal/app/system/timeouts"
	"github.com/skillswap/skillswap/internal/domain/models"
)

type groupDetail struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Icon        string                `json:"icon"`
	Color       string                `json:"color"`
	Description string                `json:"description"`
	MemberCount int                   `json:"memberCount"`
	Messages    []models.GroupMessage `json:"messages"`
}

// ServeGroupDetail handles GET /groups/{id}. The message feed is visible to
// members only; everyone else gets 403 and should go through the quiz flow.
func (h *Handler) ServeGroupDetail(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := currentUserID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	gid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad group id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	g, err := h.Groups.GetByID(ctx, gid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeJSONError(w, http.StatusNotFound, "group not found")
			return
		}
		h.Log.Error("group detail: load failed", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !g.HasMember(uid) {
		writeJSONError(w, http.StatusForbidden, "join the group to view its messages")
		return
	}

	msgs := g.Messages
	if msgs == nil {
		msgs = []models.GroupMessage{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(groupDetail{
		ID:          g.ID.Hex(),
		Name:        g.Name,
		Icon:        g.Icon,
		Color:       g.Color,
		Description: g.Description,
		MemberCount: len(g.Members),
		Messages:    msgs,
	})
}
