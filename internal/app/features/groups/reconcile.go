// internal/app/features/groups/reconcile.go
package groups

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/skillswap/skillswap/internal/app/system/timeouts"
)

// HandleReconcile is the self-service hook (POST /groups/reconcile): bring
// the current user's memberships in line with their skills. Users with no
// skills are left untouched on this path.
func (h *Handler) HandleReconcile(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := currentUserID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	joined, err := h.Assigner.ReconcileUser(ctx, uid)
	if err != nil {
		h.Log.Error("reconcile failed", zap.String("user_id", uid.Hex()), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if joined == nil {
		joined = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"joinedGroups": joined})
}

// HandleAssignAll is the administrative bulk hook (POST /groups/assign-all,
// admin only): reconcile every user; skill-less users are force-assigned to
// the default category. Returns the run's counters.
func (h *Handler) HandleAssignAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	res, err := h.Assigner.BulkReconcileAll(ctx)
	if err != nil {
		h.Log.Error("bulk assignment failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}
