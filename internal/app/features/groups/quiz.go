// internal/app/features/groups/quiz.go
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

	"github.com/skillswap/skillswap/internal/app/quiz"
	"github.com/skillswap/skillswap/internal/app/system/timeouts"
)

// HandleStartQuiz handles GET /groups/{id}/quiz: offer a 10-question quiz
// for a group the user is not a member of.
func (h *Handler) HandleStartQuiz(w http.ResponseWriter, r *http.Request) {
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

	session, err := h.Engine.Start(ctx, uid, gid)
	if err != nil {
		h.writeQuizError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(session)
}

type submitRequest struct {
	Answers []quiz.Answer `json:"answers"`
}

// HandleSubmitQuiz handles POST /groups/{id}/quiz: grade the attempt and
// either admit the user or lock the group for 7 days.
func (h *Handler) HandleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
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

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if len(req.Answers) == 0 || len(req.Answers) > quiz.QuestionsPerQuiz {
		http.Error(w, "expected between 1 and 10 answers", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	result, err := h.Engine.Submit(ctx, uid, gid, req.Answers)
	if err != nil {
		h.writeQuizError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// writeQuizError maps engine errors onto distinct statuses and messages.
// Lock errors keep their day-count detail; scores travel in the result
// payload, not here.
func (h *Handler) writeQuizError(w http.ResponseWriter, err error) {
	var locked *quiz.LockedError
	switch {
	case errors.Is(err, quiz.ErrAlreadyMember):
		writeJSONError(w, http.StatusConflict, err.Error())
	case errors.As(err, &locked):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":       locked.Error(),
			"lockedUntil": locked.Until,
			"daysLeft":    locked.DaysLeft,
			"attempts":    locked.Attempts,
		})
	case errors.Is(err, quiz.ErrNoQuiz):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, mongo.ErrNoDocuments):
		writeJSONError(w, http.StatusNotFound, "group not found")
	default:
		h.Log.Error("quiz operation failed", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
