package groups

import (
	"github.com/go-chi/chi/v5"

	"github.com/skillswap/skillswap/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(sm.RequireSignedIn)
		gr.Get("/", h.ServeGroupsList)
		gr.Post("/reconcile", h.HandleReconcile)
		gr.With(sm.RequireRole("admin")).Post("/assign-all", h.HandleAssignAll)
		gr.Get("/{id}", h.ServeGroupDetail)
		gr.Get("/{id}/quiz", h.HandleStartQuiz)
		gr.Post("/{id}/quiz", h.HandleSubmitQuiz)
	})
	return r
}
