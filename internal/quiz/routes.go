package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/questions", h.ListQuestions)
	r.Post("/answers", h.SubmitAnswers)
	return r
}
