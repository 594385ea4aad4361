package delivery

import (
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// NewRouter builds the public router. A rateLimit of zero disables the
// per-IP limiter.
func NewRouter(rateLimit int, hChat *ChatHandler, hChecklist *ChecklistHandler, hSpeech *TranscribeHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	}))
	r.Use(RequestIDMiddleware)
	if rateLimit > 0 {
		r.Use(httprate.LimitByIP(rateLimit, time.Minute))
	}

	RegisterRoutes(r, hChat, hChecklist, hSpeech)
	return r
}

func RegisterRoutes(r chi.Router, hChat *ChatHandler, hChecklist *ChecklistHandler, hSpeech *TranscribeHandler) {
	r.Group(func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		pr.Get("/", Health)
		pr.Post("/chat", hChat.Chat)
		pr.Post("/checklist", hChecklist.Generate)
		pr.Post("/transcribe", hSpeech.Transcribe)
	})
}

func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
}
