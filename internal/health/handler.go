package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type checker interface {
	Check() (err error)
}

func newHandler(state checker, metricsHandler http.Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.CleanPath)
	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		err := state.Check()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	router.Method(http.MethodGet, "/metrics", metricsHandler)
	return router
}
