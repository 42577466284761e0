package pkg

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/pkg/errors"
	"github.com/snwfdhmp/errlog"
)

// MaxPayloadBytes matches the Lambda limit for a synchronous invocation payload.
const MaxPayloadBytes = 6 * 1024 * 1024

// NewRouter serves the handler over HTTP so events can be replayed locally without a Lambda runtime.
func NewRouter(h *Handler, c *Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Timeout(c.Timeout))
	r.Use(middleware.Throttle(c.Throttle))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get(
		"/healthz", func(w http.ResponseWriter, r *http.Request) {
			render.JSON(w, r, map[string]string{"status": "ok"})
		},
	)
	r.Post(
		"/invoke", func(w http.ResponseWriter, r *http.Request) {
			payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxPayloadBytes))
			if err != nil {
				h.logger.WithError(err).Error("read invoke body")
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					w.WriteHeader(http.StatusRequestEntityTooLarge)
					return
				}
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if err = h.Handle(r.Context(), payload); errlog.Debug(err) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(err.Error()))
				return
			}
			render.JSON(w, r, nil)
		},
	)
	return r
}
