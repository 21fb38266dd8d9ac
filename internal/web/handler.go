// Package web serves the browser form and its JSON counterpart.
package web

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/f3rmion/ireum/internal/hanja"
	"github.com/f3rmion/ireum/internal/logger"
	"github.com/f3rmion/ireum/internal/namer"
	"github.com/f3rmion/ireum/internal/naming"
)

const maxBodyBytes = 64 << 10

// Handler holds the collaborators of the HTTP routes. It keeps no
// per-request state.
type Handler struct {
	svc     namer.Suggester
	breaker *hanja.Breaker
	format  naming.Format
	log     *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithBreaker enables the per-character hanja breakdown in cards.
func WithBreaker(b *hanja.Breaker) HandlerOption {
	return func(h *Handler) { h.breaker = b }
}

// WithFormat sets the prompt format used by the HTML form.
func WithFormat(f naming.Format) HandlerOption {
	return func(h *Handler) {
		if f != "" {
			h.format = f
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// NewHandler creates the route handler around svc.
func NewHandler(svc namer.Suggester, opts ...HandlerOption) *Handler {
	h := &Handler{
		svc:    svc,
		format: naming.FormatJSON,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes builds the chi router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Post("/suggest", h.suggestForm)
	r.Post("/api/suggest", h.suggestAPI)
	r.Get("/healthz", h.healthz)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	return r
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			h.log.InfoContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, NewPage(naming.Request{}, nil, nil, h.breaker))
}

func (h *Handler) suggestForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	req := naming.Request{
		Surname:  r.PostForm.Get("surname"),
		Gender:   naming.Gender(r.PostForm.Get("gender")),
		Style:    naming.Style(r.PostForm.Get("style")),
		Length:   naming.Length(r.PostForm.Get("length")),
		Dollimja: r.PostForm.Get("dollimja"),
	}

	rs, err := h.svc.Suggest(r.Context(), req, h.format)
	if err != nil && !naming.Warning(err) {
		h.log.ErrorContext(r.Context(), "suggest failed", logger.Error(err))
	}
	if err == nil && rs == nil {
		rs = naming.ResultSet{}
	}

	h.render(w, r, http.StatusOK, NewPage(req, rs, err, h.breaker))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		h.log.ErrorContext(r.Context(), "render failed", logger.Error(err))
	}
}

// apiRequest is the /api/suggest body.
type apiRequest struct {
	naming.Request
	Format string `json:"format"`
}

// apiResponse is the /api/suggest success body.
type apiResponse struct {
	Format     naming.Format    `json:"format"`
	Names      naming.ResultSet `json:"names"`
	Disclaimer string           `json:"disclaimer"`
}

// apiError is the /api/suggest failure body.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *Handler) suggestAPI(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var body apiRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "bad_request", Message: "요청 본문이 올바른 JSON이 아닙니다."})
		return
	}

	format, err := naming.ParseFormat(body.Format)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid_input", Message: naming.UserMessage(err)})
		return
	}

	rs, err := h.svc.Suggest(r.Context(), body.Request, format)
	switch {
	case err == nil:
		if rs == nil {
			rs = naming.ResultSet{}
		}
		writeJSON(w, http.StatusOK, apiResponse{Format: format, Names: rs, Disclaimer: naming.Disclaimer})
	case naming.Warning(err):
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid_input", Message: naming.UserMessage(err)})
	default:
		h.log.ErrorContext(r.Context(), "suggest failed", logger.Error(err))
		status := http.StatusBadGateway
		if r.Context().Err() != nil {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, apiError{Error: "upstream", Message: naming.UserMessage(err)})
	}
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
