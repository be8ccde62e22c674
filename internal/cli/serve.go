package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/legendkit/pkg/buildinfo"
	"github.com/matzehuels/legendkit/pkg/errors"
	"github.com/matzehuels/legendkit/pkg/legend/layout"
	"github.com/matzehuels/legendkit/pkg/legend/model"
	"github.com/matzehuels/legendkit/pkg/observability"
	"github.com/matzehuels/legendkit/pkg/pipeline"
	"github.com/matzehuels/legendkit/pkg/session"
)

// maxBodyBytes bounds request documents.
const maxBodyBytes = 4 << 20

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		sessions   string
		sessionTTL time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve legend layout and rendering over HTTP",
		Long: `Serve legend layout and rendering over HTTP.

Endpoints:
  POST /v1/layout     layout JSON and the state for the next draw
  POST /v1/paginate   follow a navigation arrow from a previous state
  POST /v1/render     rendered artifact (?format=svg|png|pdf|json)

  POST   /v1/sessions              lay out a document and keep its state
  GET    /v1/sessions/{id}         the page currently shown
  POST   /v1/sessions/{id}/{dir}   follow an arrow (dir: next|previous)
  DELETE /v1/sessions/{id}         forget the session

  GET  /healthz       build information

Request bodies are {"document": <data document>, "options": {...}}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, sessions, sessionTTL)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&sessions, "sessions", "memory", "session store: memory, file or redis")
	cmd.Flags().DurationVar(&sessionTTL, "session-ttl", session.DefaultTTL, "lifetime of an idle session")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, sessions string, ttl time.Duration) error {
	runner, err := c.newRunner()
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	store, err := c.newSessionStore(sessions)
	if err != nil {
		return fmt.Errorf("initialize sessions: %w", err)
	}
	defer store.Close()

	s := newServer(runner, store, c.serverDefaults(), c.Logger)
	s.sessionTTL = ttl
	go s.sweep(ctx, ttl)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newSessionStore opens the session backend named by kind. File sessions
// live next to the cache; redis sessions share the cache server.
func (c *CLI) newSessionStore(kind string) (session.Store, error) {
	switch kind {
	case "", "memory":
		return session.NewMemoryStore(), nil
	case "file":
		return session.NewFileStore(filepath.Join(c.Settings.Cache.Dir, "sessions"))
	case "redis":
		if c.Settings.Cache.RedisURL == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "redis sessions need cache.redis_url")
		}
		return session.NewRedisStore(c.Settings.Cache.RedisURL)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown session store %q", kind)
}

// serverDefaults returns the render defaults from the settings, used for fields a
// request leaves empty.
func (c *CLI) serverDefaults() pipeline.Options {
	opts := c.baseOptions()
	opts.Logger = nil
	return opts
}

// =============================================================================
// server - HTTP handlers
// =============================================================================

type server struct {
	runner     *pipeline.Runner
	sessions   session.Store
	sessionTTL time.Duration
	defaults   pipeline.Options
	logger     *log.Logger
}

func newServer(runner *pipeline.Runner, sessions session.Store, defaults pipeline.Options, logger *log.Logger) *server {
	return &server{
		runner:     runner,
		sessions:   sessions,
		sessionTTL: session.DefaultTTL,
		defaults:   defaults,
		logger:     logger,
	}
}

// sweep drops expired sessions until ctx ends.
func (s *server) sweep(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := s.sessions.Cleanup(ctx); err != nil {
				s.logger.Warn("session cleanup failed", "error", err)
			}
		}
	}
}

// layoutRequest is the body of every POST endpoint.
type layoutRequest struct {
	Document  json.RawMessage  `json:"document"`
	Options   pipeline.Options `json:"options"`
	Direction string           `json:"direction,omitempty"`
}

type layoutResponse struct {
	Layout layout.Layout `json:"layout"`
	State  layout.State  `json:"state"`
	Cached bool          `json:"cached"`
}

type sessionResponse struct {
	ID        string        `json:"id"`
	Layout    layout.Layout `json:"layout"`
	State     layout.State  `json:"state"`
	ExpiresAt time.Time     `json:"expires_at"`
}

func newSessionResponse(sess *session.Session) sessionResponse {
	return sessionResponse{ID: sess.ID, Layout: sess.Layout, State: sess.State, ExpiresAt: sess.ExpiresAt}
}

type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func (s *server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/paginate", s.handlePaginate)
		r.Post("/render", s.handleRender)
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Get("/{id}", s.handleGetSession)
			r.Post("/{id}/{direction}", s.handlePageSession)
			r.Delete("/{id}", s.handleDeleteSession)
		})
	})
	return r
}

// observe logs each request and reports it to the HTTP hooks.
func (s *server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"id", middleware.GetReqID(r.Context()),
			"duration", time.Since(start))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

func (s *server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req, data, ok := s.decode(w, r)
	if !ok {
		return
	}
	l, st, hit, err := s.runner.ComputeLayoutWithCacheInfo(r.Context(), data, req.Options)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{Layout: l, State: st, Cached: hit})
}

func (s *server) handlePaginate(w http.ResponseWriter, r *http.Request) {
	req, data, ok := s.decode(w, r)
	if !ok {
		return
	}
	d, valid := layout.ParseDirection(req.Direction)
	if !valid {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid direction: %q", req.Direction))
		return
	}
	if req.Options.State == nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "options.state is required to paginate"))
		return
	}
	if err := req.Options.ValidateForLayout(); err != nil {
		s.writeError(w, err)
		return
	}
	l, st, err := s.runner.Paginate(r.Context(), data, *req.Options.State, d, req.Options)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{Layout: l, State: st})
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, data, ok := s.decode(w, r)
	if !ok {
		return
	}
	opts := req.Options
	if f := r.URL.Query().Get("format"); f != "" {
		opts.Formats = []string{f}
	}
	if len(opts.Formats) == 0 {
		opts.Formats = s.defaults.Formats
	}
	if len(opts.Formats) > 1 {
		opts.Formats = opts.Formats[:1]
	}

	res, err := s.runner.Execute(r.Context(), data, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	format := opts.Formats[0]
	stateJSON, _ := json.Marshal(res.State)
	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("X-Legend-State", string(stateJSON))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	req, data, ok := s.decode(w, r)
	if !ok {
		return
	}
	l, st, err := s.runner.ComputeLayout(r.Context(), data, req.Options)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sess := session.New(data, req.Options, l, st, s.sessionTTL)
	if err := s.sessions.Set(r.Context(), sess); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Debug("session created", "id", sess.ID, "items", len(data.DataPoints))
	writeJSON(w, http.StatusCreated, newSessionResponse(sess))
}

func (s *server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(sess))
}

func (s *server) handlePageSession(w http.ResponseWriter, r *http.Request) {
	d, valid := layout.ParseDirection(chi.URLParam(r, "direction"))
	if !valid {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid direction: %q", chi.URLParam(r, "direction")))
		return
	}
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts := sess.Options
	opts.Logger = s.logger
	l, st, err := s.runner.Paginate(r.Context(), sess.Data, sess.State, d, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sess.Touch(l, st, s.sessionTTL)
	if err := s.sessions.Set(r.Context(), sess); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(sess))
}

func (s *server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decode reads the request body and the document inside it, filling unset
// render options from the server defaults.
func (s *server) decode(w http.ResponseWriter, r *http.Request) (layoutRequest, model.Data, bool) {
	var req layoutRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return req, model.Data{}, false
	}
	if len(req.Document) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "document is required"))
		return req, model.Data{}, false
	}
	data, err := pipeline.Read(bytes.NewReader(req.Document), &req.Options)
	if err != nil {
		s.writeError(w, err)
		return req, model.Data{}, false
	}
	if req.Options.Scale == 0 {
		req.Options.Scale = s.defaults.Scale
	}
	if req.Options.Background == "" {
		req.Options.Background = s.defaults.Background
	}
	req.Options.EmbedFonts = req.Options.EmbedFonts || s.defaults.EmbedFonts
	req.Options.Logger = s.logger
	return req, data, true
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= 500 {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: errors.GetCode(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func contentType(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatPDF:
		return "application/pdf"
	}
	return "application/json"
}
