// Package api provides the HTTP API for running policy simulations.
// GET endpoints are public. Reseeding requires a bearer token.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/talgya/urban-sandbox/internal/citygrid"
	"github.com/talgya/urban-sandbox/internal/engine"
	"github.com/talgya/urban-sandbox/internal/narrative"
	"github.com/talgya/urban-sandbox/internal/persistence"
	"github.com/talgya/urban-sandbox/internal/regions"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 100
	maxBodyBytes     = 64 << 10
)

// Server serves simulations over HTTP.
type Server struct {
	Sim            *engine.Simulation
	DB             *persistence.DB // optional run archive
	Port           int
	AdminKey       string // Bearer token for reseed. Empty = reseed disabled.
	RatePerMinute  int
	AllowedOrigins []string
	DefaultYears   int
	DefaultLocale  narrative.Locale

	started time.Time
}

// simulateRequest mirrors engine.Request with an optional year count.
type simulateRequest struct {
	Policy string `json:"policy"`
	Years  *int   `json:"years"`
	Locale string `json:"locale"`
	Staged bool   `json:"staged"`
}

type regionSupport struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	NameZH  string `json:"name_zh"`
	Support int    `json:"support"`
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	if s.started.IsZero() {
		s.started = time.Now()
	}
	if s.DefaultYears == 0 {
		s.DefaultYears = 10
	}

	origins := s.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	limiter := NewRateLimiter(s.RatePerMinute, time.Minute)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/samples", s.handleSamples)
		r.Get("/criteria", s.handleCriteria)
		r.Get("/grid", s.handleGrid)

		r.With(RateLimit(limiter)).Post("/simulate", s.handleSimulate)

		r.Get("/runs", s.handleRuns)
		r.Get("/runs/{id}", s.handleRun)

		r.Get("/regions", s.handleRegions)
		r.Get("/regions/{id}", s.handleRegion)

		r.With(s.adminOnly).Post("/reseed", s.handleReseed)
	})

	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("HTTP API starting", "addr", srv.Addr, "admin_auth", s.AdminKey != "", "archive", s.DB != nil)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	slog.Info("HTTP API stopped")
	return nil
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly requires the admin bearer token.
func (s *Server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.AdminKey == "" {
			writeError(w, http.StatusForbidden, "admin endpoints disabled (no URBANSIM_ADMIN_KEY set)")
			return
		}
		if !s.checkBearerToken(r) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) locale(r *http.Request) narrative.Locale {
	if q := r.URL.Query().Get("locale"); q != "" {
		return narrative.ParseLocale(q)
	}
	return narrative.ParseLocale(string(s.DefaultLocale))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	grid := s.Sim.Grid()
	status := map[string]any{
		"name":           "Urban Sandbox",
		"seed":           s.Sim.Seed(),
		"population":     len(s.Sim.Population()),
		"census":         s.Sim.Census(),
		"activity_level": grid.Level(),
		"regions":        s.Sim.Regions() != nil,
		"archive":        s.DB != nil,
		"uptime_seconds": int(time.Since(s.started).Seconds()),
	}
	if s.DB != nil {
		if n, err := s.DB.CountRuns(); err == nil {
			status["archived_runs"] = n
		} else {
			slog.Warn("count runs failed", "error", err)
		}
	}
	writeJSON(w, status)
}

func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	l := s.locale(r)
	writeJSON(w, map[string]any{
		"locale":   l,
		"policies": narrative.SamplePolicies(l),
	})
}

func (s *Server) handleCriteria(w http.ResponseWriter, r *http.Request) {
	l := s.locale(r)
	writeJSON(w, map[string]any{
		"locale":   l,
		"criteria": narrative.Criteria(l),
	})
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	grid := s.Sim.Grid()
	level := grid.Level()
	writeJSON(w, map[string]any{
		"level":  level,
		"label":  citygrid.Label(s.locale(r), level),
		"counts": grid.Counts(),
		"blocks": grid.Blocks(),
	})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var body simulateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	locale := narrative.ParseLocale(body.Locale)
	if body.Locale == "" {
		locale = narrative.ParseLocale(string(s.DefaultLocale))
	}
	req := engine.Request{Policy: body.Policy, Years: s.DefaultYears, Locale: locale}
	if body.Years != nil {
		req.Years = *body.Years
	}

	var (
		res *engine.Result
		err error
	)
	if body.Staged {
		res, err = s.Sim.RunStaged(r.Context(), req, nil)
	} else {
		res, err = s.Sim.Run(r.Context(), req)
	}
	switch {
	case errors.Is(err, engine.ErrInvalidInput):
		writeJSONStatus(w, http.StatusBadRequest, map[string]any{
			"error":  err.Error(),
			"prompt": narrative.EnterPolicyPrompt(locale),
		})
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "simulation cancelled")
		return
	case err != nil:
		slog.Error("simulation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "simulation failed")
		return
	}

	if s.DB != nil {
		if err := s.DB.SaveRun(res); err != nil {
			slog.Warn("archive run failed", "run_id", res.RunID, "error", err)
		}
	}

	writeJSON(w, res)
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		writeError(w, http.StatusNotFound, "run archive disabled")
		return
	}

	limit := defaultRunsLimit
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxRunsLimit)
	}

	runs, err := s.DB.RecentRuns(limit)
	if err != nil {
		slog.Error("recent runs failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not load runs")
		return
	}
	writeJSON(w, runs)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		writeError(w, http.StatusNotFound, "run archive disabled")
		return
	}

	id := chi.URLParam(r, "id")
	res, err := s.DB.GetRun(id)
	if errors.Is(err, persistence.ErrNotFound) {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		slog.Error("get run failed", "run_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load run")
		return
	}
	writeJSON(w, res)
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	adj := s.Sim.Regions()
	if adj == nil {
		writeError(w, http.StatusNotFound, "regional breakdown not configured")
		return
	}

	figures, err := adj.Cache().All(r.Context())
	if err != nil {
		slog.Error("region cache read failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not load regions")
		return
	}

	out := make([]regionSupport, 0, len(regions.Districts))
	for _, d := range regions.Districts {
		v, ok := figures[d.ID]
		if !ok {
			continue
		}
		out = append(out, regionSupport{ID: d.ID, Name: d.Name, NameZH: d.NameZH, Support: v})
	}

	resp := map[string]any{"regions": out}
	if overall, ok := figures[regions.OverallKey]; ok {
		resp[regions.OverallKey] = overall
	}
	writeJSON(w, resp)
}

func (s *Server) handleRegion(w http.ResponseWriter, r *http.Request) {
	adj := s.Sim.Regions()
	if adj == nil {
		writeError(w, http.StatusNotFound, "regional breakdown not configured")
		return
	}

	id := chi.URLParam(r, "id")
	d, ok := regions.Lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown region")
		return
	}

	v, found, err := adj.Cache().Get(r.Context(), id)
	if err != nil {
		slog.Error("region cache read failed", "region", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load region")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "no simulation has run yet")
		return
	}

	writeJSON(w, map[string]any{
		"region":  d,
		"support": v,
	})
}

func (s *Server) handleReseed(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Seed int64 `json:"seed"`
	}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	seed := s.Sim.Reseed(body.Seed)
	if s.DB != nil {
		if err := s.DB.SaveMeta("seed", strconv.FormatInt(seed, 10)); err != nil {
			slog.Warn("save seed failed", "error", err)
		}
	}

	slog.Info("population reseeded", "seed", seed, "request_id", middleware.GetReqID(r.Context()))
	writeJSON(w, map[string]any{
		"seed":       seed,
		"population": len(s.Sim.Population()),
	})
}

func writeJSON(w http.ResponseWriter, data any) {
	writeJSONStatus(w, http.StatusOK, data)
}

func writeJSONStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSONStatus(w, status, map[string]string{"error": msg})
}
