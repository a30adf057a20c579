// Package api exposes layouts and placement over HTTP.
//
// The server is read-mostly: layouts are listed, fetched, validated, and
// rendered; the one mutating route deletes a stored layout. Placement is a
// pure function of the posted layout, so /place never touches storage.
package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rikardjonsson/pylon/pkg/errors"
	"github.com/rikardjonsson/pylon/pkg/grid"
	"github.com/rikardjonsson/pylon/pkg/persist"
	"github.com/rikardjonsson/pylon/pkg/render"
)

// Server serves the layout API over a persister.
type Server struct {
	logger *log.Logger

	// The persister's index and the underlying manager-free operations are
	// not safe for concurrent writers; one lock serializes handlers.
	mu        sync.Mutex
	persister *persist.Persister
}

// NewServer creates an API server over the given persister.
func NewServer(p *persist.Persister, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{persister: p, logger: logger}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/layouts", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/validate", s.handleValidate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Post("/render", s.handleRender)
		})
	})
	r.Post("/place", s.handlePlace)

	return r
}

// =============================================================================
// Responses
// =============================================================================

// apiError is the JSON error body: a machine-readable code plus a message.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, apiError{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}

// layoutSummary is the listing form of a snapshot, without item records.
type layoutSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Items      int       `json:"items"`
	Autosave   bool      `json:"autosave"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snaps := s.persister.List()
	s.mu.Unlock()

	summaries := make([]layoutSummary, 0, len(snaps))
	for _, snap := range snaps {
		summaries = append(summaries, layoutSummary{
			ID:         snap.ID,
			Name:       snap.Name,
			Items:      len(snap.Items),
			Autosave:   snap.IsAutosave(),
			CreatedAt:  snap.CreatedAt,
			ModifiedAt: snap.ModifiedAt,
		})
	}
	s.writeJSON(w, http.StatusOK, summaries)
}

// fetch resolves the {id} route parameter to a stored snapshot.
func (s *Server) fetch(w http.ResponseWriter, r *http.Request) (*persist.Snapshot, bool) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateSnapshotID(id); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return nil, false
	}

	s.mu.Lock()
	snap := s.persister.Find(id)
	s.mu.Unlock()
	if snap == nil {
		s.writeError(w, http.StatusNotFound,
			errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", id))
		return nil, false
	}
	return snap, true
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.fetch(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.fetch(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	err := s.persister.Delete(r.Context(), snap.ID)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validateRequest is a layout posted for validation: an optional config plus
// the item records to audit.
type validateRequest struct {
	Config *grid.Config         `json:"config,omitempty"`
	Items  []persist.ItemRecord `json:"items"`
}

// validateResponse reports the audit outcome. Findings use the grid
// validation vocabulary (out_of_bounds, overlapping, duplicate_id, ...).
type validateResponse struct {
	Valid    bool                   `json:"valid"`
	Findings []grid.ValidationError `json:"findings"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeDecode, err, "invalid request body"))
		return
	}

	cfg := grid.DefaultConfig()
	if req.Config != nil {
		cfg = *req.Config
	}
	if _, err := grid.NewBounds(cfg.Bounds.Columns, cfg.Bounds.Rows); err != nil {
		s.writeError(w, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeInvalidBounds, err, "invalid grid bounds"))
		return
	}

	findings := grid.ValidateLayout(recordItems(req.Items), cfg)
	if findings == nil {
		findings = []grid.ValidationError{}
	}
	s.writeJSON(w, http.StatusOK, validateResponse{
		Valid:    len(findings) == 0,
		Findings: findings,
	})
}

// renderRequest carries optional SVG rendering knobs.
type renderRequest struct {
	GridLines *bool `json:"grid_lines,omitempty"`
	Titles    *bool `json:"titles,omitempty"`
	MinRows   int   `json:"min_rows,omitempty"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.fetch(w, r)
	if !ok {
		return
	}

	var req renderRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest,
				errors.Wrap(errors.ErrCodeDecode, err, "invalid request body"))
			return
		}
	}

	var opts []render.SVGOption
	if req.Titles != nil && !*req.Titles {
		opts = append(opts, render.WithoutTitles())
	}
	if req.GridLines != nil && !*req.GridLines {
		opts = append(opts, render.WithoutGridLines())
	}
	if req.MinRows > 0 {
		opts = append(opts, render.WithMinRows(req.MinRows))
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(render.RenderSVG(snap, opts...)); err != nil {
		s.logger.Error("failed to write svg", "err", err)
	}
}

// placeRequest asks for a first-fit position for a footprint against an
// existing layout.
type placeRequest struct {
	Config    *grid.Config         `json:"config,omitempty"`
	Footprint grid.Footprint       `json:"footprint"`
	Items     []persist.ItemRecord `json:"items"`
}

type placeResponse struct {
	Placed   bool            `json:"placed"`
	Position grid.Coordinate `json:"position"`
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeDecode, err, "invalid request body"))
		return
	}
	if !req.Footprint.Valid() {
		s.writeError(w, http.StatusBadRequest,
			errors.New(errors.ErrCodeInvalidFootprint, "invalid footprint %s", req.Footprint))
		return
	}

	cfg := grid.DefaultConfig()
	if req.Config != nil {
		cfg = *req.Config
	}
	if _, err := grid.NewBounds(cfg.Bounds.Columns, cfg.Bounds.Rows); err != nil {
		s.writeError(w, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeInvalidBounds, err, "invalid grid bounds"))
		return
	}

	engine := grid.NewTetrisEngine(grid.NewRectDetector())
	pos, ok := engine.FindPosition(req.Footprint, grid.OccupiedCells(recordItems(req.Items)), cfg)
	s.writeJSON(w, http.StatusOK, placeResponse{Placed: ok, Position: pos})
}

// recordItems adapts item records to grid.Item for the pure grid operations.
func recordItems(recs []persist.ItemRecord) []grid.Item {
	items := make([]grid.Item, len(recs))
	for i, rec := range recs {
		items[i] = recordItem{rec: rec}
	}
	return items
}

type recordItem struct {
	rec persist.ItemRecord
}

func (r recordItem) ID() string                { return r.rec.ID }
func (r recordItem) Footprint() grid.Footprint { return r.rec.Footprint }
func (r recordItem) Position() grid.Coordinate { return r.rec.Position }
func (recordItem) SetPosition(grid.Coordinate) {}
