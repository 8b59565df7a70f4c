package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/tiledock/pkg/dock"
	errs "github.com/matzehuels/tiledock/pkg/errors"
	"github.com/matzehuels/tiledock/pkg/geom"
	"github.com/matzehuels/tiledock/pkg/workspace"
)

// =============================================================================
// Response Types
// =============================================================================

type panelView struct {
	ID           string `json:"id"`
	Component    string `json:"component"`
	TabComponent string `json:"tab_component,omitempty"`
	Title        string `json:"title,omitempty"`
}

type groupView struct {
	ID           string      `json:"id"`
	Lock         string      `json:"lock"`
	HeaderHidden bool        `json:"header_hidden"`
	Rect         *geom.Rect  `json:"rect"`
	Panels       []panelView `json:"panels"`
}

type layoutView struct {
	Container *geom.Rect  `json:"container"`
	Groups    []groupView `json:"groups"`
}

type placementView struct {
	Panel    panelView `json:"panel"`
	Group    string    `json:"group"`
	Index    int       `json:"index"`
	NewGroup bool      `json:"new_group"`
	Matched  bool      `json:"matched"`
}

type errorView struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

func viewPanel(p dock.Panel) panelView {
	v := panelView{ID: p.ID, Component: p.Component, TabComponent: p.TabComponent}
	if demo, ok := dock.ParamsAs[dock.DemoParams](p); ok {
		v.Title = demo.Title
	}
	return v
}

func (s *Server) viewGroup(g *workspace.Group) groupView {
	v := groupView{
		ID:           g.ID(),
		Lock:         g.LockMode().String(),
		HeaderHidden: g.HeaderHidden(),
		Panels:       []panelView{},
	}
	if r, ok := s.ws.Rect(g); ok {
		v.Rect = &r
	}
	for _, p := range g.Panels() {
		v.Panels = append(v.Panels, viewPanel(p))
	}
	return v
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) listGroups(w http.ResponseWriter, _ *http.Request) {
	out := layoutView{Groups: []groupView{}}
	if c, ok := s.ws.Container(); ok {
		out.Container = &c
	}
	for _, g := range s.ws.Groups() {
		out.Groups = append(out.Groups, s.viewGroup(g.(*workspace.Group)))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) graph(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	_, _ = w.Write([]byte(s.ws.ToDOT()))
}

func (s *Server) addPanel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Direction string `json:"direction"`
	}
	if !decode(w, r, &body) {
		return
	}
	d, err := dock.ParseDirection(body.Direction)
	if err != nil {
		s.writeError(w, err)
		return
	}

	p, err := s.mgr.AddPanel(r.Context(), d)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := placementView{
		Panel:    viewPanel(p.Panel),
		Group:    p.Position.ReferenceGroup,
		Index:    p.Position.Index,
		NewGroup: p.NewGroup(),
		Matched:  p.Decision.Matched,
	}
	if g, idx, ok := s.ws.FindPanel(p.Panel.ID); ok {
		out.Group, out.Index = g.ID(), idx
	}
	writeJSON(w, http.StatusCreated, out)
}

func (s *Server) removePanel(w http.ResponseWriter, r *http.Request) {
	if err := s.ws.RemovePanel(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setLock(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Mode string `json:"mode"`
	}
	if !decode(w, r, &body) {
		return
	}
	mode, ok := dock.ParseLockMode(body.Mode)
	if !ok {
		s.writeError(w, errs.New(errs.ErrCodeInvalidLockMode, "unknown lock mode %q", body.Mode))
		return
	}
	s.updateGroup(w, chi.URLParam(r, "id"), func(id string) error {
		return s.ws.SetLocked(id, mode)
	})
}

func (s *Server) setHeader(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Hidden bool `json:"hidden"`
	}
	if !decode(w, r, &body) {
		return
	}
	s.updateGroup(w, chi.URLParam(r, "id"), func(id string) error {
		return s.ws.SetHeaderHidden(id, body.Hidden)
	})
}

func (s *Server) updateGroup(w http.ResponseWriter, id string, update func(string) error) {
	if err := update(id); err != nil {
		s.writeError(w, err)
		return
	}
	g, err := s.ws.Group(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.viewGroup(g))
}

func (s *Server) removeGroup(w http.ResponseWriter, r *http.Request) {
	if err := s.ws.RemoveGroup(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Encoding
// =============================================================================

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]errorView{
			"error": {Code: errs.ErrCodeInvalidInput, Message: "invalid request body: " + err.Error()},
		})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFor(err error) int {
	switch {
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errs.IsInvalid(err), errs.Is(err, errs.ErrCodeUnsupported):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, map[string]errorView{
		"error": {Code: code, Message: errs.UserMessage(err)},
	})
}
