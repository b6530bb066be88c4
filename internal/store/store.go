// Package store owns the application state: the project list, the current
// selection and the current route. All mutation goes through Apply.
package store

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/softwaremanager/internal/models"
)

// State is a read-only snapshot handed to the view layer.
type State struct {
	Projects    []models.Project
	Selected    int // -1 when nothing is selected
	Route       models.Route
	QuickAccess []models.QuickAccessItem
	Err         error
}

// HasSelection reports whether Selected names a project.
func (s State) HasSelection() bool {
	return s.Selected >= 0 && s.Selected < len(s.Projects)
}

// Store is not safe for concurrent use; the UI loop owns it.
type Store struct {
	projects    []models.Project
	selected    uuid.UUID
	route       models.Route
	quickAccess []models.QuickAccessItem
	err         error
	log         *zap.Logger
}

type Option func(*Store)

func WithProjects(projects []models.Project) Option {
	return func(s *Store) { s.projects = slices.Clone(projects) }
}

func WithRoute(r models.Route) Option {
	return func(s *Store) { s.route = r }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New builds a store starting on the Dashboard with no selection.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		route: models.RouteDashboard,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.route.Valid() {
		return nil, fmt.Errorf("initial route %d: %w", int(s.route), ErrUnknownRoute)
	}
	seen := make(map[uuid.UUID]struct{}, len(s.projects))
	for i, p := range s.projects {
		if p.ID == uuid.Nil {
			return nil, fmt.Errorf("project %d (%q) has no id", i, p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("project %d (%q): %w", i, p.Name, ErrDuplicateProject)
		}
		seen[p.ID] = struct{}{}
	}
	return s, nil
}

// Apply runs one transition to completion. It never panics; a failed
// transition leaves state unchanged (except where noted) and the error is
// both returned and kept for the view.
func (s *Store) Apply(ev Event) error {
	var err error
	switch ev := ev.(type) {
	case CreateProject:
		err = ErrNotImplemented
	case SelectProject:
		err = s.selectProject(ev.Index)
	case UpdateProject:
		if s.selected == uuid.Nil {
			s.log.Debug("update ignored without selection")
			return nil
		}
		err = s.updateProject(ev.Project)
	case DeleteProject:
		err = s.deleteProject(ev.Index)
	case NavigateTo:
		err = s.navigate(ev.Route)
	default:
		err = fmt.Errorf("%T: %w", ev, ErrUnknownEvent)
	}
	s.err = err
	if err != nil {
		s.log.Warn("event rejected", zap.String("event", Name(ev)), zap.Error(err))
	} else {
		s.log.Debug("event applied", zap.String("event", Name(ev)),
			zap.Int("projects", len(s.projects)), zap.Stringer("route", s.route))
	}
	return err
}

func (s *Store) selectProject(i int) error {
	if i < 0 || i >= len(s.projects) {
		return &IndexError{Op: "select project", Index: i, Len: len(s.projects)}
	}
	s.selected = s.projects[i].ID
	return nil
}

func (s *Store) updateProject(p models.Project) error {
	idx := s.indexOf(s.selected)
	if idx < 0 {
		s.selected = uuid.Nil
		return ErrInvalidSelection
	}
	if p.ID == uuid.Nil {
		p.ID = s.selected
	}
	if p.ID != s.selected && s.indexOf(p.ID) >= 0 {
		return fmt.Errorf("update project %s: %w", p.ID, ErrDuplicateProject)
	}
	s.projects[idx] = p
	s.selected = p.ID
	return nil
}

func (s *Store) deleteProject(i int) error {
	if i < 0 || i >= len(s.projects) {
		return &IndexError{Op: "delete project", Index: i, Len: len(s.projects)}
	}
	if s.projects[i].ID == s.selected {
		s.selected = uuid.Nil
	}
	s.projects = slices.Delete(s.projects, i, i+1)
	return nil
}

func (s *Store) navigate(r models.Route) error {
	if !r.Valid() {
		return fmt.Errorf("navigate to %d: %w", int(r), ErrUnknownRoute)
	}
	s.route = r
	return nil
}

func (s *Store) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.projects, func(p models.Project) bool { return p.ID == id })
}

// State returns a snapshot that shares nothing mutable with the store.
func (s *Store) State() State {
	sel, _ := s.Selected()
	return State{
		Projects:    slices.Clone(s.projects),
		Selected:    sel,
		Route:       s.route,
		QuickAccess: slices.Clone(s.quickAccess),
		Err:         s.err,
	}
}

func (s *Store) Projects() []models.Project {
	return slices.Clone(s.projects)
}

func (s *Store) Len() int { return len(s.projects) }

// Selected resolves the selection to its current position. It returns -1
// and false when nothing is selected.
func (s *Store) Selected() (int, bool) {
	if s.selected == uuid.Nil {
		return -1, false
	}
	idx := s.indexOf(s.selected)
	return idx, idx >= 0
}

func (s *Store) SelectedProject() (models.Project, bool) {
	idx, ok := s.Selected()
	if !ok {
		return models.Project{}, false
	}
	return s.projects[idx], true
}

func (s *Store) Route() models.Route { return s.route }

func (s *Store) QuickAccess() []models.QuickAccessItem {
	return slices.Clone(s.quickAccess)
}

// Err is the outcome of the most recent Apply.
func (s *Store) Err() error { return s.err }
