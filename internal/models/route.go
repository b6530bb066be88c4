package models

import (
	"fmt"
	"strings"
)

// Route identifies the top-level pane on screen. The zero value is Dashboard.
type Route int

const (
	RouteDashboard Route = iota
	RouteCollections
	RouteArticles
	RouteLearners
	RouteReports
)

var routeTitles = [...]string{
	RouteDashboard:   "Dashboard",
	RouteCollections: "Collections",
	RouteArticles:    "Articles",
	RouteLearners:    "Learners",
	RouteReports:     "Reports",
}

// Routes returns every route in sidebar order.
func Routes() []Route {
	return []Route{RouteDashboard, RouteCollections, RouteArticles, RouteLearners, RouteReports}
}

func (r Route) Valid() bool {
	return r >= RouteDashboard && r <= RouteReports
}

// Title is the display name used for navigation entries and the page header.
func (r Route) Title() string {
	if !r.Valid() {
		return fmt.Sprintf("Route(%d)", int(r))
	}
	return routeTitles[r]
}

func (r Route) String() string {
	return strings.ToLower(r.Title())
}

// ParseRoute accepts a route title in any case.
func ParseRoute(s string) (Route, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, r := range Routes() {
		if r.String() == key {
			return r, nil
		}
	}
	return RouteDashboard, fmt.Errorf("unknown route %q", s)
}

func (r Route) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid route %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Route) UnmarshalText(b []byte) error {
	v, err := ParseRoute(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
