package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/softwaremanager/internal/models"
)

const maxJumpDistance = 2

// matchRoute resolves typed text to a route: a prefix match wins, otherwise
// the closest route name within maxJumpDistance edits.
func matchRoute(query string) (models.Route, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, false
	}
	for _, r := range models.Routes() {
		if strings.HasPrefix(r.String(), q) {
			return r, true
		}
	}

	best, bestDist := models.RouteDashboard, maxJumpDistance+1
	for _, r := range models.Routes() {
		if d := levenshtein.ComputeDistance(q, r.String()); d < bestDist {
			best, bestDist = r, d
		}
	}
	if bestDist > maxJumpDistance {
		return 0, false
	}
	return best, true
}
