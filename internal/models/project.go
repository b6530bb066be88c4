package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project is one managed software project.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Language    Language  `json:"language"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	GitURL      *string   `json:"git_url,omitempty"`
	Path        string    `json:"path"`
}

// NewProject mints a project with a fresh ID and both timestamps set to now.
func NewProject(name, path string, lang Language) Project {
	now := Now()
	return Project{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Language:  lang,
		CreatedAt: now,
		UpdatedAt: now,
		Path:      path,
	}
}

// Now returns UTC time truncated to seconds.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// StringPtr returns nil for blank input so optional fields stay unset.
func StringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// QuickAccessItem is a sidebar shortcut. Nothing populates these yet.
type QuickAccessItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
