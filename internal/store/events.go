package store

import "github.com/jask/softwaremanager/internal/models"

// Event is a transition request applied by Store.Apply. The set is closed.
type Event interface {
	eventName() string
}

// CreateProject is a placeholder until project creation exists.
type CreateProject struct{}

type SelectProject struct {
	Index int
}

// UpdateProject replaces the selected project.
type UpdateProject struct {
	Project models.Project
}

type DeleteProject struct {
	Index int
}

type NavigateTo struct {
	Route models.Route
}

func (CreateProject) eventName() string { return "create_project" }
func (SelectProject) eventName() string { return "select_project" }
func (UpdateProject) eventName() string { return "update_project" }
func (DeleteProject) eventName() string { return "delete_project" }
func (NavigateTo) eventName() string    { return "navigate_to" }

// Name returns a stable identifier for logging.
func Name(ev Event) string {
	if ev == nil {
		return "nil"
	}
	return ev.eventName()
}
