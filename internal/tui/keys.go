package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/softwaremanager/internal/models"
)

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Press  key.Binding
	Remove key.Binding
	Create key.Binding
	Route  key.Binding
	Jump   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	routeKeys := make([]string, 0, len(models.Routes()))
	for i := range models.Routes() {
		routeKeys = append(routeKeys, strconv.Itoa(i+1))
	}
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("↓/j", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("↑/k", "prev")),
		Press:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		Remove: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete project")),
		Create: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Route:  key.NewBinding(key.WithKeys(routeKeys...), key.WithHelp("1-5", "go to pane")),
		Jump:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "jump")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Press, k.Route, k.Jump, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Press},
		{k.Create, k.Remove},
		{k.Route, k.Jump},
		{k.Help, k.Quit},
	}
}

// routeForKey maps a digit key onto the route at that sidebar position.
func routeForKey(msg tea.KeyMsg) (models.Route, bool) {
	n, err := strconv.Atoi(msg.String())
	if err != nil {
		return 0, false
	}
	routes := models.Routes()
	if n < 1 || n > len(routes) {
		return 0, false
	}
	return routes[n-1], true
}
