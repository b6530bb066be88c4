package tui

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/softwaremanager/internal/store"
	"github.com/jask/softwaremanager/internal/view"
)

const (
	defaultWidth        = 100
	defaultHeight       = 30
	defaultSidebarWidth = 24
)

// Options tunes the host. Zero values fall back to defaults.
type Options struct {
	SidebarWidth int
	Logger       *zap.Logger
}

// App hosts the store inside a bubbletea program. Key presses become view
// interactions, interactions become store events, and every frame is
// rendered from a fresh view tree.
type App struct {
	store *store.Store
	log   *zap.Logger
	keys  keyMap
	help  help.Model

	jump    textinput.Model
	jumping bool

	focusID      string
	scrollTop    int
	notice       string
	noticeErr    bool
	width        int
	height       int
	sidebarWidth int
}

func New(st *store.Store, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sidebar := opts.SidebarWidth
	if sidebar <= 0 {
		sidebar = defaultSidebarWidth
	}

	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "route name"
	ti.CharLimit = 32
	ti.PromptStyle = promptStyle

	a := &App{
		store:        st,
		log:          logger,
		keys:         defaultKeyMap(),
		help:         help.New(),
		jump:         ti,
		width:        defaultWidth,
		height:       defaultHeight,
		sidebarWidth: sidebar,
	}
	a.syncFocus()
	return a
}

// Run starts the program and blocks until it exits or ctx is cancelled.
func Run(ctx context.Context, a *App, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(a, opts...).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle(view.AppTitle)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		a.followFocus()
		return a, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		if a.jumping {
			_, cmd = a.updateJump(m)
		} else {
			_, cmd = a.handleKey(m)
		}
		a.followFocus()
		return a, cmd
	}
	return a, nil
}

// followFocus scrolls the content list so the focused row stays visible.
func (a *App) followFocus() {
	a.scrollTop = a.renderer().ScrollTop(a.tree())
}

func (a *App) renderer() renderer {
	return renderer{
		focusID:      a.focusID,
		width:        a.width,
		height:       a.bodyHeight(),
		sidebarWidth: a.sidebarWidth,
		scrollTop:    a.scrollTop,
	}
}

// bodyHeight is the frame height left after the status and footer bars.
func (a *App) bodyHeight() int {
	return max(a.height-2, 1)
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Next):
		a.moveFocus(1)
	case key.Matches(m, a.keys.Prev):
		a.moveFocus(-1)
	case key.Matches(m, a.keys.Press):
		a.interact(view.Interaction{Kind: view.Press, NodeID: a.focusID})
	case key.Matches(m, a.keys.Remove):
		a.interact(view.Interaction{Kind: view.Remove, NodeID: a.focusID})
	case key.Matches(m, a.keys.Create):
		a.interact(view.Interaction{Kind: view.Press, NodeID: view.IDCreate})
	case key.Matches(m, a.keys.Route):
		if r, ok := routeForKey(m); ok {
			a.interact(view.Interaction{Kind: view.Press, NodeID: view.NavID(r)})
		}
	case key.Matches(m, a.keys.Jump):
		a.jumping = true
		a.jump.SetValue("")
		return a, a.jump.Focus()
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

func (a *App) updateJump(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		a.closeJump()
		return a, nil
	case tea.KeyEnter:
		query := a.jump.Value()
		a.closeJump()
		r, ok := matchRoute(query)
		if !ok {
			a.log.Debug("jump prompt matched nothing", zap.String("query", query))
			a.setNotice(fmt.Sprintf("no pane matches %q", query), true)
			return a, nil
		}
		a.interact(view.Interaction{Kind: view.Press, NodeID: view.NavID(r)})
		return a, nil
	}
	var cmd tea.Cmd
	a.jump, cmd = a.jump.Update(m)
	return a, cmd
}

func (a *App) closeJump() {
	a.jumping = false
	a.jump.Blur()
	a.jump.SetValue("")
}

// interact resolves an interaction against the current tree and applies
// the resulting event. Interactions on inert or missing nodes are ignored.
func (a *App) interact(in view.Interaction) {
	ev, ok := view.EventFor(a.tree(), in)
	if !ok {
		return
	}
	a.dispatch(ev)
}

func (a *App) dispatch(ev store.Event) {
	if err := a.store.Apply(ev); err != nil {
		a.setNotice(err.Error(), true)
	} else {
		a.setNotice(a.describe(ev), false)
	}
	a.syncFocus()
}

func (a *App) describe(ev store.Event) string {
	switch ev := ev.(type) {
	case store.SelectProject:
		if p, ok := a.store.SelectedProject(); ok {
			return "selected " + p.Name
		}
	case store.DeleteProject:
		return fmt.Sprintf("deleted project %d", ev.Index+1)
	}
	return ""
}

func (a *App) setNotice(text string, isErr bool) {
	a.notice, a.noticeErr = text, isErr
}

func (a *App) tree() *view.Node {
	return view.Tree(a.store.State())
}

func (a *App) focusIDs() []string {
	nodes := view.Focusable(a.tree())
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

// syncFocus keeps focus on a node that still exists. A deleted project row
// hands focus to the row that took its place, then to the one above.
func (a *App) syncFocus() {
	ids := a.focusIDs()
	if len(ids) == 0 {
		a.focusID = ""
		return
	}
	if slices.Contains(ids, a.focusID) {
		return
	}
	if i, ok := view.ProjectRowIndex(a.focusID); ok && a.store.Len() > 0 {
		if id := view.ProjectRowID(min(i, a.store.Len()-1)); slices.Contains(ids, id) {
			a.focusID = id
			return
		}
	}
	a.focusID = view.NavID(a.store.Route())
	if !slices.Contains(ids, a.focusID) {
		a.focusID = ids[0]
	}
}

func (a *App) moveFocus(delta int) {
	ids := a.focusIDs()
	if len(ids) == 0 {
		return
	}
	i := slices.Index(ids, a.focusID)
	if i < 0 {
		a.focusID = ids[0]
		return
	}
	a.focusID = ids[(i+delta+len(ids))%len(ids)]
}

// Focused returns the id of the focused node.
func (a *App) Focused() string { return a.focusID }

func (a *App) View() string {
	footer := a.help.View(a.keys)
	if a.jumping {
		footer = a.jump.View()
	}
	body := a.renderer().Render(a.tree())
	return lipgloss.JoinVertical(lipgloss.Left, body, a.statusBar(), renderBar(footerStyle, a.width, footer))
}

func (a *App) statusBar() string {
	msg := a.notice
	if msg == "" {
		msg = view.AppTitle + " · " + a.store.Route().Title()
		if p, ok := a.store.SelectedProject(); ok {
			msg += " · " + p.Name + " (" + p.Language.String() + ")"
		}
	}
	if a.noticeErr {
		return renderBar(statusErrBarStyle, a.width, msg)
	}
	return renderBar(statusBarStyle, a.width, msg)
}
