package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jask/softwaremanager/internal/models"
	"github.com/jask/softwaremanager/internal/store"
	"github.com/jask/softwaremanager/internal/view"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newApp(t *testing.T, names ...string) (*App, *store.Store) {
	t.Helper()
	projects := make([]models.Project, 0, len(names))
	for _, n := range names {
		projects = append(projects, models.NewProject(n, "/src/"+n, models.Known(models.LanguageRust)))
	}
	st, err := store.New(store.WithProjects(projects), store.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	return New(st, Options{Logger: zaptest.NewLogger(t)}), st
}

func send(a *App, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = a.Update(m)
	}
	return cmd
}

func focusOn(t *testing.T, a *App, id string) {
	t.Helper()
	for range 128 {
		if a.Focused() == id {
			return
		}
		send(a, tea.KeyMsg{Type: tea.KeyTab})
	}
	t.Fatalf("never reached focus %q (at %q)", id, a.Focused())
}

func TestInitialFocusIsCurrentRoute(t *testing.T) {
	a, _ := newApp(t)
	assert.Equal(t, view.NavID(models.RouteDashboard), a.Focused())
}

func TestDigitKeysNavigate(t *testing.T) {
	a, st := newApp(t)
	for i, r := range models.Routes() {
		send(a, runes(string(rune('1'+i))))
		assert.Equal(t, r, st.Route())
	}
	send(a, runes("9"))
	assert.Equal(t, models.RouteReports, st.Route())
}

func TestFocusWrapsAround(t *testing.T) {
	a, _ := newApp(t)
	send(a, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, view.IDCreate, a.Focused())
	send(a, runes("j"))
	assert.Equal(t, view.NavID(models.RouteDashboard), a.Focused())
	send(a, runes("j"), tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, view.NavID(models.RouteArticles), a.Focused())
	send(a, runes("k"))
	assert.Equal(t, view.NavID(models.RouteCollections), a.Focused())
}

func TestEnterPressesFocusedNav(t *testing.T) {
	a, st := newApp(t)
	focusOn(t, a, view.NavID(models.RouteLearners))
	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, models.RouteLearners, st.Route())

	focusOn(t, a, view.NavID(models.RouteArticles))
	send(a, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, models.RouteArticles, st.Route())
}

func TestSelectAndDeleteProjectRows(t *testing.T) {
	a, st := newApp(t, "A", "B", "C")
	send(a, runes("2"))

	focusOn(t, a, view.ProjectRowID(1))
	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	p, ok := st.SelectedProject()
	require.True(t, ok)
	assert.Equal(t, "B", p.Name)

	send(a, runes("x"))
	assert.Equal(t, 2, st.Len())
	_, ok = st.Selected()
	assert.False(t, ok)
	assert.Equal(t, view.ProjectRowID(1), a.Focused())

	// Deleting the last row moves focus up.
	send(a, tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, view.ProjectRowID(0), a.Focused())

	send(a, runes("x"))
	assert.Equal(t, 0, st.Len())
	assert.Equal(t, view.NavID(models.RouteCollections), a.Focused())
}

func TestRemoveOnNonRowIsIgnored(t *testing.T) {
	a, st := newApp(t, "A")
	send(a, runes("2"), runes("x"))
	assert.Equal(t, 1, st.Len())
	assert.NoError(t, st.Err())
}

func TestCreateReportsPendingFeature(t *testing.T) {
	a, st := newApp(t, "A")
	send(a, runes("n"))
	assert.Equal(t, 1, st.Len())
	assert.ErrorIs(t, st.Err(), store.ErrNotImplemented)
	assert.True(t, a.noticeErr)
	assert.Contains(t, a.View(), store.ErrNotImplemented.Error())
}

func TestJumpPrompt(t *testing.T) {
	a, st := newApp(t)

	send(a, runes(":"))
	require.True(t, a.jumping)
	send(a, runes("rep"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, a.jumping)
	assert.Equal(t, models.RouteReports, st.Route())

	send(a, runes(":"), runes("zzzz"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, models.RouteReports, st.Route())
	assert.True(t, a.noticeErr)
	assert.Contains(t, a.notice, "zzzz")

	// keys typed into the prompt are not shortcuts
	send(a, runes(":"), runes("1"))
	assert.Equal(t, models.RouteReports, st.Route())
	send(a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, a.jumping)
	assert.Equal(t, models.RouteReports, st.Route())
}

func TestQuit(t *testing.T) {
	a, _ := newApp(t)
	cmd := send(a, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewRendersPanes(t *testing.T) {
	a, _ := newApp(t, "alpha")
	send(a, tea.WindowSizeMsg{Width: 120, Height: 30})

	out := a.View()
	assert.Contains(t, out, "Dashboard Content")
	assert.Contains(t, out, "Quick Access")
	assert.Contains(t, out, "New Collection")
	assert.Contains(t, out, view.AppTitle)
	for _, r := range models.Routes() {
		assert.Contains(t, out, r.Title())
	}

	send(a, runes("2"))
	out = a.View()
	for _, s := range []string{"alpha", "/src/alpha", "v1.0", "TODO", "GitHub", "Edit"} {
		assert.Contains(t, out, s)
	}
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), 30)
}

func TestStatusBarShowsSelection(t *testing.T) {
	a, _ := newApp(t, "alpha")
	send(a, runes("2"))
	focusOn(t, a, view.ProjectRowID(0))
	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, a.statusBar(), "selected alpha")

	a.setNotice("", false)
	assert.Contains(t, a.statusBar(), "alpha (Rust)")
}

func TestInitSetsTitle(t *testing.T) {
	a, _ := newApp(t)
	assert.NotNil(t, a.Init())
}

func TestCollectionsScrollFollowsFocus(t *testing.T) {
	names := make([]string, 0, 40)
	for i := range 40 {
		names = append(names, fmt.Sprintf("proj%02d", i))
	}
	a, st := newApp(t, names...)
	send(a, tea.WindowSizeMsg{Width: 120, Height: 20}, runes("2"))

	body := func() string { return a.renderer().Render(a.tree()) }
	assert.Contains(t, body(), "proj00")
	assert.NotContains(t, body(), "proj35")

	focusOn(t, a, view.ProjectRowID(35))
	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	p, ok := st.SelectedProject()
	require.True(t, ok)
	require.Equal(t, "proj35", p.Name)

	a.setNotice("ready", false)
	out := a.View()
	assert.Contains(t, out, "proj35")
	assert.NotContains(t, out, "proj00")
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), 20)

	// Moving down one row shifts the window by at most one row.
	top := a.scrollTop
	send(a, runes("j"))
	assert.Contains(t, body(), "proj36")
	assert.LessOrEqual(t, a.scrollTop-top, 1)

	// Walking back up brings the first rows back into view.
	focusOn(t, a, view.ProjectRowID(0))
	assert.Equal(t, 0, a.scrollTop)
	assert.Contains(t, body(), "proj00")
}

func TestScrollResetsOffCollections(t *testing.T) {
	names := make([]string, 0, 30)
	for i := range 30 {
		names = append(names, fmt.Sprintf("proj%02d", i))
	}
	a, _ := newApp(t, names...)
	send(a, tea.WindowSizeMsg{Width: 120, Height: 20}, runes("2"))
	focusOn(t, a, view.ProjectRowID(29))
	require.Positive(t, a.scrollTop)

	send(a, runes("1"))
	assert.Equal(t, 0, a.scrollTop)
	assert.Contains(t, a.View(), "Dashboard Content")
}
