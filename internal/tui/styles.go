package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/softwaremanager/internal/view"
)

var (
	sidebarStyle = lipgloss.NewStyle().
			Background(colorSidebar).
			Foreground(colorText).
			Padding(1, 2)
	mainStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(1, 2)

	logoStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).MarginBottom(1)

	navActiveStyle = lipgloss.NewStyle().
			Background(colorSurface1).
			Foreground(colorText).
			Bold(true).
			Padding(0, 1)
	navInactiveStyle = lipgloss.NewStyle().
				Background(colorSurface0).
				Foreground(colorTabOff).
				Padding(0, 1)

	sectionStyle  = lipgloss.NewStyle().Foreground(colorMuted).Bold(true).MarginTop(1)
	titleStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	actionStyle   = lipgloss.NewStyle().Background(colorAccent).Foreground(colorMantle).Bold(true).Padding(0, 1)
	buttonStyle   = lipgloss.NewStyle().Foreground(colorMuted).Border(lipgloss.NormalBorder(), false, true).BorderForeground(colorBorder).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Background(colorSurface0)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true).MarginTop(1)

	focusStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
	promptStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)

// styleFor maps the view's style names onto lipgloss styles.
func styleFor(s view.Style) lipgloss.Style {
	switch s {
	case view.StyleSidebar:
		return sidebarStyle
	case view.StyleMain:
		return mainStyle
	case view.StyleLogo:
		return logoStyle
	case view.StyleNavActive:
		return navActiveStyle
	case view.StyleNavInactive:
		return navInactiveStyle
	case view.StyleSection:
		return sectionStyle
	case view.StyleTitle:
		return titleStyle
	case view.StyleAction:
		return actionStyle
	case view.StyleSelected:
		return selectedStyle
	case view.StyleMuted:
		return mutedStyle
	case view.StyleError:
		return errorStyle
	}
	return lipgloss.NewStyle()
}
