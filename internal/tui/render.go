package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/softwaremanager/internal/view"
)

const focusMarker = "▸ "

type renderer struct {
	focusID      string
	width        int
	height       int
	sidebarWidth int
	scrollTop    int
}

// Render draws a full view tree into a width x height frame.
func (r renderer) Render(root *view.Node) string {
	if root == nil {
		return ""
	}
	if root.ID != view.IDRoot || len(root.Children) != 2 {
		return r.node(root)
	}
	sideW := min(r.sidebarWidth, max(r.width/2, 1))
	mainW := max(r.width-sideW, 1)

	side := r.pane(root.Children[0], sideW)
	main := r.pane(root.Children[1], mainW)
	return lipgloss.JoinHorizontal(lipgloss.Top, side, main)
}

// ScrollTop returns the first visible row of the main pane's Scroll node,
// moved just far enough to keep the focused row on screen.
func (r renderer) ScrollTop(root *view.Node) int {
	if root == nil || root.ID != view.IDRoot || len(root.Children) != 2 {
		return 0
	}
	main := root.Children[1]
	_, at, lines := r.layout(main, r.paneLines(main))
	if at < 0 {
		return 0
	}
	scroll := main.Children[at]
	return fitTop(r.rows(scroll), r.scrollTop, childIndex(scroll, r.focusID), lines)
}

func (r renderer) pane(n *view.Node, width int) string {
	style := styleFor(n.Style)
	parts, at, lines := r.layout(n, r.paneLines(n))
	if at >= 0 {
		parts[at] = r.scroll(n.Children[at], lines)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	body = clipWidth(body, max(width-style.GetHorizontalFrameSize(), 0))
	height := max(r.height, 1)
	return style.Width(width).Height(height).MaxHeight(height).Render(body)
}

func (r renderer) paneLines(n *view.Node) int {
	return max(r.height, 1) - styleFor(n.Style).GetVerticalFrameSize()
}

// layout renders n's children top to bottom except the first Scroll child,
// which gets whatever lines the others leave. at is -1 without one.
func (r renderer) layout(n *view.Node, lines int) (parts []string, at int, avail int) {
	parts = make([]string, len(n.Children))
	at = -1
	used := 0
	for i, c := range n.Children {
		if c.Kind == view.KindScroll && at < 0 {
			at = i
			continue
		}
		parts[i] = r.node(c)
		used += lipgloss.Height(parts[i])
	}
	return parts, at, max(lines-used, 1)
}

func (r renderer) rows(n *view.Node) []string {
	rows := make([]string, len(n.Children))
	for i, c := range n.Children {
		rows[i] = r.node(c)
	}
	return rows
}

// scroll shows the rows of n that fit in lines, starting at the row that
// keeps focus visible.
func (r renderer) scroll(n *view.Node, lines int) string {
	rows := r.rows(n)
	top := fitTop(rows, r.scrollTop, childIndex(n, r.focusID), lines)

	visible := make([]string, 0, len(rows))
	used := 0
	for _, row := range rows[top:] {
		h := lipgloss.Height(row)
		if used+h > lines && len(visible) > 0 {
			break
		}
		visible = append(visible, row)
		used += h
	}
	return styleFor(n.Style).Render(lipgloss.JoinVertical(lipgloss.Left, visible...))
}

// fitTop clamps top to the rows and moves it so rows[top..focus] fit in
// lines. focus < 0 leaves the window where it is.
func fitTop(rows []string, top, focus, lines int) int {
	top = min(max(top, 0), max(len(rows)-1, 0))
	if focus < 0 || focus >= len(rows) {
		return top
	}
	if focus < top {
		return focus
	}
	for top < focus && spanHeight(rows[top:focus+1]) > lines {
		top++
	}
	return top
}

func spanHeight(rows []string) int {
	h := 0
	for _, row := range rows {
		h += lipgloss.Height(row)
	}
	return h
}

func childIndex(n *view.Node, id string) int {
	for i, c := range n.Children {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (r renderer) node(n *view.Node) string {
	var out string
	switch n.Kind {
	case view.KindRow:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, r.node(c))
		}
		out = lipgloss.JoinHorizontal(lipgloss.Center, interleave(parts, "  ")...)
		out = styleFor(n.Style).Render(out)
	case view.KindColumn, view.KindScroll:
		out = styleFor(n.Style).Render(r.children(n, lipgloss.Left))
	case view.KindButton:
		style := styleFor(n.Style)
		if n.Style == view.StyleNone {
			style = buttonStyle
		}
		out = style.Render(n.Text)
	default:
		out = styleFor(n.Style).Render(n.Text)
	}
	if n.Interactive() {
		if n.ID == r.focusID {
			out = lipgloss.JoinHorizontal(lipgloss.Center, focusStyle.Render(focusMarker), out)
		} else {
			out = lipgloss.JoinHorizontal(lipgloss.Center, strings.Repeat(" ", ansi.StringWidth(focusMarker)), out)
		}
	}
	return out
}

func (r renderer) children(n *view.Node, pos lipgloss.Position) string {
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, r.node(c))
	}
	return lipgloss.JoinVertical(pos, parts...)
}

func interleave(parts []string, sep string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

func clipWidth(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	return strings.Join(lines, "\n")
}

// renderBar draws a single full-width line.
func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
