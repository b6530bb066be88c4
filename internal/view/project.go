package view

import (
	"fmt"

	"github.com/jask/softwaremanager/internal/models"
	"github.com/jask/softwaremanager/internal/store"
)

const (
	AppTitle = "Software Manager"

	logoGlyph    = "◆"
	folderGlyph  = "📁"
	createLabel  = "New Collection"
	placeholderV = "v1.0"
	placeholderS = "TODO"
)

// IDs of nodes other packages address directly.
const (
	IDRoot    = "root"
	IDSidebar = "sidebar"
	IDMain    = "main"
	IDCreate  = "header/create"
	IDStatus  = "status"
	IDContent = "content"
)

// NavID is the id of the navigation entry for r.
func NavID(r models.Route) string {
	return "nav/" + r.String()
}

// ProjectRowID is the id of the Collections row at index i.
func ProjectRowID(i int) string {
	return fmt.Sprintf("project/%d", i)
}

// Tree builds the full view tree for a state snapshot.
func Tree(st store.State) *Node {
	return Row(IDRoot,
		sidebar(st),
		mainPane(st),
	)
}

func sidebar(st store.State) *Node {
	nav := Column("nav")
	for _, r := range models.Routes() {
		style := StyleNavInactive
		if r == st.Route {
			style = StyleNavActive
		}
		nav.Child(Button(NavID(r), r.Title()).WithStyle(style).OnPress(store.NavigateTo{Route: r}))
	}

	quick := Column("quick",
		Text("quick/title", "Quick Access").WithStyle(StyleSection),
	)
	for i, item := range st.QuickAccess {
		quick.Child(Row(fmt.Sprintf("quick/%d", i),
			Text(fmt.Sprintf("quick/%d/name", i), item.Name),
			Text(fmt.Sprintf("quick/%d/path", i), item.Path).WithStyle(StyleMuted),
		))
	}

	return Column(IDSidebar,
		Icon("logo", logoGlyph).WithStyle(StyleLogo),
		nav,
		quick,
	).WithStyle(StyleSidebar)
}

func mainPane(st store.State) *Node {
	header := Row("header",
		Text("header/title", st.Route.Title()).WithStyle(StyleTitle),
		Button(IDCreate, createLabel).WithStyle(StyleAction).OnPress(store.CreateProject{}),
	)

	var content *Node
	if st.Route == models.RouteCollections {
		content = collections(st)
	} else {
		content = Text(IDContent, st.Route.Title()+" Content")
	}

	var status *Node
	if st.Err != nil {
		status = Text(IDStatus, st.Err.Error()).WithStyle(StyleError)
	}

	return Column(IDMain, header, content, status).WithStyle(StyleMain)
}

func collections(st store.State) *Node {
	list := Scroll(IDContent)
	for i, p := range st.Projects {
		id := ProjectRowID(i)
		row := Row(id,
			Icon(id+"/icon", folderGlyph),
			Column(id+"/details",
				Text(id+"/name", p.Name),
				Text(id+"/path", p.Path).WithStyle(StyleMuted),
			),
			Text(id+"/version", placeholderV),
			Text(id+"/status", placeholderS),
			Row(id+"/actions",
				Button(id+"/github", "GitHub"),
				Button(id+"/edit", "Edit"),
			),
		).OnPress(store.SelectProject{Index: i})
		if i == st.Selected {
			row.WithStyle(StyleSelected)
		}
		list.Child(row)
	}
	return list
}
