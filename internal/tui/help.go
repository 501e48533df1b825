package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// helpMarkdown lists the configured key bindings
func (m Model) helpMarkdown() string {
	km := m.Config.KeyMappings

	var b strings.Builder
	b.WriteString("# Keys\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	rows := [][2]string{
		{km.NextItem + " / " + km.PrevItem, "Move down / up"},
		{km.AddItem, "Add an item"},
		{km.EditItem + " / enter", "Edit the selected item"},
		{km.DeleteItem, "Delete the selected item"},
		{km.CycleIcon, "Next icon while typing"},
		{km.Save, "Save while typing"},
		{km.Cancel, "Cancel adding, finish editing"},
		{km.ShowHelp, "Toggle this help"},
		{km.Quit, "Quit"},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| `%s` | %s |\n", r[0], r[1])
	}
	b.WriteString("\nEdits are saved when you leave the item.\n")
	return b.String()
}

func (m Model) viewHelp() string {
	md := m.helpMarkdown()

	width := min(m.UIState.Width(), 80)
	renderer, err := getRenderer(width)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
