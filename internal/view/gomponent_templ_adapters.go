// Package view bridges the two component models used for HTML output.
// Layouts and panels are gomponents; small self-rendering widgets such as
// the header clock are templ components.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// GomponentToTemplAdapter wraps a gomponents.Node to satisfy templ.Component.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

func (a *GomponentToTemplAdapter) Render(_ context.Context, w io.Writer) error {
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents node into a templ component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// TemplToGomponentAdapter wraps a templ.Component to satisfy gomponents.Node.
// gomponents does not pass a context, so Ctx is used when set and
// context.Background otherwise.
type TemplToGomponentAdapter struct {
	Component templ.Component
	Ctx       context.Context
}

func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	ctx := a.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Component.Render(ctx, w)
}

// AdaptTemplToGomponent converts a templ component into a gomponents node.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component}
}

// Text returns a templ component writing s escaped. It is the hand-written
// equivalent of a one-line .templ file.
func Text(tag, class, s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		open := "<" + tag
		if class != "" {
			open += ` class="` + templ.EscapeString(class) + `"`
		}
		_, err := io.WriteString(w, open+">"+templ.EscapeString(s)+"</"+tag+">")
		return err
	})
}
