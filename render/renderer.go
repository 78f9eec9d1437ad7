package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const labelWidth = 26

// Renderer draws results with a fixed theme. It is safe for concurrent use.
type Renderer struct {
	theme Theme
}

func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// card accumulates label/value lines before they are boxed.
type card struct {
	r     *Renderer
	lines []string
}

func (r *Renderer) newCard(title string) *card {
	c := &card{r: r}
	if title != "" {
		c.lines = append(c.lines, r.theme.Title.Render(title), "")
	}
	return c
}

func (c *card) row(label, value string, style lipgloss.Style) {
	c.lines = append(c.lines, c.r.theme.Label.Render(fmt.Sprintf("%-*s", labelWidth, label))+" "+style.Render(value))
}

func (c *card) text(s string, style lipgloss.Style) {
	c.lines = append(c.lines, style.Render(s))
}

func (c *card) blank() {
	c.lines = append(c.lines, "")
}

func (c *card) writeTo(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.r.theme.Box.Render(strings.Join(c.lines, "\n")))
	return err
}

// JSON writes v indented, for machine consumption.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
