package dashboard

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tdash/layout"
	"tdash/sysinfo"
)

// Context is the rendering context for one run. It binds a lipgloss renderer
// to the output writer and the terminal width.
type Context struct {
	out   io.Writer
	r     *lipgloss.Renderer
	width int
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithColorProfile forces a color profile instead of detecting one from out.
func WithColorProfile(p termenv.Profile) ContextOption {
	return func(c *Context) {
		c.r.SetColorProfile(p)
	}
}

// NewContext creates a rendering context writing to out at the given width.
func NewContext(out io.Writer, width int, opts ...ContextOption) *Context {
	if width < minWidth {
		width = minWidth
	}
	c := &Context{
		out:   out,
		r:     lipgloss.NewRenderer(out),
		width: width,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Width returns the width the context lays out to.
func (c *Context) Width() int {
	return c.width
}

// Print renders v and writes it to the output in a single write.
func (c *Context) Print(v View) error {
	_, err := io.WriteString(c.out, c.Render(v)+"\n")
	return err
}

// Render composes header, body and footer into one frame. Every line of the
// frame is exactly Width columns wide.
func (c *Context) Render(v View) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		c.banner(v.Header, headerColors),
		c.body(v.Panels, v.Plan),
		c.banner(v.Footer, footerColors),
	)
}

// banner renders a single centered line in a heavy box spanning the width.
func (c *Context) banner(text string, colors bannerColors) string {
	inner := c.width - 2
	text = sysinfo.TruncateString(text, inner-2)

	box := c.r.NewStyle().
		Border(lipgloss.ThickBorder()).
		Background(colors.background).
		Foreground(colors.foreground).
		Align(lipgloss.Center).
		Padding(0, 1).
		Width(inner)
	// lipgloss styles borders outside the renderer's profile, so colored
	// borders would leave empty SGR sequences in plain output.
	if c.r.ColorProfile() != termenv.Ascii {
		box = box.
			BorderForeground(colors.foreground).
			BorderBackground(colors.background)
	}

	label := c.r.NewStyle().
		Foreground(colors.text).
		Background(colors.background).
		Bold(true)

	return box.Render(label.Render(text))
}

func (c *Context) body(panels []Panel, plan layout.Plan) string {
	if len(panels) == 0 {
		return ""
	}

	if plan == layout.Stacked {
		blocks := make([]string, len(panels))
		for i, p := range panels {
			blocks[i] = c.frame(p, c.table(p, c.width-4), c.width, 0)
		}
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}

	widths := splitWidth(c.width, len(panels))
	tables := make([]string, len(panels))
	height := 0
	for i, p := range panels {
		tables[i] = c.table(p, widths[i]-4)
		if h := lipgloss.Height(tables[i]); h > height {
			height = h
		}
	}

	blocks := make([]string, len(panels))
	for i, p := range panels {
		blocks[i] = c.frame(p, tables[i], widths[i], height)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// splitWidth divides total into n columns, giving the remainder to the last.
func splitWidth(total, n int) []int {
	widths := make([]int, n)
	for i := range widths {
		widths[i] = total / n
	}
	widths[n-1] += total % n
	return widths
}

// table lays out the panel rows: labels on the left, values right-justified
// and wrapped within the remaining columns.
func (c *Context) table(p Panel, inner int) string {
	labelWidth := 0
	for _, row := range p.Rows {
		if w := sysinfo.DisplayWidth(row.Label); w > labelWidth {
			labelWidth = w
		}
	}
	valueWidth := inner - labelWidth - 1
	if valueWidth < 1 {
		valueWidth = 1
	}

	labelStyle := c.r.NewStyle().Foreground(p.LabelColor)
	valueStyle := c.r.NewStyle().
		Foreground(p.ValueColor).
		Width(valueWidth).
		Align(lipgloss.Right)

	lines := make([]string, len(p.Rows))
	for i, row := range p.Rows {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(sysinfo.PadRight(row.Label, labelWidth)),
			" ",
			valueStyle.Render(row.Value),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// frame draws a rounded border of the given outer width around content, with
// the panel title centered in the top edge. height pads the content to a
// common height when positive.
func (c *Context) frame(p Panel, content string, width, height int) string {
	box := c.r.NewStyle().
		Border(lipgloss.RoundedBorder(), false, true, true, true).
		BorderForeground(p.Accent).
		Padding(0, 1).
		Width(width - 2)
	if height > 0 {
		box = box.Height(height)
	}

	return lipgloss.JoinVertical(lipgloss.Left, c.titledEdge(p.Title, p.Accent, width), box.Render(content))
}

func (c *Context) titledEdge(title string, accent lipgloss.Color, width int) string {
	b := lipgloss.RoundedBorder()
	inner := width - 2

	label := ""
	if title != "" && inner > 4 {
		label = " " + sysinfo.TruncateString(title, inner-4) + " "
	}
	left := (inner - sysinfo.DisplayWidth(label)) / 2
	right := inner - sysinfo.DisplayWidth(label) - left

	edge := c.r.NewStyle().Foreground(accent)
	heading := c.r.NewStyle().Foreground(accent).Bold(true)

	return edge.Render(b.TopLeft+strings.Repeat(b.Top, left)) +
		heading.Render(label) +
		edge.Render(strings.Repeat(b.Top, right)+b.TopRight)
}
