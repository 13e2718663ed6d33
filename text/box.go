package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// BoxChars is the glyph set DrawBox uses for its border.
type BoxChars struct {
	TopLeft, TopRight       string
	BottomLeft, BottomRight string
	Horizontal, Vertical    string
}

// DefaultBoxChars is a plain single-line box-drawing glyph set.
func DefaultBoxChars() BoxChars {
	return BoxChars{
		TopLeft: "┌", TopRight: "┐",
		BottomLeft: "└", BottomRight: "┘",
		Horizontal: "─", Vertical: "│",
	}
}

// BoxOptions configures DrawBox.
type BoxOptions struct {
	MinWidth int
	Chars    *BoxChars
}

// DrawBox renders content (one or more newline-separated lines) inside a
// border, at least MinWidth display columns wide. Intended for rendering
// AlignDebugString's output (or any other fixed-width diagnostic dump) for
// terminal inspection.
func DrawBox(content string, opts BoxOptions) string {
	chars := DefaultBoxChars()
	if opts.Chars != nil {
		chars = *opts.Chars
	}

	lines := strings.Split(content, "\n")
	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	if opts.MinWidth > width {
		width = opts.MinWidth
	}

	var b strings.Builder
	b.WriteString(chars.TopLeft)
	b.WriteString(strings.Repeat(chars.Horizontal, width+2))
	b.WriteString(chars.TopRight)
	b.WriteByte('\n')

	for _, line := range lines {
		b.WriteString(chars.Vertical)
		b.WriteByte(' ')
		b.WriteString(line)
		if pad := width - runewidth.StringWidth(line); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteByte(' ')
		b.WriteString(chars.Vertical)
		b.WriteByte('\n')
	}

	b.WriteString(chars.BottomLeft)
	b.WriteString(strings.Repeat(chars.Horizontal, width+2))
	b.WriteString(chars.BottomRight)
	b.WriteByte('\n')
	return b.String()
}

// RenderAlignmentBoxLines draws AlignDebugString's two lines boxed together,
// for dropping an edit-script visualization straight into a terminal or
// log line.
func RenderAlignmentBoxLines(srcLine, destLine string) string {
	return DrawBox(srcLine+"\n"+destLine, BoxOptions{})
}
