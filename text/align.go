package text

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/fulmenhq/strmetrics/editops"
)

// AlignDebugString renders an Opcodes script as two parallel lines (source
// above destination) for terminal inspection: matched/replaced runes line
// up column-for-column, and '-' fills the gap opposite an insert or
// delete. Column width accounts for double-width runes via go-runewidth,
// so CJK and other wide characters don't desynchronize the alignment.
func AlignDebugString(codes editops.Opcodes, a, b []rune) (srcLine, destLine string) {
	var srcB, destB strings.Builder

	write := func(s, d string) {
		width := runewidth.StringWidth(s)
		if dw := runewidth.StringWidth(d); dw > width {
			width = dw
		}
		if width == 0 {
			width = 1
		}
		srcB.WriteString(padOrDash(s, width))
		srcB.WriteByte(' ')
		destB.WriteString(padOrDash(d, width))
		destB.WriteByte(' ')
	}

	for _, oc := range codes.Codes {
		switch oc.Kind {
		case editops.Match, editops.Replace:
			n := oc.SrcEnd - oc.SrcBegin
			for i := 0; i < n; i++ {
				write(string(a[oc.SrcBegin+i]), string(b[oc.DestBegin+i]))
			}
		case editops.Delete:
			for i := oc.SrcBegin; i < oc.SrcEnd; i++ {
				write(string(a[i]), "")
			}
		case editops.Insert:
			for j := oc.DestBegin; j < oc.DestEnd; j++ {
				write("", string(b[j]))
			}
		}
	}

	return strings.TrimRight(srcB.String(), " "), strings.TrimRight(destB.String(), " ")
}

func padOrDash(s string, width int) string {
	if s == "" {
		return strings.Repeat("-", width)
	}
	return runewidth.FillRight(s, width)
}
