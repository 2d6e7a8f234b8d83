package serialize

import "strings"

// Expand re-indents a compact, single-line serialization into a
// multi-line hierarchical form. unit is the indent unit
// ("  " for ExpandSP, "\t" for ExpandTab); prefix
// is an optional caller-supplied string written before the indent on
// every line.
//
// The pass tracks bracket depth as it walks the text left to right. On
// each open bracket it schedules a newline before the next non-close
// content; on each comma it flushes the accumulated line at the
// currently scheduled depth. It respects quoting: a quoted region's
// contents are copied verbatim and never inspected for brackets or
// commas. The grammar never requires a literal bracket or comma inside
// a quoted field, so tracking quotes here only guards against
// unexpected input without changing behavior on valid WKT.
func Expand(compact string, unit string, prefix string) string {
	var out strings.Builder
	depth := 0
	atLineStart := true
	pendingNewline := false

	writeIndent := func() {
		if pendingNewline {
			out.WriteByte('\n')
			pendingNewline = false
		}
		out.WriteString(prefix)
		for i := 0; i < depth; i++ {
			out.WriteString(unit)
		}
	}

	i := 0
	n := len(compact)
	for i < n {
		c := compact[i]
		switch {
		case c == '"':
			if atLineStart {
				writeIndent()
				atLineStart = false
			}
			j := i + 1
			for j < n {
				if compact[j] == '"' {
					if j+1 < n && compact[j+1] == '"' {
						j += 2
						continue
					}
					break
				}
				j++
			}
			if j < n {
				j++
			}
			out.WriteString(compact[i:j])
			i = j
		case c == '[' || c == '(':
			if atLineStart {
				writeIndent()
				atLineStart = false
			}
			out.WriteByte(c)
			depth++
			atLineStart = true
			pendingNewline = true
			i++
		case c == ']' || c == ')':
			depth--
			pendingNewline = false
			out.WriteByte('\n')
			writeIndent()
			out.WriteByte(c)
			atLineStart = false
			i++
		case c == ',':
			out.WriteByte(',')
			out.WriteByte('\n')
			atLineStart = true
			i++
		default:
			if atLineStart {
				writeIndent()
				atLineStart = false
			}
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

// IndentUnit returns the indent string selected by opts: two spaces for
// ExpandSP, a tab for ExpandTab, empty if neither is set.
func IndentUnit(opts Options) string {
	switch {
	case opts.Has(ExpandTab):
		return "\t"
	case opts.Has(ExpandSP):
		return "  "
	default:
		return ""
	}
}
