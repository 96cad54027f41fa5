package serializer

import "strings"

// lines accumulates "label: value" rows, dropping any row whose value is blank.
type lines struct {
	b      strings.Builder
	indent string
}

func (l *lines) add(label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	l.raw(label + ": " + value)
}

func (l *lines) raw(s string) {
	if l.b.Len() > 0 {
		l.b.WriteByte('\n')
	}
	l.b.WriteString(l.indent)
	l.b.WriteString(s)
}

func (l *lines) String() string {
	return l.b.String()
}

// join concatenates the non-blank items.
func join(items []string, sep string) string {
	kept := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			kept = append(kept, it)
		}
	}
	return strings.Join(kept, sep)
}

func yesNo(b bool) string {
	if b {
		return "SÍ"
	}
	return "NO"
}
