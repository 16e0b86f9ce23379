package payload

import "strings"

// Render serializes the object as a top-level fragment: comma-joined
// key: value pairs without surrounding braces, ready to be spliced into the
// saveProduct(input: { ... }) mutation.
func Render(o *Object) string {
	var b strings.Builder
	o.renderPairs(&b)

	return b.String()
}

func (o *Object) renderPairs(b *strings.Builder) {
	for i, p := range o.pairs {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(p.key)
		b.WriteString(": ")
		p.node.render(b)
	}
}

func (o *Object) render(b *strings.Builder) {
	b.WriteByte('{')
	o.renderPairs(b)
	b.WriteByte('}')
}

func (a *Array) render(b *strings.Builder) {
	b.WriteByte('[')

	for i, item := range a.items {
		if i > 0 {
			b.WriteByte(',')
		}

		item.render(b)
	}

	b.WriteByte(']')
}

func (s String) render(b *strings.Builder) {
	b.WriteString(`\"`)
	b.WriteString(escapeQuotes(string(s)))
	b.WriteString(`\"`)
}

func (r Raw) render(b *strings.Builder) {
	b.WriteString(string(r))
}

// escapeQuotes backslash-escapes embedded double quotes. The fragment travels
// inside one JSON string value, so this is the only escaping the format needs;
// control characters are already stripped during value extraction.
func escapeQuotes(s string) string {
	if !strings.Contains(s, `"`) {
		return s
	}

	return strings.ReplaceAll(s, `"`, `\"`)
}
