package markers

import (
	"strings"

	"mdbi/config"
)

// Wrapper holds synthesized markup put around retained region text.
type Wrapper struct {
	Open  string
	Close string
}

// Synthesize builds wrapper markup. Every argument may be disabled: without
// wrap element both strings are empty, without label no label element is
// produced, class and style attributes are added independently when present.
//
//	<blockquote class='mdbook-internal' style='...'>
//	<span class='mdbook-internal' style='...'>Internal</span>
//	...
//	</blockquote>
func Synthesize(wrap, label, class, wrapStyle, labelStyle config.Setting) Wrapper {
	element, ok := wrap.Get()
	if !ok {
		return Wrapper{}
	}

	var b strings.Builder
	b.WriteByte('\n')
	b.WriteString(startTag(element, class, wrapStyle))
	b.WriteByte('\n')
	if text, ok := label.Get(); ok {
		b.WriteString(startTag("span", class, labelStyle))
		b.WriteString(text)
		b.WriteString("</span>")
	}
	b.WriteByte('\n')

	return Wrapper{
		Open:  b.String(),
		Close: "\n</" + element + ">\n",
	}
}

// startTag renders opening tag with optional class and style attributes.
// Values are emitted verbatim in single quotes.
func startTag(element string, class, style config.Setting) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(element)
	if v, ok := class.Get(); ok {
		b.WriteString(" class='")
		b.WriteString(v)
		b.WriteByte('\'')
	}
	if v, ok := style.Get(); ok {
		b.WriteString(" style='")
		b.WriteString(v)
		b.WriteByte('\'')
	}
	b.WriteByte('>')
	return b.String()
}
