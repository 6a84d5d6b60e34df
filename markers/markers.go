// Package markers finds blocks of chapter text enclosed in marker comments
// and either drops them or wraps them into styled HTML elements.
//
//	<!-- [internal]
//	Text only team members should see.
//	[/internal] -->
//
// Whole region is a single HTML comment, so unprocessed book does not show
// it. Text between markers is opaque, it is moved around and never
// interpreted.
package markers

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"mdbi/book"
	"mdbi/config"
)

// paragraphBreak replaces removed regions. Pattern consumes whitespace around
// the markers, so at least this much is needed to keep text before and after
// region from merging into a single paragraph.
const paragraphBreak = "\n\n"

// space matches any Unicode white space, RE2 \s is ASCII only.
const space = `[\s\v\x{85}\p{Z}]`

// Pattern returns expression matching a whole marker region for keyword
// together with whitespace around it. First group captures inner text. Lazy
// matching means the first closing marker ends the region, nesting of the
// same keyword is not supported.
func Pattern(keyword string) *regexp.Regexp {
	k := regexp.QuoteMeta(keyword)
	return regexp.MustCompile(fmt.Sprintf(`%[2]s*<!--%[2]s*\[%[1]s\]%[2]s*((?s).*?)%[2]s*\[/%[1]s\]%[2]s*-->%[2]s*`, k, space))
}

// Remove deletes every marker region from content.
func Remove(content string, re *regexp.Regexp) string {
	return re.ReplaceAllLiteralString(content, paragraphBreak)
}

// Annotate replaces every marker region with inner text surrounded by
// wrapper elements. Inner text is kept exactly as captured.
func Annotate(content string, re *regexp.Regexp, w Wrapper) string {
	matches := re.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	var (
		b    strings.Builder
		last int
	)
	for _, m := range matches {
		b.WriteString(content[last:m[0]])
		b.WriteByte('\n')
		b.WriteString(w.Open)
		b.WriteByte('\n')
		b.WriteString(content[m[2]:m[3]])
		b.WriteByte('\n')
		b.WriteString(w.Close)
		b.WriteByte('\n')
		last = m[1]
	}
	b.WriteString(content[last:])
	return b.String()
}

// Process handles marker regions in every chapter of the book according to
// options. Chapters are rewritten in place.
func Process(b *book.Book, remove bool, opts *config.SectionsOptions, log *zap.Logger) *book.Book {
	keyword, ok := opts.Comment.Get()
	if !ok {
		log.Debug("Internal sections handling is disabled")
		return b
	}

	re := Pattern(keyword)

	var rewrite func(string) string
	if remove {
		rewrite = func(content string) string { return Remove(content, re) }
	} else {
		w := Synthesize(opts.Wrap, opts.Label, opts.Class, opts.Styles.Wrap, opts.Styles.Label)
		rewrite = func(content string) string { return Annotate(content, re, w) }
	}

	touched := 0
	b.Chapters(func(ch *book.Chapter) {
		if !re.MatchString(ch.Content) {
			return
		}
		ch.Content = rewrite(ch.Content)
		touched++
	})

	log.Debug("Internal sections processed",
		zap.String("keyword", keyword),
		zap.Bool("remove", remove),
		zap.Int("chapters", touched))
	return b
}
