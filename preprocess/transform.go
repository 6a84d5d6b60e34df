package preprocess

import (
	"go.uber.org/zap"

	"mdbi/book"
	"mdbi/chapters"
	"mdbi/config"
	"mdbi/markers"
)

// Transform applies all processing to the book in order: marked sections,
// internal chapters, renumbering. Book is modified in place and returned.
func Transform(b *book.Book, opts *config.Options, log *zap.Logger) *book.Book {
	b = markers.Process(b, opts.Remove, &opts.Sections, log.Named("sections"))
	b = chapters.Process(b, opts.Remove, &opts.Chapters, log.Named("chapters"))
	if opts.Chapters.Recalculate {
		b.Sections = chapters.Renumber(b.Sections)
	}
	if ce := log.Check(zap.DebugLevel, "Book after processing"); ce != nil {
		ce.Write(zap.Stringer("book", b))
	}
	return b
}
