package book

import (
	"mdbi/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// contentExcerpt is how much of chapter content goes into the dump.
const contentExcerpt = 40

// String returns a readable tree of the book. Chapter content is reduced to
// a short excerpt to keep the output compact. It exists solely for inspection
// during debugging.
func (b *Book) String() string {
	if b == nil {
		return "<nil Book>"
	}
	tw := treeWriter{debug.NewTreeWriter()}
	tw.Line(0, "Book")
	tw.items(1, b.Sections)
	return tw.String()
}

func (tw treeWriter) items(depth int, items []Item) {
	for i := range items {
		tw.item(depth, &items[i], i)
	}
}

func (tw treeWriter) item(depth int, it *Item, index int) {
	switch it.Kind {
	case ItemSeparator:
		tw.Line(depth, "Separator[%d]", index)
	case ItemPartTitle:
		tw.Line(depth, "PartTitle[%d]", index)
		tw.TextBlock(depth+1, "title", it.PartTitle)
	case ItemChapter:
		if it.Chapter == nil {
			tw.Line(depth, "Chapter[%d] <nil>", index)
			return
		}
		tw.chapter(depth, it.Chapter, index)
	}
}

func (tw treeWriter) chapter(depth int, ch *Chapter, index int) {
	number := "-"
	if ch.Numbered() {
		number = ch.Number.String()
	}
	tw.Line(depth, "Chapter[%d] number=%s", index, number)
	tw.TextBlock(depth+1, "name", ch.Name)
	tw.Optional(depth+1, "path", ch.Path)
	tw.Optional(depth+1, "source", ch.SourcePath)
	tw.Excerpt(depth+1, "content", ch.Content, contentExcerpt)
	tw.items(depth+1, ch.SubItems)
}
