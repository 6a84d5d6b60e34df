// Package book models the document tree exchanged with mdbook: a book made
// of nested chapters, separators and part titles.
package book

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Book is the whole document handed over by the host.
type Book struct {
	Sections []Item

	// members of the host representation we do not interpret, kept verbatim
	extra map[string]json.RawMessage
}

// ItemKind distinguishes the different kinds of book items.
type ItemKind int

const (
	ItemChapter ItemKind = iota
	ItemSeparator
	ItemPartTitle
)

func (k ItemKind) String() string {
	switch k {
	case ItemChapter:
		return "chapter"
	case ItemSeparator:
		return "separator"
	case ItemPartTitle:
		return "part-title"
	default:
		return "unknown"
	}
}

// Item stores a single entry of the book tree, keeping the original ordering.
// Only chapters carry content and children.
type Item struct {
	Kind      ItemKind
	Chapter   *Chapter
	PartTitle string
}

// NewChapterItem wraps chapter into an Item.
func NewChapterItem(ch *Chapter) Item {
	return Item{Kind: ItemChapter, Chapter: ch}
}

// NewSeparatorItem returns separator Item.
func NewSeparatorItem() Item {
	return Item{Kind: ItemSeparator}
}

// NewPartTitleItem returns part title Item with given label.
func NewPartTitleItem(title string) Item {
	return Item{Kind: ItemPartTitle, PartTitle: title}
}

// IsChapter reports whether item holds a chapter.
func (it *Item) IsChapter() bool {
	return it.Kind == ItemChapter && it.Chapter != nil
}

// SectionNumber is a hierarchical chapter position, e.g. 2.1.3.
type SectionNumber []uint32

// String renders number the way mdbook shows it in the table of contents.
func (n SectionNumber) String() string {
	var b strings.Builder
	for _, part := range n {
		b.WriteString(strconv.FormatUint(uint64(part), 10))
		b.WriteByte('.')
	}
	return b.String()
}

// Chapter is a single book chapter with its nested sub-items.
type Chapter struct {
	Name    string
	Content string
	// Number is nil for prefix and suffix (unnumbered) chapters.
	Number SectionNumber
	// SubItems are nested chapters, separators and part titles.
	SubItems []Item
	// Path is the chapter location in rendered output, nil for draft
	// chapters and placeholders.
	Path *string
	// SourcePath is the location of the source file relative to the book
	// source directory.
	SourcePath  *string
	ParentNames []string

	extra map[string]json.RawMessage
}

// Numbered reports whether the host considers chapter to be numbered.
func (c *Chapter) Numbered() bool {
	return c.Number != nil
}

// Chapters calls fn for every chapter in the book, depth first, parents
// before their children. Chapters under unnumbered parents are visited too.
func (b *Book) Chapters(fn func(*Chapter)) {
	walkChapters(b.Sections, fn)
}

func walkChapters(items []Item, fn func(*Chapter)) {
	for i := range items {
		if !items[i].IsChapter() {
			continue
		}
		fn(items[i].Chapter)
		walkChapters(items[i].Chapter.SubItems, fn)
	}
}

// CountChapters returns total number of chapters in the tree.
func CountChapters(items []Item) int {
	count := 0
	walkChapters(items, func(*Chapter) { count++ })
	return count
}

// StrPtr is a small helper to build optional paths.
func StrPtr(s string) *string {
	return &s
}
