package chapters

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"mdbi/book"
)

var ignoreUnexported = cmpopts.IgnoreUnexported(book.Book{}, book.Chapter{})

// equateEmptyLists treats nil and empty item and name lists as equal. Section
// numbers are compared strictly: nil number means unnumbered chapter.
var equateEmptyLists = cmp.FilterPath(func(p cmp.Path) bool {
	switch p.Last().Type() {
	case reflect.TypeFor[[]book.Item](), reflect.TypeFor[[]string]():
		return true
	}
	return false
}, cmpopts.EquateEmpty())

func diffItems(want, got []book.Item) string {
	return cmp.Diff(want, got, ignoreUnexported, equateEmptyLists)
}

// ch builds a chapter item whose output and source paths are both file.
func ch(name, file string, number book.SectionNumber, children ...book.Item) book.Item {
	c := &book.Chapter{
		Name:     name,
		Content:  "# " + name,
		Number:   number,
		SubItems: children,
	}
	if file != "" {
		c.Path = book.StrPtr(file)
		c.SourcePath = book.StrPtr(file)
	}
	return book.NewChapterItem(c)
}

func num(parts ...uint32) book.SectionNumber {
	return book.SectionNumber(parts)
}

// placeholder is what internal chapter with surviving children turns into.
func placeholder(name string, number book.SectionNumber, children ...book.Item) book.Item {
	return book.NewChapterItem(&book.Chapter{
		Name:     name,
		Number:   number,
		SubItems: children,
	})
}
