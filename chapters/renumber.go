package chapters

import (
	"slices"

	"mdbi/book"
)

// Renumber reassigns numbers of numbered chapters so they are contiguous and
// nested again after some chapters were removed. Only chapters which had a
// number before are numbered. Unnumbered chapters (and anything below them)
// are left alone and do not take up a position among their siblings.
func Renumber(items []book.Item) []book.Item {
	var path book.SectionNumber
	return renumber(items, &path)
}

// renumber walks a single list of siblings. path holds number of the parent
// chapter, it is shared by the whole descent and is restored before return.
func renumber(items []book.Item, path *book.SectionNumber) []book.Item {
	result := make([]book.Item, 0, len(items))
	var current uint32
	for _, item := range items {
		if item.IsChapter() && item.Chapter.Numbered() {
			ch := item.Chapter

			current++
			*path = append(*path, current)
			ch.Number = slices.Clone(*path)
			ch.SubItems = renumber(ch.SubItems, path)
			*path = (*path)[:len(*path)-1]
		}
		result = append(result, item)
	}
	return result
}
