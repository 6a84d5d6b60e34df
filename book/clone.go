package book

import (
	"encoding/json"
	"maps"
	"slices"
)

// Clone and deep copy functions for book structures.
// Stages rewrite the tree in place, a copy lets us keep the original around
// for debugging and testing.

// Clone creates a deep copy of the Book.
func (b *Book) Clone() *Book {
	if b == nil {
		return nil
	}
	return &Book{
		Sections: cloneItems(b.Sections),
		extra:    cloneMembers(b.extra),
	}
}

// Clone creates a deep copy of the Chapter including all sub-items.
func (c *Chapter) Clone() *Chapter {
	if c == nil {
		return nil
	}
	return &Chapter{
		Name:        c.Name,
		Content:     c.Content,
		Number:      slices.Clone(c.Number),
		SubItems:    cloneItems(c.SubItems),
		Path:        cloneStrPtr(c.Path),
		SourcePath:  cloneStrPtr(c.SourcePath),
		ParentNames: slices.Clone(c.ParentNames),
		extra:       cloneMembers(c.extra),
	}
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	result := make([]Item, len(items))
	for i := range items {
		result[i] = Item{
			Kind:      items[i].Kind,
			Chapter:   items[i].Chapter.Clone(),
			PartTitle: items[i].PartTitle,
		}
	}
	return result
}

func cloneStrPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneMembers(m map[string]json.RawMessage) map[string]json.RawMessage {
	if m == nil {
		return nil
	}
	result := make(map[string]json.RawMessage, len(m))
	for k, v := range maps.All(m) {
		result[k] = slices.Clone(v)
	}
	return result
}
