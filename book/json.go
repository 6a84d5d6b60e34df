package book

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Host representation follows serde external tagging used by mdbook:
//
//	{"Chapter": {...}}, "Separator", {"PartTitle": "..."}

const (
	tagChapter   = "Chapter"
	tagSeparator = "Separator"
	tagPartTitle = "PartTitle"
)

var ErrUnknownItem = errors.New("unknown book item")

type bookJSON struct {
	Sections []Item `json:"sections"`
}

type chapterJSON struct {
	Name        string        `json:"name"`
	Content     string        `json:"content"`
	Number      SectionNumber `json:"number"`
	SubItems    []Item        `json:"sub_items"`
	Path        *string       `json:"path"`
	SourcePath  *string       `json:"source_path"`
	ParentNames []string      `json:"parent_names"`
}

var (
	bookKeys    = []string{"sections"}
	chapterKeys = []string{"name", "content", "number", "sub_items", "path", "source_path", "parent_names"}
)

func (b *Book) UnmarshalJSON(data []byte) error {
	var known bookJSON
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	extra, err := unknownMembers(data, bookKeys)
	if err != nil {
		return err
	}
	b.Sections, b.extra = known.Sections, extra
	return nil
}

func (b Book) MarshalJSON() ([]byte, error) {
	known := bookJSON{Sections: b.Sections}
	if known.Sections == nil {
		known.Sections = []Item{}
	}
	return withMembers(known, b.extra)
}

func (c *Chapter) UnmarshalJSON(data []byte) error {
	var known chapterJSON
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	extra, err := unknownMembers(data, chapterKeys)
	if err != nil {
		return err
	}
	*c = Chapter{
		Name:        known.Name,
		Content:     known.Content,
		Number:      known.Number,
		SubItems:    known.SubItems,
		Path:        known.Path,
		SourcePath:  known.SourcePath,
		ParentNames: known.ParentNames,
		extra:       extra,
	}
	return nil
}

func (c Chapter) MarshalJSON() ([]byte, error) {
	known := chapterJSON{
		Name:        c.Name,
		Content:     c.Content,
		Number:      c.Number,
		SubItems:    c.SubItems,
		Path:        c.Path,
		SourcePath:  c.SourcePath,
		ParentNames: c.ParentNames,
	}
	// host expects arrays here, never null
	if known.SubItems == nil {
		known.SubItems = []Item{}
	}
	if known.ParentNames == nil {
		known.ParentNames = []string{}
	}
	return withMembers(known, c.extra)
}

func (it *Item) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return err
		}
		if tag != tagSeparator {
			return fmt.Errorf("%w: %q", ErrUnknownItem, tag)
		}
		*it = NewSeparatorItem()
		return nil
	}

	var variant map[string]json.RawMessage
	if err := json.Unmarshal(data, &variant); err != nil {
		return err
	}
	if len(variant) != 1 {
		return fmt.Errorf("%w: expected single variant, got %d members", ErrUnknownItem, len(variant))
	}
	for tag, payload := range variant {
		switch tag {
		case tagChapter:
			ch := &Chapter{}
			if err := json.Unmarshal(payload, ch); err != nil {
				return fmt.Errorf("unable to decode chapter: %w", err)
			}
			*it = NewChapterItem(ch)
		case tagPartTitle:
			var title string
			if err := json.Unmarshal(payload, &title); err != nil {
				return fmt.Errorf("unable to decode part title: %w", err)
			}
			*it = NewPartTitleItem(title)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownItem, tag)
		}
	}
	return nil
}

func (it Item) MarshalJSON() ([]byte, error) {
	switch it.Kind {
	case ItemChapter:
		if it.Chapter == nil {
			return nil, fmt.Errorf("%w: chapter item without chapter", ErrUnknownItem)
		}
		return marshal(map[string]*Chapter{tagChapter: it.Chapter})
	case ItemSeparator:
		return marshal(tagSeparator)
	case ItemPartTitle:
		return marshal(map[string]string{tagPartTitle: it.PartTitle})
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownItem, it.Kind)
	}
}

// unknownMembers returns object members not listed in known.
func unknownMembers(data []byte, known []string) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// withMembers encodes v and merges extra members into resulting object.
func withMembers(v any, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for k, raw := range extra {
		if _, exists := all[k]; !exists {
			all[k] = raw
		}
	}
	return marshal(all)
}

// marshal is json.Marshal without HTML escaping, chapter content is markup
// and should stay readable.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}
