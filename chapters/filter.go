// Package chapters removes, hides or renames chapters whose source file name
// marks them as internal, and renumbers chapters afterwards.
package chapters

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"mdbi/book"
	"mdbi/common"
	"mdbi/config"
)

// IsInternal reports whether file name of chapter source starts with prefix.
// Directories leading to the file do not matter. Comparison is literal.
// Source without a file name ("", ".", "..", "/") is never internal.
func IsInternal(ch *book.Chapter, prefix string) bool {
	if ch.SourcePath == nil {
		return false
	}
	_, name, ok := fileName(*ch.SourcePath)
	return ok && strings.HasPrefix(name, prefix)
}

// StripPrefix removes prefix from the last element of path. Path is returned
// unchanged when its file name does not start with prefix. Trailing
// separators are not part of the file name and are dropped with it.
//
//	StripPrefix("guide/_setup.md", "_") == "guide/setup.md"
//	StripPrefix("guide/_setup/", "_") == "guide/setup"
func StripPrefix(path, prefix string) string {
	dir, name, ok := fileName(path)
	if !ok {
		return path
	}
	name, ok = strings.CutPrefix(name, prefix)
	if !ok {
		return path
	}
	return dir + name
}

// separators recognized at the end of a path on this platform.
const separators = "/" + string(filepath.Separator)

// fileName splits path into directory part and the last normal element.
// Trailing separators and "." elements are skipped, path ending in ".." or
// consisting of a root only has no file name.
func fileName(path string) (dir, name string, ok bool) {
	p := path
	for {
		p = strings.TrimRight(p, separators)
		dir, name = filepath.Split(p)
		if name == "." && dir != "" {
			p = dir
			continue
		}
		break
	}
	switch name {
	case "", ".", "..":
		return "", "", false
	}
	return dir, name, true
}

// Remove returns new list of items without internal chapters. With
// ChildrenPolicyRemove internal chapter goes away together with all its
// descendants. With ChildrenPolicyKeep remaining (visible) descendants are
// preserved under a placeholder: chapter without content and paths, so it
// could not be rendered or linked to. Placeholder without children is
// dropped.
func Remove(items []book.Item, prefix string, policy common.ChildrenPolicy) []book.Item {
	result := make([]book.Item, 0, len(items))
	for _, item := range items {
		if !item.IsChapter() {
			result = append(result, item)
			continue
		}

		ch := item.Chapter
		internal := IsInternal(ch, prefix)
		if internal && !policy.Keep() {
			continue
		}

		ch.SubItems = Remove(ch.SubItems, prefix, policy)
		if internal {
			if len(ch.SubItems) == 0 {
				continue
			}
			ch.Content = ""
			ch.Path = nil
			ch.SourcePath = nil
		}
		result = append(result, item)
	}
	return result
}

// Strip returns new list of items where output paths of internal chapters
// lose prefix. Nothing is ever removed, source paths and content stay as they
// were.
func Strip(items []book.Item, prefix string) []book.Item {
	result := make([]book.Item, 0, len(items))
	for _, item := range items {
		if item.IsChapter() {
			ch := item.Chapter
			if IsInternal(ch, prefix) && ch.Path != nil {
				ch.Path = book.StrPtr(StripPrefix(*ch.Path, prefix))
			}
			ch.SubItems = Strip(ch.SubItems, prefix)
		}
		result = append(result, item)
	}
	return result
}

// Process applies internal chapter handling selected by options to the book.
// Remove mode wins over strip, when neither is requested book is returned as
// is.
func Process(b *book.Book, remove bool, opts *config.ChaptersOptions, log *zap.Logger) *book.Book {
	prefix, ok := opts.Prefix.Get()
	if !ok {
		log.Debug("Internal chapters handling is disabled")
		return b
	}

	before := book.CountChapters(b.Sections)
	switch {
	case remove:
		b.Sections = Remove(b.Sections, prefix, opts.Children)
		log.Debug("Internal chapters removed",
			zap.String("prefix", prefix),
			zap.Stringer("children", opts.Children),
			zap.Int("before", before),
			zap.Int("after", book.CountChapters(b.Sections)))
	case opts.Strip:
		b.Sections = Strip(b.Sections, prefix)
		log.Debug("Prefix stripped from internal chapter paths", zap.String("prefix", prefix), zap.Int("chapters", before))
	default:
		log.Debug("Internal chapters left as is", zap.String("prefix", prefix))
	}
	return b
}
