package config

import (
	"mdbi/common"
)

// PreprocessorName is the name under which the host keeps our table:
// [preprocessor.internal] in book.toml.
const PreprocessorName = "internal"

// Built-in option values.
const (
	DefaultRemove = false

	DefaultSectionsComment    = "internal"
	DefaultSectionsWrap       = "blockquote"
	DefaultSectionsClass      = "mdbook-internal"
	DefaultSectionsLabel      = "Internal"
	DefaultSectionsStyleWrap  = "position: relative; padding: 20px 20px;"
	DefaultSectionsStyleLabel = "position: absolute; top: 0; right: 5px; font-size: 80%; opacity: 0.4;"

	DefaultChaptersPrefix      = "_"
	DefaultChaptersStrip       = false
	DefaultChaptersRecalculate = true
	// NOTE: when [chapters] table is present but has no "children" key the
	// policy is "keep", when chapters are not configured at all it is
	// "remove". This is how it always worked, see DefaultChaptersOptions.
	DefaultChaptersChildren = common.ChildrenPolicyKeep
)

// Setting is a string option which can be switched off. Zero value is off.
type Setting struct {
	value string
	on    bool
}

// Value returns enabled setting holding v.
func Value(v string) Setting {
	return Setting{value: v, on: true}
}

// Off returns disabled setting.
func Off() Setting {
	return Setting{}
}

// Get returns value and whether setting is enabled.
func (s Setting) Get() (string, bool) {
	return s.value, s.on
}

func (s Setting) Enabled() bool {
	return s.on
}

func (s Setting) String() string {
	if !s.on {
		return "<off>"
	}
	return s.value
}

// MarshalYAML outputs setting the same way it could be written in
// configuration: either string value or false.
func (s Setting) MarshalYAML() (any, error) {
	if !s.on {
		return false, nil
	}
	return s.value, nil
}

type (
	// InlineStyles are style attributes for synthesized wrapper and label
	// elements.
	InlineStyles struct {
		Wrap  Setting `yaml:"wrap"`
		Label Setting `yaml:"label"`
	}

	// SectionsOptions control handling of internal blocks marked by HTML
	// comments inside chapter text. Disabled Comment switches handling off.
	SectionsOptions struct {
		Comment Setting      `yaml:"comment"`
		Wrap    Setting      `yaml:"wrap"`
		Class   Setting      `yaml:"class"`
		Label   Setting      `yaml:"label"`
		Styles  InlineStyles `yaml:"styles"`
	}

	// ChaptersOptions control handling of internal chapters. Disabled Prefix
	// switches handling off, renumbering is controlled separately.
	ChaptersOptions struct {
		Prefix      Setting               `yaml:"prefix"`
		Strip       bool                  `yaml:"strip"`
		Recalculate bool                  `yaml:"recalculate"`
		Children    common.ChildrenPolicy `yaml:"children"`
	}

	// Options is fully resolved preprocessor configuration for a single run.
	Options struct {
		Remove   bool            `yaml:"remove"`
		Sections SectionsOptions `yaml:"sections"`
		Chapters ChaptersOptions `yaml:"chapters"`
	}
)

func DefaultInlineStyles() InlineStyles {
	return InlineStyles{
		Wrap:  Value(DefaultSectionsStyleWrap),
		Label: Value(DefaultSectionsStyleLabel),
	}
}

func DefaultSectionsOptions() SectionsOptions {
	return SectionsOptions{
		Comment: Value(DefaultSectionsComment),
		Wrap:    Value(DefaultSectionsWrap),
		Class:   Value(DefaultSectionsClass),
		Label:   Value(DefaultSectionsLabel),
		Styles:  DefaultInlineStyles(),
	}
}

// DefaultChaptersOptions is used when chapters are not configured or set to
// true. Children policy here differs from per-key default inside a table.
func DefaultChaptersOptions() ChaptersOptions {
	return ChaptersOptions{
		Prefix:      Value(DefaultChaptersPrefix),
		Strip:       DefaultChaptersStrip,
		Recalculate: DefaultChaptersRecalculate,
		Children:    common.ChildrenPolicyRemove,
	}
}

func DefaultOptions() *Options {
	return &Options{
		Remove:   DefaultRemove,
		Sections: DefaultSectionsOptions(),
		Chapters: DefaultChaptersOptions(),
	}
}
