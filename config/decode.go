package config

import (
	"errors"

	"mdbi/common"
)

// ErrInvalidOption is matched by every configuration decoding error.
var ErrInvalidOption = errors.New("invalid preprocessor configuration")

// ConfigError reports configuration value of unexpected type or content.
type ConfigError struct {
	Key     string // dotted path of the offending key, e.g. "chapters.children"
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidOption
}

func newConfigError(key, message string) *ConfigError {
	return &ConfigError{Key: key, Message: message}
}

// FromContext finds our table in the configuration the host passed along
// (whole book.toml as generic table) and decodes it. Absent table, or a
// value which is not a table, means defaults.
func FromContext(hostConfig map[string]any) (*Options, error) {
	preprocessors, ok := hostConfig["preprocessor"].(map[string]any)
	if !ok {
		return DefaultOptions(), nil
	}
	table, ok := preprocessors[PreprocessorName].(map[string]any)
	if !ok {
		return DefaultOptions(), nil
	}
	return Decode(table)
}

// Decode builds Options from generic key/value table. Unknown keys are
// ignored, any recognized key of unexpected type is an error.
func Decode(table map[string]any) (*Options, error) {
	var (
		opts = &Options{}
		err  error
	)

	switch v := lookup(table, "remove").(type) {
	case absent:
		opts.Remove = DefaultRemove
	case bool:
		opts.Remove = v
	default:
		return nil, newConfigError("remove", "`remove` must be a boolean")
	}

	switch v := lookup(table, "sections").(type) {
	case absent:
		opts.Sections = DefaultSectionsOptions()
	case bool:
		opts.Sections = DefaultSectionsOptions()
		if !v {
			opts.Sections.Comment = Off()
		}
	case map[string]any:
		if opts.Sections, err = decodeSections(v); err != nil {
			return nil, err
		}
	default:
		return nil, newConfigError("sections", "`sections` must be an object/map/table, or a boolean")
	}

	switch v := lookup(table, "chapters").(type) {
	case absent:
		opts.Chapters = DefaultChaptersOptions()
	case bool:
		opts.Chapters = DefaultChaptersOptions()
		if !v {
			opts.Chapters.Prefix = Off()
		}
	case map[string]any:
		if opts.Chapters, err = decodeChapters(v); err != nil {
			return nil, err
		}
	default:
		return nil, newConfigError("chapters", "`chapters` must be an object/map/table, or a boolean")
	}

	return opts, nil
}

func decodeSections(table map[string]any) (SectionsOptions, error) {
	var (
		opts SectionsOptions
		err  error
	)
	if opts.Comment, err = decodeSetting(table, "sections", "comment", DefaultSectionsComment); err != nil {
		return opts, err
	}
	if opts.Wrap, err = decodeSetting(table, "sections", "wrap", DefaultSectionsWrap); err != nil {
		return opts, err
	}
	if opts.Class, err = decodeSetting(table, "sections", "class", DefaultSectionsClass); err != nil {
		return opts, err
	}
	if opts.Label, err = decodeSetting(table, "sections", "label", DefaultSectionsLabel); err != nil {
		return opts, err
	}

	switch v := lookup(table, "styles").(type) {
	case absent:
		opts.Styles = DefaultInlineStyles()
	case bool:
		if v {
			opts.Styles = DefaultInlineStyles()
		} else {
			opts.Styles = InlineStyles{Wrap: Off(), Label: Off()}
		}
	case map[string]any:
		if opts.Styles.Wrap, err = decodeSetting(v, "sections.styles", "wrap", DefaultSectionsStyleWrap); err != nil {
			return opts, err
		}
		if opts.Styles.Label, err = decodeSetting(v, "sections.styles", "label", DefaultSectionsStyleLabel); err != nil {
			return opts, err
		}
	default:
		return opts, newConfigError("sections.styles", "`sections.styles` must be an object/map/table, or a boolean")
	}
	return opts, nil
}

func decodeChapters(table map[string]any) (ChaptersOptions, error) {
	var (
		opts ChaptersOptions
		err  error
	)
	if opts.Prefix, err = decodeSetting(table, "chapters", "prefix", DefaultChaptersPrefix); err != nil {
		return opts, err
	}
	if opts.Strip, err = decodeBool(table, "chapters", "strip", DefaultChaptersStrip); err != nil {
		return opts, err
	}
	if opts.Recalculate, err = decodeBool(table, "chapters", "recalculate", DefaultChaptersRecalculate); err != nil {
		return opts, err
	}

	const childrenMsg = "`chapters.children` must be \"keep\" or \"remove\""
	switch v := lookup(table, "children").(type) {
	case absent:
		opts.Children = DefaultChaptersChildren
	case string:
		if opts.Children, err = common.ParseChildrenPolicy(v); err != nil {
			return opts, newConfigError("chapters.children", childrenMsg)
		}
	default:
		return opts, newConfigError("chapters.children", childrenMsg)
	}
	return opts, nil
}

// absent marks key missing from the table, so it could be told apart from
// any value decoders may produce.
type absent struct{}

func lookup(table map[string]any, key string) any {
	v, ok := table[key]
	if !ok {
		return absent{}
	}
	return v
}

// decodeSetting resolves tri-state string option: true or missing selects
// default, string overrides it, false disables it.
func decodeSetting(table map[string]any, parent, key, def string) (Setting, error) {
	switch v := lookup(table, key).(type) {
	case absent:
		return Value(def), nil
	case bool:
		if v {
			return Value(def), nil
		}
		return Off(), nil
	case string:
		return Value(v), nil
	default:
		path := parent + "." + key
		return Setting{}, newConfigError(path, "`"+path+"` must be string or boolean")
	}
}

func decodeBool(table map[string]any, parent, key string, def bool) (bool, error) {
	switch v := lookup(table, key).(type) {
	case absent:
		return def, nil
	case bool:
		return v, nil
	default:
		path := parent + "." + key
		return false, newConfigError(path, "`"+path+"` must be a boolean")
	}
}
