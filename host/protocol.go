// Package host implements the preprocessor side of mdbook protocol: the
// host writes JSON array [context, book] to our stdin and expects book JSON
// back on stdout.
package host

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"

	"mdbi/book"
	"mdbi/misc"
)

var ErrMalformedInput = errors.New("malformed preprocessor input")

// Context is what the host tells us about the current build.
type Context struct {
	Root          string         `json:"root"`
	Config        map[string]any `json:"config"`
	Renderer      string         `json:"renderer"`
	MdbookVersion string         `json:"mdbook_version"`
}

// Request is the complete input of a single preprocessor run.
type Request struct {
	Context Context
	Book    *book.Book
	// Raw keeps input exactly as received, useful for debug reports.
	Raw []byte
}

// ReadRequest reads and decodes host input.
func ReadRequest(r io.Reader) (*Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read preprocessor input: %w", err)
	}
	return DecodeRequest(data)
}

// DecodeRequest decodes host input from data.
func DecodeRequest(data []byte) (*Request, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: expected [context, book], got %d elements", ErrMalformedInput, len(parts))
	}

	req := &Request{Book: &book.Book{}, Raw: data}
	if err := json.Unmarshal(parts[0], &req.Context); err != nil {
		return nil, fmt.Errorf("%w: unable to decode context: %w", ErrMalformedInput, err)
	}
	if err := json.Unmarshal(parts[1], req.Book); err != nil {
		return nil, fmt.Errorf("%w: unable to decode book: %w", ErrMalformedInput, err)
	}
	return req, nil
}

// WriteBook encodes book for the host.
func WriteBook(w io.Writer, b *book.Book) error {
	data, err := EncodeBook(b)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("unable to write book: %w", err)
	}
	return nil
}

// EncodeBook returns host representation of the book.
func EncodeBook(b *book.Book) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// content is markdown with HTML in it, keep it readable
	enc.SetEscapeHTML(false)
	if err := enc.Encode(b); err != nil {
		return nil, fmt.Errorf("unable to encode book: %w", err)
	}
	return buf.Bytes(), nil
}

// CheckVersion reports whether mdbook calling us is compatible with the
// version we were written against. Only a malformed version is an error.
func CheckVersion(hostVersion string) (bool, error) {
	v, err := semver.NewVersion(hostVersion)
	if err != nil {
		return false, fmt.Errorf("unable to parse mdbook version %q: %w", hostVersion, err)
	}
	c, err := semver.NewConstraint("^" + misc.MdbookVersion)
	if err != nil {
		return false, fmt.Errorf("unable to parse supported mdbook version %q: %w", misc.MdbookVersion, err)
	}
	return c.Check(v), nil
}
