// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package templates

import (
	"bytes"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"path"
	"syscall"
	texttemplate "text/template"
)

// PartialsGlob matches the shared HTML fragments parsed into every HTML page
const PartialsGlob = "partials/*.html"

// Result is the outcome of a render: a body, or nothing because the
// template does not exist.
type Result struct {
	Body  []byte
	Found bool
}

// Found wraps a rendered body
func Found(body []byte) Result {
	return Result{Body: body, Found: true}
}

// NotFound is the result for a template that does not exist
func NotFound() Result {
	return Result{}
}

// Resolver loads templates by slash-separated name from a filesystem and
// renders them. Every call reads and parses the template again, so edits
// on disk show up on the next request.
type Resolver struct {
	fsys fs.FS
}

func NewResolver(fsys fs.FS) *Resolver {
	return &Resolver{fsys: fsys}
}

// Render resolves name and executes it with data.
// A name that does not exist, names a directory, or escapes the template
// root yields NotFound with a nil error. Parse and execution failures are errors.
func (r *Resolver) Render(name string, data any) (Result, error) {
	if name == "." || !fs.ValidPath(name) {
		return NotFound(), nil
	}

	info, err := fs.Stat(r.fsys, name)
	if isMissing(err) || (err == nil && info.IsDir()) {
		return NotFound(), nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat template %s: %w", name, err)
	}

	src, err := fs.ReadFile(r.fsys, name)
	if isMissing(err) {
		return NotFound(), nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if path.Ext(name) == ".xml" {
		err = r.renderText(&buf, name, string(src), data)
	} else {
		err = r.renderHTML(&buf, name, string(src), data)
	}
	if err != nil {
		return Result{}, err
	}

	return Found(buf.Bytes()), nil
}

// isMissing reports errors meaning "no template by that name".
// ENOTDIR comes from os.DirFS when a path element is a regular file,
// e.g. post/hello.html/x.html.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrInvalid) ||
		errors.Is(err, syscall.ENOTDIR)
}

// renderText is used for XML documents, which html/template would escape
// as if they were HTML.
func (r *Resolver) renderText(buf *bytes.Buffer, name, src string, data any) error {
	t, err := texttemplate.New(name).Funcs(funcMap()).Parse(src)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	if err := t.Execute(buf, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return nil
}

// renderHTML parses the partials before the page, so a page may redefine
// any block a partial provides.
func (r *Resolver) renderHTML(buf *bytes.Buffer, name, src string, data any) error {
	t := htmltemplate.New(name).Funcs(funcMap())

	partials, err := fs.Glob(r.fsys, PartialsGlob)
	if err != nil {
		return fmt.Errorf("failed to list partials: %w", err)
	}
	if len(partials) > 0 {
		if _, err := t.ParseFS(r.fsys, partials...); err != nil {
			return fmt.Errorf("failed to parse partials for %s: %w", name, err)
		}
	}

	if _, err := t.Parse(src); err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	if err := t.Execute(buf, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return nil
}
