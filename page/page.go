// Package page loads an HTML page from disk together with the scripts it
// references, for running against the in-memory dom.
package page

import (
	"bytes"
	"encoding/base64"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/chrisuehlinger/stylekit/dom"
)

// Script is one <script> of a page, or a script supplied alongside it.
type Script struct {
	// Name identifies the script in logs and errors: the src attribute, or
	// "inline #n" for the n'th inline script.
	Name  string
	Code  string
	Defer bool
}

// Page is a parsed document and its scripts in execution order.
type Page struct {
	Path     string
	Document *dom.Document
	Scripts  []Script

	// Errors holds scripts that could not be loaded. They are left out of
	// Scripts.
	Errors []error
}

// Load reads and parses the HTML file at path. External scripts are read
// relative to the file's directory; data: URLs are decoded in place.
func Load(path string, log logrus.FieldLogger) (*Page, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read page")
	}
	p, err := Parse(content, filepath.Dir(path), log)
	if err != nil {
		return nil, err
	}
	p.Path = path
	if abs, err := filepath.Abs(path); err == nil {
		p.Document.SetURL((&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String())
	}
	return p, nil
}

// Parse parses an HTML page whose external scripts live under dir.
func Parse(content []byte, dir string, log logrus.FieldLogger) (*Page, error) {
	doc, err := dom.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	p := &Page{Document: doc}
	p.collectScripts(dir, log)
	return p, nil
}

// collectScripts gathers scripts in document order, with deferred external
// scripts moved after all others.
func (p *Page) collectScripts(dir string, log logrus.FieldLogger) {
	var ordered, deferred []Script
	inline := 0
	for _, el := range p.Document.Elements() {
		if el.LocalName() != "script" {
			continue
		}
		scriptType := el.GetAttribute("type")
		if !IsJavaScriptType(scriptType) {
			log.WithField("type", scriptType).Debug("skipping non-JavaScript script")
			continue
		}

		src := el.GetAttribute("src")
		if src == "" {
			inline++
			ordered = append(ordered, Script{Name: "inline #" + strconv.Itoa(inline), Code: el.Text()})
			continue
		}

		code, err := readScript(dir, src)
		if err != nil {
			log.WithField("src", src).WithError(err).Warn("failed to load script")
			p.Errors = append(p.Errors, err)
			continue
		}
		s := Script{Name: src, Code: code, Defer: el.HasAttribute("defer")}
		if s.Defer {
			deferred = append(deferred, s)
		} else {
			ordered = append(ordered, s)
		}
	}
	p.Scripts = append(ordered, deferred...)
}

func readScript(dir, src string) (string, error) {
	if IsDataURL(src) {
		data, err := DecodeDataURL(src)
		if err != nil {
			return "", errors.Wrapf(err, "script %s", src)
		}
		return string(data), nil
	}
	u, err := url.Parse(src)
	if err != nil {
		return "", errors.Wrapf(err, "script %s", src)
	}
	if u.Scheme != "" && u.Scheme != "file" {
		return "", errors.Errorf("script %s: scheme %q is not loadable", src, u.Scheme)
	}
	path := filepath.FromSlash(u.Path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "script %s", src)
	}
	return string(content), nil
}

// IsJavaScriptType reports whether a <script type> attribute denotes a
// classic script. The empty type is JavaScript.
func IsJavaScriptType(t string) bool {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "", "text/javascript", "application/javascript", "application/x-javascript":
		return true
	}
	return false
}

// IsDataURL returns true if the URL is a data URL.
func IsDataURL(s string) bool {
	return strings.HasPrefix(strings.ToLower(s), "data:")
}

// DecodeDataURL returns the payload of a data URL.
// Format: data:[<mediatype>][;base64],<data>
func DecodeDataURL(s string) ([]byte, error) {
	if !IsDataURL(s) {
		return nil, errors.New("not a data URL")
	}
	content := s[len("data:"):]
	comma := strings.IndexByte(content, ',')
	if comma == -1 {
		return nil, errors.New("invalid data URL: missing comma")
	}
	metadata, data := content[:comma], content[comma+1:]

	if strings.HasSuffix(strings.ToLower(metadata), ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, errors.Wrap(err, "decode base64 data")
		}
		return decoded, nil
	}
	decoded, err := url.PathUnescape(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode data")
	}
	return []byte(decoded), nil
}
