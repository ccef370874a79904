// Package locales provides discovery and parsing of translation files for the checker.
package locales

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	yaml "sigs.k8s.io/yaml/goyaml.v2"
)

type (
	// File describes one discovered translation file.
	File struct {
		// Name is the bare file name, e.g. "messages.fr.json".
		Name string
		// Path is the full path to the file.
		Path string
		// Code is the language code derived from the file name.
		Code string
	}

	// Value is a message value read from a translation file.
	// String values carry message text; everything else is kept verbatim
	// so callers can iterate past it without content checks.
	Value struct {
		raw   any
		str   string
		isStr bool
	}

	// Set is one translation file's key/value content in file order.
	Set struct {
		values map[string]Value
		keys   []string
	}
)

const (
	// BaseCode is the language code of the base template file.
	BaseCode = "en"
	// ExtraCode is the language code of the supplementary template file.
	ExtraCode = "ex"

	filePrefix = "messages."
)

//nolint:gochecknoglobals // Fixed set of recognized translation file extensions
var fileExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// StringValue returns a Value holding message text.
func StringValue(s string) Value {
	return Value{str: s, isStr: true, raw: s}
}

// OtherValue returns a Value holding a non-string payload.
func OtherValue(v any) Value {
	return Value{raw: v}
}

// Text returns the message text and true for string values,
// or "" and false otherwise.
func (v Value) Text() (string, bool) {
	return v.str, v.isStr
}

// IsEmpty reports whether the value is an empty message: the empty
// string or a null payload.
func (v Value) IsEmpty() bool {
	if v.isStr {
		return v.str == ""
	}
	return v.raw == nil
}

// Raw returns the value as parsed from the file.
func (v Value) Raw() any {
	return v.raw
}

// StringSlice returns the payload as a list of strings, if the value is a
// non-string list whose elements are all strings.
func (v Value) StringSlice() ([]string, bool) {
	if v.isStr {
		return nil, false
	}
	items, ok := v.raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// NewSet returns an empty translation set.
func NewSet() *Set {
	return &Set{values: make(map[string]Value)}
}

// Add stores a value under key. A repeated key keeps its original
// position and takes the new value.
func (s *Set) Add(key string, v Value) {
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

// Keys returns the message keys in file order.
func (s *Set) Keys() []string {
	return s.keys
}

// Lookup returns the value stored under key.
func (s *Set) Lookup(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of keys in the set.
func (s *Set) Len() int {
	return len(s.keys)
}

// Discover returns the translation files found in dir, in directory order.
// Entries that do not follow the messages.<code>.<ext> convention or whose
// code is not a recognized language code are skipped. A non-empty languages
// list restricts the result to those codes.
func Discover(dir string, languages []string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	var wanted map[string]bool
	if len(languages) > 0 {
		wanted = make(map[string]bool, len(languages))
		for _, lang := range languages {
			wanted[lang] = true
		}
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		code := CodeFromFileName(name)
		if code == "" {
			continue
		}
		if !IsValidCode(code) {
			slog.Default().Warn("could not determine language for file", "name", name)
			continue
		}
		if wanted != nil && !wanted[code] {
			continue
		}
		files = append(files, File{
			Name: name,
			Path: filepath.Join(dir, name),
			Code: code,
		})
	}
	return files, nil
}

// CodeFromFileName extracts the language code from a translation file name.
// Returns "" if the name does not follow the messages.<code>.<ext> convention.
func CodeFromFileName(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if !fileExtensions[ext] || !strings.HasPrefix(base, filePrefix) {
		return ""
	}
	nameWithoutExt := strings.TrimSuffix(base, ext)
	parts := strings.Split(nameWithoutExt, ".")
	if len(parts) < 2 { //nolint:mnd // need at least name and language parts
		return ""
	}
	return parts[len(parts)-1]
}

// IsValidCode reports whether code is a well-formed language code or the
// reserved supplementary template code.
func IsValidCode(code string) bool {
	if code == ExtraCode {
		return true
	}
	_, err := language.Parse(code)
	return err == nil
}

// ParseFile reads and parses one translation file into a Set.
// Key order is preserved for both JSON and YAML content.
func ParseFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}

	var set *Set
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		set, err = parseYAML(data)
	default:
		set, err = parseJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return set, nil
}

func parseJSON(data []byte) (*Set, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("translation file must contain a single JSON object")
	}

	set := NewSet()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("error parsing JSON: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.New("translation file keys must be strings")
		}

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("error parsing JSON value for key %q: %w", key, err)
		}
		set.Add(key, valueOf(raw))
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}
	return set, nil
}

func parseYAML(data []byte) (*Set, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing YAML: %w", err)
	}

	set := NewSet()
	for _, item := range doc {
		key, ok := item.Key.(string)
		if !ok {
			key = fmt.Sprintf("%v", item.Key)
		}
		set.Add(key, valueOf(normalizeYAMLValue(item.Value)))
	}
	return set, nil
}

// normalizeYAMLValue converts goyaml container types to the shapes the
// JSON parser produces, so Value behaves identically for both formats.
func normalizeYAMLValue(v any) any {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeYAMLValue(item)
		}
		return out
	case yaml.MapSlice:
		out := make(map[string]any, len(val))
		for _, item := range val {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprintf("%v", item.Key)
			}
			out[key] = normalizeYAMLValue(item.Value)
		}
		return out
	default:
		return v
	}
}

func valueOf(raw any) Value {
	if s, ok := raw.(string); ok {
		return StringValue(s)
	}
	return OtherValue(raw)
}
