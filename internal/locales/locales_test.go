package locales

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestCodeFromFileName(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		expected string
	}{
		{
			name:     "English JSON",
			fileName: "messages.en.json",
			expected: "en",
		},
		{
			name:     "English GB",
			fileName: "messages.en-GB.json",
			expected: "en-GB",
		},
		{
			name:     "French YAML",
			fileName: "messages.fr.yaml",
			expected: "fr",
		},
		{
			name:     "Spanish YML",
			fileName: "messages.es.yml",
			expected: "es",
		},
		{
			name:     "supplementary template",
			fileName: "messages.ex.json",
			expected: "ex",
		},
		{
			name:     "with directory",
			fileName: "locales/messages.de.json",
			expected: "de",
		},
		{
			name:     "no language part",
			fileName: "messages.json",
			expected: "",
		},
		{
			name:     "wrong prefix",
			fileName: "translations.en.json",
			expected: "",
		},
		{
			name:     "wrong extension",
			fileName: "messages.en.txt",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CodeFromFileName(tt.fileName)

			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestIsValidCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		{
			name:     "English",
			code:     "en",
			expected: true,
		},
		{
			name:     "French",
			code:     "fr",
			expected: true,
		},
		{
			name:     "regional variant",
			code:     "pt-BR",
			expected: true,
		},
		{
			name:     "supplementary template code",
			code:     "ex",
			expected: true,
		},
		{
			name:     "malformed",
			code:     "not a code",
			expected: false,
		},
		{
			name:     "empty",
			code:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidCode(tt.code)

			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "messages.en.json", `{}`)
	writeFile(t, dir, "messages.fr.json", `{}`)
	writeFile(t, dir, "messages.ex.json", `{}`)
	writeFile(t, dir, "messages.es.yaml", `{}`)
	writeFile(t, dir, "readme.txt", "not a translation file")
	writeFile(t, dir, "messages.json", `{}`)
	if err := os.Mkdir(filepath.Join(dir, "messages.de.json"), 0750); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	files, err := Discover(dir, nil)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	expected := []string{
		"messages.en.json",
		"messages.es.yaml",
		"messages.ex.json",
		"messages.fr.json",
	}
	if len(files) != len(expected) {
		t.Fatalf("Expected %d files, got %d", len(expected), len(files))
	}
	for i, f := range files {
		if f.Name != expected[i] {
			t.Errorf("Expected file[%d]=%q, got %q", i, expected[i], f.Name)
		}
		if f.Code != CodeFromFileName(f.Name) {
			t.Errorf("Expected code %q for %q, got %q", CodeFromFileName(f.Name), f.Name, f.Code)
		}
		if f.Path != filepath.Join(dir, f.Name) {
			t.Errorf("Expected path %q, got %q", filepath.Join(dir, f.Name), f.Path)
		}
	}
}

func TestDiscoverWithLanguageFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "messages.en.json", `{}`)
	writeFile(t, dir, "messages.fr.json", `{}`)
	writeFile(t, dir, "messages.es.json", `{}`)

	files, err := Discover(dir, []string{"en", "es"})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}
	if files[0].Code != "en" || files[1].Code != "es" {
		t.Errorf("Expected codes [en es], got [%s %s]", files[0].Code, files[1].Code)
	}
}

func TestDiscoverMissingDirectory(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"), nil)

	if err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestParseFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "messages.en.json", `{
        "zulu": "last alphabetically, first in file",
        "greeting": "Hello {{name}}",
        "count": 42,
        "nested": {"a": "b"},
        "empty": "",
        "missing": null
    }`)

	set, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	expectedKeys := []string{"zulu", "greeting", "count", "nested", "empty", "missing"}
	keys := set.Keys()
	if len(keys) != len(expectedKeys) {
		t.Fatalf("Expected %d keys, got %d", len(expectedKeys), len(keys))
	}
	for i, key := range keys {
		if key != expectedKeys[i] {
			t.Errorf("Expected key[%d]=%q, got %q", i, expectedKeys[i], key)
		}
	}

	greeting, ok := set.Lookup("greeting")
	if !ok {
		t.Fatal("Expected greeting to be present")
	}
	if text, isStr := greeting.Text(); !isStr || text != "Hello {{name}}" {
		t.Errorf("Expected greeting text, got %q (string=%v)", text, isStr)
	}

	count, _ := set.Lookup("count")
	if _, isStr := count.Text(); isStr {
		t.Error("Expected count to be a non-string value")
	}
	if count.IsEmpty() {
		t.Error("Expected numeric value not to be empty")
	}

	nested, _ := set.Lookup("nested")
	if _, isMap := nested.Raw().(map[string]any); !isMap {
		t.Errorf("Expected nested value to keep its raw payload, got %T", nested.Raw())
	}

	empty, _ := set.Lookup("empty")
	if !empty.IsEmpty() {
		t.Error("Expected empty string value to be empty")
	}

	missing, _ := set.Lookup("missing")
	if !missing.IsEmpty() {
		t.Error("Expected null value to be empty")
	}
}

func TestParseFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "messages.fr.yaml", "zebra: first\ngreeting: Bonjour {{name}}\nblank:\nnum: 3\n")

	set, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	expectedKeys := []string{"zebra", "greeting", "blank", "num"}
	keys := set.Keys()
	if len(keys) != len(expectedKeys) {
		t.Fatalf("Expected %d keys, got %d", len(expectedKeys), len(keys))
	}
	for i, key := range keys {
		if key != expectedKeys[i] {
			t.Errorf("Expected key[%d]=%q, got %q", i, expectedKeys[i], key)
		}
	}

	greeting, _ := set.Lookup("greeting")
	if text, isStr := greeting.Text(); !isStr || text != "Bonjour {{name}}" {
		t.Errorf("Expected greeting text, got %q (string=%v)", text, isStr)
	}

	blank, _ := set.Lookup("blank")
	if !blank.IsEmpty() {
		t.Error("Expected blank YAML value to be empty")
	}

	num, _ := set.Lookup("num")
	if _, isStr := num.Text(); isStr {
		t.Error("Expected num to be a non-string value")
	}
}

func TestParseFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		fileName string
		content  string
	}{
		{
			name:     "malformed JSON",
			fileName: "messages.en.json",
			content:  `{invalid`,
		},
		{
			name:     "JSON array instead of object",
			fileName: "messages.fr.json",
			content:  `["not", "an", "object"]`,
		},
		{
			name:     "malformed YAML",
			fileName: "messages.es.yaml",
			content:  "key: [unterminated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.fileName, tt.content)

			_, err := ParseFile(path)

			if err == nil {
				t.Error("Expected parse error but got none")
			}
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "messages.en.json"))

	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSetAddDuplicateKey(t *testing.T) {
	set := NewSet()
	set.Add("key", StringValue("first"))
	set.Add("other", StringValue("second"))
	set.Add("key", StringValue("third"))

	if set.Len() != 2 {
		t.Errorf("Expected 2 keys, got %d", set.Len())
	}

	keys := set.Keys()
	if keys[0] != "key" || keys[1] != "other" {
		t.Errorf("Expected keys [key other], got %v", keys)
	}

	value, _ := set.Lookup("key")
	if text, _ := value.Text(); text != "third" {
		t.Errorf("Expected repeated key to take the new value, got %q", text)
	}
}

func TestValueStringSlice(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected []string
		ok       bool
	}{
		{
			name:     "list of strings",
			value:    OtherValue([]any{"name", "count"}),
			expected: []string{"name", "count"},
			ok:       true,
		},
		{
			name:  "mixed list",
			value: OtherValue([]any{"name", 1}),
			ok:    false,
		},
		{
			name:  "string value",
			value: StringValue("name"),
			ok:    false,
		},
		{
			name:  "nil value",
			value: OtherValue(nil),
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := tt.value.StringSlice()

			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if len(result) != len(tt.expected) {
				t.Fatalf("Expected %d items, got %d", len(tt.expected), len(result))
			}
			for i, item := range result {
				if item != tt.expected[i] {
					t.Errorf("Expected item[%d]=%q, got %q", i, tt.expected[i], item)
				}
			}
		})
	}
}
