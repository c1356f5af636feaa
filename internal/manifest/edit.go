package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"

	"github.com/conn-castle/ext-installer/internal/messages"
	"github.com/conn-castle/ext-installer/internal/toolchain"
)

// Edit is the outcome of rewriting the version field.
type Edit struct {
	Content []byte
	// Matched is false when the editor found no version entry to replace.
	Matched bool
}

// Editor rewrites the manifest version.
type Editor interface {
	SetVersion(ctx context.Context, path string, data []byte, version string) (Edit, error)
}

// NewEditor returns the editor for strategy. jsonTool and runner are only
// used by the structured editor.
func NewEditor(strategy toolchain.EditStrategy, runner toolchain.Runner, jsonTool string) Editor {
	if strategy == toolchain.EditStructured {
		return StructuredEditor{Runner: runner, Tool: jsonTool}
	}
	return TextualEditor{}
}

// StructuredEditor sets .version through a jq-compatible JSON tool.
type StructuredEditor struct {
	Runner toolchain.Runner
	Tool   string
}

// SetVersion runs the JSON tool on path and checks that its result differs
// from the original only in the top-level version. The returned content is the
// original bytes with just the version value replaced, so formatting, key
// order and string escapes elsewhere are never rewritten by the tool. A
// manifest without a top-level version is reported as unmatched.
func (e StructuredEditor) SetVersion(ctx context.Context, path string, data []byte, version string) (Edit, error) {
	args := append(indentArgs(data), "--arg", "v", version, ".version = $v", filepath.Base(path))
	out, err := e.Runner.Output(ctx, filepath.Dir(path), e.Tool, args...)
	if err != nil {
		return Edit{}, fmt.Errorf(messages.ManifestEditFailedFmt, e.Tool, err)
	}
	if err := Verify(out, path, version); err != nil {
		return Edit{}, err
	}

	start, end, found, err := topLevelValueSpan(data, "version")
	if err != nil {
		return Edit{}, fmt.Errorf(messages.ManifestInvalidFmt, path, err)
	}
	if !found {
		return Edit{Content: data, Matched: false}, nil
	}
	quoted, err := quote(version)
	if err != nil {
		return Edit{}, err
	}
	spliced := splice(data, start, end, quoted)

	same, err := sameJSON(spliced, out)
	if err != nil {
		return Edit{}, fmt.Errorf(messages.ManifestInvalidFmt, path, err)
	}
	if !same {
		return Edit{}, fmt.Errorf(messages.ManifestFieldsChangedFmt, e.Tool, path)
	}
	return Edit{Content: spliced, Matched: true}, nil
}

// topLevelValueSpan returns the byte range of the value stored under key in
// the top-level JSON object of data. With duplicate keys the last one wins,
// as it does when the document is decoded.
func topLevelValueSpan(data []byte, key string) (int, int, bool, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return 0, 0, false, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return 0, 0, false, nil
	}

	var start, end int
	found := false
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return 0, 0, false, err
		}
		name, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return 0, 0, false, err
		}
		if name != key {
			continue
		}
		valueEnd := int(dec.InputOffset())
		valueStart := valueEnd - len(raw)
		if valueStart < 0 || !bytes.Equal(data[valueStart:valueEnd], raw) {
			return 0, 0, false, fmt.Errorf("cannot locate %q value", key)
		}
		start, end, found = valueStart, valueEnd, true
	}
	return start, end, found, nil
}

func splice(data []byte, start int, end int, value []byte) []byte {
	out := make([]byte, 0, len(data)-(end-start)+len(value))
	out = append(out, data[:start]...)
	out = append(out, value...)
	return append(out, data[end:]...)
}

// sameJSON reports whether a and b decode to equal values.
func sameJSON(a []byte, b []byte) (bool, error) {
	var va, vb any
	if err := json.Unmarshal(a, &va); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, &vb); err != nil {
		return false, err
	}
	return reflect.DeepEqual(va, vb), nil
}

// indentArgs returns the jq flags that reproduce the indentation of data.
func indentArgs(data []byte) []string {
	for _, line := range bytes.Split(data, []byte("\n")) {
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) == 0 || len(trimmed) == len(line) {
			continue
		}
		if line[0] == '\t' {
			return []string{"--tab"}
		}
		width := len(line) - len(bytes.TrimLeft(line, " "))
		if width > 7 {
			width = 7
		}
		return []string{"--indent", strconv.Itoa(width)}
	}
	return nil
}

// versionPattern matches the exact `"version": "..."` form, including escaped
// quotes inside the value; other spacing is not recognized.
var versionPattern = regexp.MustCompile(`"version": "(?:[^"\\]|\\.)*"`)

// TextualEditor replaces the first `"version": "..."` substring.
type TextualEditor struct{}

// SetVersion rewrites data without parsing it. When nothing matches, the
// content is returned unchanged with Matched false.
func (TextualEditor) SetVersion(_ context.Context, _ string, data []byte, version string) (Edit, error) {
	loc := versionPattern.FindIndex(data)
	if loc == nil {
		return Edit{Content: data, Matched: false}, nil
	}
	quoted, err := quote(version)
	if err != nil {
		return Edit{}, err
	}
	var buf bytes.Buffer
	buf.Grow(len(data) + len(quoted))
	buf.Write(data[:loc[0]])
	buf.WriteString(`"version": `)
	buf.Write(quoted)
	buf.Write(data[loc[1]:])
	return Edit{Content: buf.Bytes(), Matched: true}, nil
}

// quote returns version as a JSON string literal without HTML escaping.
func quote(version string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(version); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
