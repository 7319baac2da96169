// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package outpath

import (
	"math"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🏷️ Field is a value a template placeholder resolves to.
type Field struct {
	text  string
	items []string
	seq   bool
	join  bool
}

// Text returns a scalar field.
func Text(s string) Field {
	return Field{text: s}
}

// List returns a sequence field that must be indexed, like parents.
func List(items ...string) Field {
	return Field{items: items, seq: true}
}

// Joined returns a sequence field that renders as the concatenation of its
// items when used without an index, like suffixes.
func Joined(items ...string) Field {
	return Field{items: items, seq: true, join: true}
}

// Fields maps placeholder names to values.
type Fields map[string]Field

// With returns a copy of f with extra merged in. Extra values win.
func (f Fields) With(extra map[string]string) Fields {
	out := make(Fields, len(f)+len(extra))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = Text(v)
	}
	return out
}

type segment struct {
	literal string
	field   string
	index   []int
	raw     string
}

func (s segment) isField() bool {
	return s.field != ""
}

// 📝 Template is a parsed output path pattern.
type Template struct {
	raw  string
	segs []segment
}

// 🔍 Parse parses a pattern such as "{parent}/{stem}.{target}{suffix}".
func Parse(pattern string) (*Template, error) {
	t := &Template{raw: pattern}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.segs = append(t.segs, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '{':
			if i+1 < len(pattern) && pattern[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexAny(pattern[i+1:], "{}")
			if end < 0 || pattern[i+1+end] != '}' {
				return nil, errors.Errorf("%w: unbalanced '{' at offset %d in %q", ErrMalformedTemplate, i, pattern)
			}
			seg, err := parseField(pattern[i+1 : i+1+end])
			if err != nil {
				return nil, errors.Errorf("%w in %q", err, pattern)
			}
			flush()
			t.segs = append(t.segs, seg)
			i += end + 1
		case '}':
			if i+1 < len(pattern) && pattern[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, errors.Errorf("%w: single '}' at offset %d in %q", ErrMalformedTemplate, i, pattern)
		default:
			lit.WriteByte(c)
		}
	}
	flush()

	return t, nil
}

// parseField parses the inside of a placeholder: a name followed by zero or
// more [N] indexes.
func parseField(body string) (segment, error) {
	seg := segment{raw: "{" + body + "}"}

	name := body
	if i := strings.IndexByte(body, '['); i >= 0 {
		name = body[:i]
	}
	if !isIdentifier(name) {
		return seg, errors.Errorf("%w: invalid field name %q", ErrMalformedTemplate, name)
	}
	seg.field = name

	rest := body[len(name):]
	for rest != "" {
		if rest[0] != '[' {
			return seg, errors.Errorf("%w: unexpected %q after %s", ErrMalformedTemplate, rest, name)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return seg, errors.Errorf("%w: unterminated index in %s", ErrMalformedTemplate, seg.raw)
		}
		digits := rest[1:end]
		if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
			return seg, errors.Errorf("%w: bad index %q in %s", ErrMalformedTemplate, digits, seg.raw)
		}
		n, err := strconv.Atoi(digits)
		if errors.Is(err, strconv.ErrRange) {
			// past the end of any sequence, reported when executed
			n = math.MaxInt
		} else if err != nil {
			return seg, errors.Errorf("%w: bad index %q in %s", ErrMalformedTemplate, digits, seg.raw)
		}
		seg.index = append(seg.index, n)
		rest = rest[end+1:]
	}

	return seg, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// FieldNames returns the placeholder names referenced by the template, in
// order of first use.
func (t *Template) FieldNames() []string {
	var names []string
	seen := map[string]bool{}
	for _, s := range t.segs {
		if s.isField() && !seen[s.field] {
			seen[s.field] = true
			names = append(names, s.field)
		}
	}
	return names
}

// 🏃 Execute substitutes every placeholder with its value from fields.
func (t *Template) Execute(fields Fields) (string, error) {
	var b strings.Builder
	for _, s := range t.segs {
		if !s.isField() {
			b.WriteString(s.literal)
			continue
		}
		v, err := s.resolve(fields)
		if err != nil {
			return "", err
		}
		b.WriteString(v)
	}
	return b.String(), nil
}

func (s segment) resolve(fields Fields) (string, error) {
	f, ok := fields[s.field]
	if !ok {
		return "", errors.Errorf("%w: unknown field %q", ErrTemplateField, s.field)
	}

	for _, idx := range s.index {
		if !f.seq {
			return "", errors.Errorf("%w: field %q is not a sequence and cannot be indexed in %s", ErrTemplateField, s.field, s.raw)
		}
		if idx >= len(f.items) {
			return "", errors.Errorf("%w: %s has only %d items", ErrIndexOutOfRange, s.raw, len(f.items))
		}
		f = Text(f.items[idx])
	}

	switch {
	case !f.seq:
		return f.text, nil
	case f.join:
		return strings.Join(f.items, ""), nil
	default:
		return "", errors.Errorf("%w: sequence field %q must be indexed, e.g. {%s[0]}", ErrTemplateField, s.field, s.field)
	}
}

// String returns the pattern the template was parsed from.
func (t *Template) String() string {
	return t.raw
}
