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
	"slices"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🎯 FromPattern formats an output path from inputPath and pattern. Extra
// fields such as "source" and "target" override the structural fields of
// the input path.
func FromPattern(inputPath, pattern string, extra map[string]string) (string, error) {
	t, err := Parse(pattern)
	if err != nil {
		return "", errors.Errorf("parsing output pattern: %w", err)
	}
	return Resolve(inputPath, t, extra)
}

// Resolve executes an already parsed template against inputPath.
func Resolve(inputPath string, t *Template, extra map[string]string) (string, error) {
	out, err := t.Execute(Split(inputPath).Fields().With(extra))
	if err != nil {
		return "", errors.Errorf("resolving %q for %q: %w", t.String(), inputPath, err)
	}
	return out, nil
}

// 🔄 FromReplacement swaps source for target in inputPath.
//
// A path segment equal to source wins over a dot-delimited token of the file
// name: "locales/en/LC_MESSAGES/x.po" becomes "locales/ja/LC_MESSAGES/x.po"
// and "doc.en.txt" becomes "doc.ja.txt". Matching is exact, "en" never
// matches "en-US".
func FromReplacement(inputPath, source, target string) (string, error) {
	p := Split(inputPath)

	if source != "" {
		if segs := p.Segments(); slices.Contains(segs, source) {
			return join(p.Anchor(), nonEmpty(replaceAll(segs, source, target))), nil
		}

		if tokens := strings.Split(p.Name, "."); slices.Contains(tokens, source) {
			p.Name = strings.Join(replaceAll(tokens, source, target), ".")
			return p.String(), nil
		}
	}

	return "", errors.Errorf("%w: %q is not a segment or name token of %q", ErrTokenNotFound, source, inputPath)
}

func replaceAll(items []string, from, to string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		if s == from {
			s = to
		}
		out[i] = s
	}
	return out
}

func nonEmpty(items []string) []string {
	out := items[:0]
	for _, s := range items {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
