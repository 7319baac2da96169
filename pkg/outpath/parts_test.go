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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantParents  []string
		wantParent   string
		wantName     string
		wantStem     string
		wantSuffix   string
		wantSuffixes []string
		wantString   string
	}{
		{
			name:        "relative_file",
			input:       "dir/test.txt",
			wantParents: []string{"dir", "."},
			wantParent:  "dir",
			wantName:    "test.txt",
			wantStem:    "test",
			wantSuffix:  ".txt",
			wantSuffixes: []string{
				".txt",
			},
			wantString: "dir/test.txt",
		},
		{
			name:         "absolute_file",
			input:        "/path/to/en/my_document.txt",
			wantParents:  []string{"/path/to/en", "/path/to", "/path", "/"},
			wantParent:   "/path/to/en",
			wantName:     "my_document.txt",
			wantStem:     "my_document",
			wantSuffix:   ".txt",
			wantSuffixes: []string{".txt"},
			wantString:   "/path/to/en/my_document.txt",
		},
		{
			name:         "double_extension",
			input:        "archive.tar.gz",
			wantParents:  []string{"."},
			wantParent:   ".",
			wantName:     "archive.tar.gz",
			wantStem:     "archive.tar",
			wantSuffix:   ".gz",
			wantSuffixes: []string{".tar", ".gz"},
			wantString:   "archive.tar.gz",
		},
		{
			name:         "dotfile",
			input:        "home/.bashrc",
			wantParents:  []string{"home", "."},
			wantParent:   "home",
			wantName:     ".bashrc",
			wantStem:     ".bashrc",
			wantSuffix:   "",
			wantSuffixes: []string{},
			wantString:   "home/.bashrc",
		},
		{
			name:         "trailing_dot",
			input:        "notes.",
			wantParents:  []string{"."},
			wantParent:   ".",
			wantName:     "notes.",
			wantStem:     "notes.",
			wantSuffix:   "",
			wantSuffixes: nil,
			wantString:   "notes.",
		},
		{
			name:         "redundant_separators_and_dots",
			input:        "./a//./b/c.md/",
			wantParents:  []string{"a/b", "a", "."},
			wantParent:   "a/b",
			wantName:     "c.md",
			wantStem:     "c",
			wantSuffix:   ".md",
			wantSuffixes: []string{".md"},
			wantString:   "a/b/c.md",
		},
		{
			name:         "parent_references_are_kept",
			input:        "../x.txt",
			wantParents:  []string{"..", "."},
			wantParent:   "..",
			wantName:     "x.txt",
			wantStem:     "x",
			wantSuffix:   ".txt",
			wantSuffixes: []string{".txt"},
			wantString:   "../x.txt",
		},
		{
			name:         "root_only",
			input:        "/",
			wantParents:  nil,
			wantParent:   "/",
			wantName:     "",
			wantStem:     "",
			wantSuffix:   "",
			wantSuffixes: nil,
			wantString:   "/",
		},
		{
			name:         "empty",
			input:        "",
			wantParents:  nil,
			wantParent:   ".",
			wantString:   ".",
			wantSuffixes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Split(tt.input)
			assert.Equal(t, tt.wantParents, p.Parents(), "parents")
			assert.Equal(t, tt.wantParent, p.Parent(), "parent")
			assert.Equal(t, tt.wantName, p.Name, "name")
			assert.Equal(t, tt.wantStem, p.Stem(), "stem")
			assert.Equal(t, tt.wantSuffix, p.Suffix(), "suffix")
			if len(tt.wantSuffixes) == 0 {
				assert.Empty(t, p.Suffixes(), "suffixes")
			} else {
				assert.Equal(t, tt.wantSuffixes, p.Suffixes(), "suffixes")
			}
			assert.Equal(t, tt.wantString, p.String(), "string")
		})
	}
}
