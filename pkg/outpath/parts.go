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
	"os"
	"path/filepath"
	"strings"
)

// 📦 Parts is the structural decomposition of a path.
//
// Empty and "." segments are dropped while ".." is kept, so "a//./b" and
// "a/b" decompose the same way.
type Parts struct {
	Drive string   // volume name, "C:" on windows
	Root  string   // separator when the path is absolute
	Dirs  []string // directory segments, outermost first
	Name  string   // final segment
}

// 🔍 Split decomposes p without touching the filesystem.
func Split(p string) Parts {
	drive := filepath.VolumeName(p)
	rest := p[len(drive):]

	var root string
	if rest != "" && os.IsPathSeparator(rest[0]) {
		root = string(filepath.Separator)
	}

	segs := segments(rest)
	if len(segs) == 0 {
		return Parts{Drive: drive, Root: root}
	}

	return Parts{
		Drive: drive,
		Root:  root,
		Dirs:  segs[:len(segs)-1],
		Name:  segs[len(segs)-1],
	}
}

func segments(p string) []string {
	fields := strings.FieldsFunc(p, func(r rune) bool {
		return r < 0x80 && os.IsPathSeparator(uint8(r))
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "." {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Anchor returns the drive followed by the root.
func (p Parts) Anchor() string {
	return p.Drive + p.Root
}

// Segments returns the directory segments followed by the name.
func (p Parts) Segments() []string {
	if p.Name == "" {
		return nil
	}
	segs := make([]string, 0, len(p.Dirs)+1)
	segs = append(segs, p.Dirs...)
	return append(segs, p.Name)
}

// 👪 Parents returns every ancestor directory, nearest first. A relative path
// ends with ".", an absolute one with its anchor.
func (p Parts) Parents() []string {
	if p.Name == "" {
		return nil
	}
	parents := make([]string, 0, len(p.Dirs)+1)
	for i := len(p.Dirs); i >= 0; i-- {
		parents = append(parents, join(p.Anchor(), p.Dirs[:i]))
	}
	return parents
}

// Parent returns the immediate parent directory.
func (p Parts) Parent() string {
	if parents := p.Parents(); len(parents) > 0 {
		return parents[0]
	}
	if a := p.Anchor(); a != "" {
		return a
	}
	return "."
}

// Suffix returns the final extension including its dot. Names with a single
// leading dot and names ending in a dot have no suffix.
func (p Parts) Suffix() string {
	i := strings.LastIndexByte(p.Name, '.')
	if 0 < i && i < len(p.Name)-1 {
		return p.Name[i:]
	}
	return ""
}

// Suffixes returns every extension of the name in order, ".tar.gz" gives
// [".tar", ".gz"].
func (p Parts) Suffixes() []string {
	if p.Name == "" || strings.HasSuffix(p.Name, ".") {
		return nil
	}
	tokens := strings.Split(strings.TrimLeft(p.Name, "."), ".")
	suffixes := make([]string, 0, len(tokens)-1)
	for _, t := range tokens[1:] {
		suffixes = append(suffixes, "."+t)
	}
	return suffixes
}

// Stem returns the name without its final suffix.
func (p Parts) Stem() string {
	return strings.TrimSuffix(p.Name, p.Suffix())
}

// String rebuilds the normalized path.
func (p Parts) String() string {
	return join(p.Anchor(), p.Segments())
}

// 🏷️ Fields returns the structural template fields of the path.
func (p Parts) Fields() Fields {
	return Fields{
		"drive":    Text(p.Drive),
		"root":     Text(p.Root),
		"anchor":   Text(p.Anchor()),
		"parents":  List(p.Parents()...),
		"parent":   Text(p.Parent()),
		"name":     Text(p.Name),
		"suffix":   Text(p.Suffix()),
		"suffixes": Joined(p.Suffixes()...),
		"stem":     Text(p.Stem()),
	}
}

func join(anchor string, segs []string) string {
	s := anchor + strings.Join(segs, string(filepath.Separator))
	if s == "" {
		return "."
	}
	return s
}
