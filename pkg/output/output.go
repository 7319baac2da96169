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

// Package output provides the destinations a translation writes to.
package output

import (
	"context"
	"iter"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ailingo/pkg/outpath"
)

// 🔌 Source is where the result of a translation unit goes.
type Source interface {
	Path() string
	// Readable reports whether Read can return prior content.
	Readable() bool
	// Exists reports whether something is already there, which makes the
	// caller ask before overwriting it.
	Exists() bool
	Read(ctx context.Context) (string, error)
	// Write replaces the whole content.
	Write(ctx context.Context, text string) error
}

// 🌊 StreamWriter is implemented by sources that can consume text as it is
// produced. The sequence is consumed once, in order; an error it yields
// stops the write and is returned.
type StreamWriter interface {
	WriteStream(ctx context.Context, chunks iter.Seq2[string, error]) error
}

var (
	ErrNotFound    = errors.Base("output not found")
	ErrRead        = errors.Base("reading output")
	ErrWrite       = errors.Base("writing output")
	ErrNotReadable = errors.Base("output is not readable")
)

var (
	_ Source       = (*FileSource)(nil)
	_ StreamWriter = (*FileSource)(nil)
	_ Source       = (*ConsoleSource)(nil)
	_ StreamWriter = (*ConsoleSource)(nil)
)

// 🎯 FromPattern creates a file source at the path pattern resolves to for inputPath.
func FromPattern(inputPath, pattern string, extra map[string]string) (*FileSource, error) {
	path, err := outpath.FromPattern(inputPath, pattern, extra)
	if err != nil {
		return nil, err
	}
	return NewFileSource(path), nil
}

// 🔄 FromReplacement creates a file source at inputPath with source swapped for target.
func FromReplacement(inputPath, source, target string) (*FileSource, error) {
	path, err := outpath.FromReplacement(inputPath, source, target)
	if err != nil {
		return nil, err
	}
	return NewFileSource(path), nil
}
