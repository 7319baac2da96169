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

// Package input provides the sources a translation reads its text from.
package input

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// 🔌 Source is where the text of a translation unit comes from. Read is
// called once, on demand, and Path is only for display.
type Source interface {
	Path() string
	Read(ctx context.Context) (string, error)
}

var (
	ErrNotFound       = errors.Base("input not found")
	ErrRead           = errors.Base("reading input")
	ErrFetch          = errors.Base("fetching url")
	ErrEditorNotFound = errors.Base("editor not found")
	ErrNoChanges      = errors.Base("no changes made")
)

var (
	_ Source = (*FileSource)(nil)
	_ Source = (*EditorSource)(nil)
	_ Source = (*URLSource)(nil)
)
