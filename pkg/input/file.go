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

package input

import (
	"context"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📄 FileSource reads a text file.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the file at path. Nothing is read yet.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Read(ctx context.Context) (string, error) {
	zerolog.Ctx(ctx).Debug().Str("path", s.path).Msg("reading input file")

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return "", errors.Errorf("%w: %s: %v", ErrRead, s.path, err)
	}

	if !utf8.Valid(data) {
		return "", errors.Errorf("%w: %s is not valid UTF-8 text", ErrRead, s.path)
	}

	return string(data), nil
}
