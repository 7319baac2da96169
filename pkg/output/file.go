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

package output

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📄 FileSource writes to a file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a source for path. Nothing is touched yet.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Path() string {
	return s.path
}

// Readable is the same as Exists, there is nothing to read otherwise.
func (s *FileSource) Readable() bool {
	return s.Exists()
}

func (s *FileSource) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func (s *FileSource) Read(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return "", errors.Errorf("%w: %s: %v", ErrRead, s.path, err)
	}
	return string(data), nil
}

func (s *FileSource) Write(ctx context.Context, text string) error {
	zerolog.Ctx(ctx).Debug().Str("path", s.path).Int("bytes", len(text)).Msg("writing output file")

	if err := s.mkdir(); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(text), 0o644); err != nil {
		return errors.Errorf("%w: %s: %v", ErrWrite, s.path, err)
	}
	return nil
}

// 🌊 WriteStream opens the file once and appends chunks as they arrive.
func (s *FileSource) WriteStream(ctx context.Context, chunks iter.Seq2[string, error]) (err error) {
	zerolog.Ctx(ctx).Debug().Str("path", s.path).Msg("streaming output file")

	if err := s.mkdir(); err != nil {
		return err
	}

	f, err := os.Create(s.path)
	if err != nil {
		return errors.Errorf("%w: %s: %v", ErrWrite, s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Errorf("%w: closing %s: %v", ErrWrite, s.path, cerr)
		}
	}()

	for chunk, cerr := range chunks {
		if cerr != nil {
			return cerr
		}
		if _, err := f.WriteString(chunk); err != nil {
			return errors.Errorf("%w: %s: %v", ErrWrite, s.path, err)
		}
	}

	return nil
}

func (s *FileSource) mkdir() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Errorf("%w: creating directory for %s: %v", ErrWrite, s.path, err)
	}
	return nil
}
