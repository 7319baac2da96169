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
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ailingo/pkg/log"
)

const (
	// DefaultEditor is used when no editor is configured.
	DefaultEditor = "vi"

	// ScratchPlaceholder is the display path of an editor source before it is read.
	ScratchPlaceholder = "(temporary file)"
)

// ✏️ EditorSource lets the user type the text in an external editor.
//
// The editor runs against a scratch file that only exists while Read runs.
type EditorSource struct {
	editor string
	path   string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewEditorSource creates a source that runs editor, which may carry
// arguments such as "code --wait". An empty editor means DefaultEditor.
func NewEditorSource(editor string) *EditorSource {
	if strings.TrimSpace(editor) == "" {
		editor = DefaultEditor
	}
	return &EditorSource{
		editor: editor,
		path:   ScratchPlaceholder,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Path returns ScratchPlaceholder until Read has allocated the scratch file.
func (s *EditorSource) Path() string {
	return s.path
}

func (s *EditorSource) Read(ctx context.Context) (string, error) {
	f, err := os.CreateTemp("", "ailingo-*.txt")
	if err != nil {
		return "", errors.Errorf("creating scratch file: %w", err)
	}
	name := f.Name()
	defer func() {
		if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.FromContext(ctx).Warningf("removing scratch file %s: %v", name, err)
		}
	}()
	if err := f.Close(); err != nil {
		return "", errors.Errorf("closing scratch file: %w", err)
	}
	s.path = name

	if err := s.run(ctx, name); err != nil {
		return "", err
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Errorf("%w: %s: %v", ErrRead, name, err)
	}
	if len(data) == 0 {
		return "", errors.Errorf("%w: the editor left %s empty", ErrNoChanges, name)
	}

	return string(data), nil
}

func (s *EditorSource) run(ctx context.Context, file string) error {
	args := strings.Fields(s.editor)

	zerolog.Ctx(ctx).Debug().Strs("editor", args).Str("file", file).Msg("running editor")

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], file)...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return errors.Errorf("%w: %q could not be started, set $EDITOR to an installed editor", ErrEditorNotFound, args[0])
		}
		return errors.Errorf("running editor %q: %w", s.editor, err)
	}

	return nil
}
