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
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/term"
)

// ConsolePath is the display path of console output.
const ConsolePath = "(console)"

const defaultWidth = 80

// 🔧 ConsoleOptions configures a ConsoleSource.
type ConsoleOptions struct {
	Markdown bool      // render the text as terminal markdown
	Writer   io.Writer // defaults to os.Stdout
}

// 🖥️ ConsoleSource prints the result instead of saving it. It never exists
// and cannot be read back.
type ConsoleSource struct {
	markdown bool
	w        io.Writer
}

func NewConsoleSource(opts ConsoleOptions) *ConsoleSource {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	return &ConsoleSource{markdown: opts.Markdown, w: opts.Writer}
}

func (s *ConsoleSource) Path() string {
	return ConsolePath
}

func (s *ConsoleSource) Readable() bool {
	return false
}

func (s *ConsoleSource) Exists() bool {
	return false
}

func (s *ConsoleSource) Read(ctx context.Context) (string, error) {
	return "", errors.Errorf("%w: %s", ErrNotReadable, ConsolePath)
}

// Markdown reports whether text is rendered as markdown.
func (s *ConsoleSource) Markdown() bool {
	return s.markdown
}

func (s *ConsoleSource) Write(ctx context.Context, text string) error {
	if s.markdown {
		rendered, err := s.render(text)
		if err != nil {
			return err
		}
		_, err = io.WriteString(s.w, rendered)
		return s.wrap(err)
	}
	_, err := fmt.Fprintln(s.w, text)
	return s.wrap(err)
}

// 🌊 WriteStream redraws the accumulated text in a live area on every chunk
// when printing to a terminal. Otherwise plain text is passed through as it
// arrives and markdown is rendered once the stream ends.
func (s *ConsoleSource) WriteStream(ctx context.Context, chunks iter.Seq2[string, error]) error {
	if fd, ok := s.terminal(); ok {
		return s.writeLive(ctx, fd, chunks)
	}

	var acc strings.Builder
	for chunk, err := range chunks {
		if err != nil {
			return err
		}
		if s.markdown {
			acc.WriteString(chunk)
			continue
		}
		if _, err := io.WriteString(s.w, chunk); err != nil {
			return s.wrap(err)
		}
	}

	if s.markdown {
		return s.Write(ctx, acc.String())
	}
	_, err := fmt.Fprintln(s.w)
	return s.wrap(err)
}

func (s *ConsoleSource) writeLive(ctx context.Context, fd int, chunks iter.Seq2[string, error]) (err error) {
	area, err := pterm.DefaultArea.Start()
	if err != nil {
		return errors.Errorf("starting live area: %w", err)
	}
	defer func() {
		if serr := area.Stop(); serr != nil && err == nil {
			err = errors.Errorf("stopping live area: %w", serr)
		}
	}()

	var acc strings.Builder
	for chunk, cerr := range chunks {
		if cerr != nil {
			return cerr
		}
		acc.WriteString(chunk)

		text := acc.String()
		if s.markdown {
			rendered, rerr := s.renderWidth(text, width(fd))
			if rerr != nil {
				zerolog.Ctx(ctx).Debug().Err(rerr).Msg("rendering partial markdown")
			} else {
				text = rendered
			}
		}
		area.Update(text)
	}

	return nil
}

// terminal returns the descriptor of stdout when s writes to it and it is a
// terminal. The live area always draws on stdout.
func (s *ConsoleSource) terminal() (int, bool) {
	f, ok := s.w.(*os.File)
	if !ok || f.Fd() != os.Stdout.Fd() {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

func width(fd int) int {
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func (s *ConsoleSource) render(text string) (string, error) {
	if fd, ok := s.terminal(); ok {
		return s.renderWidth(text, width(fd))
	}
	return s.renderWidth(text, 0)
}

// renderWidth renders markdown for a terminal of the given width, or with
// the plain "notty" style when width is 0.
func (s *ConsoleSource) renderWidth(text string, w int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("notty")}
	if w > 0 {
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle(), glamour.WithWordWrap(w)}
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", errors.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(text)
	if err != nil {
		return "", errors.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func (s *ConsoleSource) wrap(err error) error {
	if err != nil {
		return errors.Errorf("%w: %s: %v", ErrWrite, ConsolePath, err)
	}
	return nil
}
