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

package translator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ailingo/pkg/llm"
	"github.com/walteh/ailingo/pkg/log"
	"github.com/walteh/ailingo/pkg/output"
	"github.com/walteh/ailingo/pkg/prompt"
)

// 🤔 Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// 🔧 Options apply to every unit of a run.
type Options struct {
	Overwrite bool   // never ask before replacing an existing output
	DryRun    bool   // report the unit without reading or writing anything
	Stream    bool   // write the completion as it arrives
	Request   string // free form instructions added to the prompt
}

// 🎯 Translator runs units one at a time.
type Translator struct {
	engine  llm.Engine
	confirm Confirmer
}

func New(engine llm.Engine, confirm Confirmer) *Translator {
	return &Translator{engine: engine, confirm: confirm}
}

// 🔄 Translate reads the unit's input, asks the engine for the result and
// writes it to the unit's output. The returned status says what happened to
// the unit.
//
// An existing output is only replaced after confirmation unless
// opts.Overwrite is set. When the output can be read back and is not the
// input itself, its content goes into the prompt as the previous
// translation.
func (t *Translator) Translate(ctx context.Context, u Unit, opts Options) (log.Status, error) {
	logger := log.FromContext(ctx)
	op := log.UnitOperation{
		Input:  u.Input.Path(),
		Output: u.Output.Path(),
		Target: u.TargetLanguage,
	}

	if opts.DryRun {
		op.Status = log.StatusDryRun
		logger.LogUnit(ctx, op)
		return op.Status, nil
	}

	var current string
	if u.Output.Exists() {
		if !opts.Overwrite {
			ok, err := t.confirm.Confirm(fmt.Sprintf("%s already exists. Do you want to overwrite?", u.Output.Path()))
			if err != nil {
				return "", err
			}
			if !ok {
				op.Status = log.StatusSkipped
				logger.LogUnit(ctx, op)
				return op.Status, nil
			}
		}
		if u.Output.Readable() && u.Output.Path() != u.Input.Path() {
			text, err := u.Output.Read(ctx)
			if err != nil {
				return "", err
			}
			current = text
		}
	}

	text, err := u.Input.Read(ctx)
	if err != nil {
		return "", err
	}
	// editor buffers only get their path once read
	op.Input = u.Input.Path()

	messages, err := prompt.Build(prompt.Params{
		InputPath:      u.Input.Path(),
		InputText:      text,
		SourceLanguage: u.SourceLanguage,
		TargetLanguage: u.TargetLanguage,
		Request:        opts.Request,
		CurrentText:    current,
	})
	if err != nil {
		return "", err
	}

	zerolog.Ctx(ctx).Debug().
		Str("input", op.Input).
		Str("output", op.Output).
		Int("system_bytes", len(messages[0].Content)).
		Int("user_bytes", len(messages[1].Content)).
		Bool("previous", current != "").
		Msg("built prompt")

	if err := t.write(ctx, u.Output, messages, opts.Stream); err != nil {
		return "", errors.Errorf("translating %s to %s: %w", op.Input, op.Output, err)
	}

	op.Status = log.StatusTranslated
	if u.TargetLanguage == "" {
		op.Status = log.StatusRewritten
	}
	logger.LogUnit(ctx, op)
	return op.Status, nil
}

func (t *Translator) write(ctx context.Context, out output.Source, messages []llm.Message, stream bool) error {
	logger := log.FromContext(ctx)
	_, toConsole := out.(*output.ConsoleSource)

	if sw, ok := out.(output.StreamWriter); ok && stream {
		stop := func() {}
		if !toConsole {
			stop = logger.Spin("Translating... " + out.Path())
		}
		defer stop()
		return sw.WriteStream(ctx, t.engine.Stream(ctx, messages))
	}

	stop := logger.Spin("Translating... " + out.Path())
	result, err := t.engine.Complete(ctx, messages)
	stop()
	if err != nil {
		return err
	}
	return out.Write(ctx, result)
}
