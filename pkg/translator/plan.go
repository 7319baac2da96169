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

// Package translator turns inputs into translation units and runs them
// against a completion engine.
package translator

import (
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ailingo/pkg/input"
	"github.com/walteh/ailingo/pkg/outpath"
	"github.com/walteh/ailingo/pkg/output"
)

// Mode says where inputs come from.
type Mode int

const (
	ModeFile Mode = iota
	ModeURL
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeURL:
		return "url"
	case ModeEdit:
		return "edit"
	default:
		return "file"
	}
}

const (
	// DefaultOutputPattern places the translation next to its input.
	DefaultOutputPattern = "{parent}/{stem}.{target}{suffix}"
	// ConsolePattern sends every unit to the console.
	ConsolePattern = "-"
	// DefaultURLRequest is added to the prompt for web pages when the user
	// gave no request of their own.
	DefaultURLRequest = "Original text is extracted from a website. Convert it to markdown."
)

// 📦 Unit is one input translated into one target language. An empty
// TargetLanguage means the input is rewritten in its own language.
type Unit struct {
	Input          input.Source
	Output         output.Source
	SourceLanguage string
	TargetLanguage string
}

// 🗺️ Plan describes a whole invocation.
type Plan struct {
	Mode           Mode
	Inputs         []input.Source
	SourceLanguage string
	Targets        []string
	// Pattern is the user supplied output pattern, empty for the defaults.
	Pattern string
	// Console receives console output, os.Stdout when nil.
	Console io.Writer
}

// Units expands the plan input by input, then target by target.
func (p Plan) Units() ([]Unit, error) {
	targets := p.Targets
	if len(targets) == 0 {
		targets = []string{""}
	}

	units := make([]Unit, 0, len(p.Inputs)*len(targets))
	for _, in := range p.Inputs {
		for _, target := range targets {
			out, err := p.SelectOutput(in, target)
			if err != nil {
				return nil, err
			}
			units = append(units, Unit{
				Input:          in,
				Output:         out,
				SourceLanguage: p.SourceLanguage,
				TargetLanguage: target,
			})
		}
	}
	return units, nil
}

// 🎯 SelectOutput picks the destination for in and target. The first rule
// that applies wins:
//
//  1. pattern "-" writes to the console
//  2. an explicit pattern is resolved against the input path
//  3. urls and editor buffers write to the console
//  4. with both languages, the source token in the path is swapped for the
//     target; inputs without the token fall through to rule 5
//  5. with a target, DefaultOutputPattern is used
//  6. otherwise the input is rewritten in place
func (p Plan) SelectOutput(in input.Source, target string) (output.Source, error) {
	path := in.Path()
	extra := map[string]string{"source": p.SourceLanguage, "target": target}

	switch {
	case p.Pattern == ConsolePattern:
		return p.console(path), nil
	case p.Pattern != "":
		return fileOutput(output.FromPattern(path, p.Pattern, extra))
	case p.Mode == ModeURL || p.Mode == ModeEdit:
		return p.console(path), nil
	}

	if target == "" {
		return output.NewFileSource(path), nil
	}

	if p.SourceLanguage != "" {
		out, err := output.FromReplacement(path, p.SourceLanguage, target)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, outpath.ErrTokenNotFound) {
			return nil, err
		}
	}

	return fileOutput(output.FromPattern(path, DefaultOutputPattern, extra))
}

// fileOutput keeps a nil *FileSource from becoming a non-nil Source.
func fileOutput(out *output.FileSource, err error) (output.Source, error) {
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p Plan) console(inputPath string) *output.ConsoleSource {
	return output.NewConsoleSource(output.ConsoleOptions{
		Markdown: p.Mode == ModeURL || strings.HasSuffix(inputPath, ".md"),
		Writer:   p.Console,
	})
}

// Request returns the request sent with every unit of the plan.
func (p Plan) Request(request string) string {
	if request == "" && p.Mode == ModeURL {
		return DefaultURLRequest
	}
	return request
}
