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

// Package prompt builds the chat messages sent to the completion engine.
//
// 📝 Two system prompts exist: "translate" when a target language is known
// and "rewrite" otherwise. Both carry the same hint list (languages, file
// extension or name, the free form request and any previous translation).
package prompt

import (
	"embed"
	"strings"
	"text/template"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ailingo/pkg/llm"
	"github.com/walteh/ailingo/pkg/outpath"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("prompt").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl"),
)

const (
	translateTemplate = "translate.tmpl"
	rewriteTemplate   = "rewrite.tmpl"
	userTemplate      = "user.tmpl"
)

// Params is everything a prompt is built from.
type Params struct {
	InputPath      string
	InputText      string
	SourceLanguage string
	TargetLanguage string
	Request        string
	// CurrentText is the previous content of the output, if any.
	CurrentText string
}

type data struct {
	Params
	Extension string
	FileName  string
}

// 🏗️ Build renders the system and user messages for one unit.
func Build(p Params) ([]llm.Message, error) {
	parts := outpath.Split(p.InputPath)
	d := data{
		Params:    p,
		Extension: strings.Join(parts.Suffixes(), ""),
		FileName:  parts.Name,
	}

	name := rewriteTemplate
	if p.TargetLanguage != "" {
		name = translateTemplate
	}

	system, err := render(name, d)
	if err != nil {
		return nil, err
	}
	user, err := render(userTemplate, d)
	if err != nil {
		return nil, err
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}, nil
}

func render(name string, d data) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, d); err != nil {
		return "", errors.Errorf("rendering %s: %w", name, err)
	}
	return b.String(), nil
}
