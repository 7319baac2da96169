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

package config

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ailingo/pkg/outpath"
)

// ConsolePattern is the output pattern that prints to the console.
const ConsolePattern = "-"

// 📚 Config holds the defaults a project can pin for ailingo. Command line
// flags override every field.
type Config struct {
	Model   string   `json:"model,omitempty" yaml:"model,omitempty" hcl:"model,optional"`
	Output  string   `json:"output,omitempty" yaml:"output,omitempty" hcl:"output,optional"`
	Source  string   `json:"source,omitempty" yaml:"source,omitempty" hcl:"source,optional"`
	Targets []string `json:"targets,omitempty" yaml:"targets,omitempty" hcl:"targets,optional"`
	Request string   `json:"request,omitempty" yaml:"request,omitempty" hcl:"request,optional"`
	Editor  string   `json:"editor,omitempty" yaml:"editor,omitempty" hcl:"editor,optional"`
	Stream  bool     `json:"stream,omitempty" yaml:"stream,omitempty" hcl:"stream,optional"`

	location string
}

// Location returns the file the config was loaded from.
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate checks the config and normalizes its values.
func (cfg *Config) Validate() error {
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.Source = strings.TrimSpace(cfg.Source)

	for i, t := range cfg.Targets {
		t = strings.TrimSpace(t)
		if t == "" {
			return errors.Errorf("targets[%d] is empty", i)
		}
		if strings.Contains(t, ",") {
			return errors.Errorf("targets[%d] %q must be a single language, use a list", i, t)
		}
		cfg.Targets[i] = t
	}

	if cfg.Output != "" && cfg.Output != ConsolePattern {
		if _, err := outpath.Parse(cfg.Output); err != nil {
			return errors.Errorf("output: %w", err)
		}
	}

	return nil
}

// 📝 String returns a short description of the config
func (cfg *Config) String() string {
	model := cfg.Model
	if model == "" {
		model = "default model"
	}
	targets := strings.Join(cfg.Targets, ",")
	if targets == "" {
		targets = "rewrite"
	}
	return fmt.Sprintf("%s: %s -> %s", model, cfg.Source, targets)
}
