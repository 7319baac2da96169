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

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ailingo/pkg/config"
	"github.com/walteh/ailingo/pkg/input"
	"github.com/walteh/ailingo/pkg/llm"
	"github.com/walteh/ailingo/pkg/log"
	"github.com/walteh/ailingo/pkg/outpath"
	"github.com/walteh/ailingo/pkg/translator"
)

var ErrInvalidArgs = errors.Base("invalid arguments")

// 🔧 rootOpts holds the command line flags
type rootOpts struct {
	url        string
	edit       bool
	source     string
	targets    []string
	model      string
	output     string
	yes        bool
	request    string
	dryRun     bool
	quiet      bool
	debug      bool
	stream     bool
	configFile string
}

func newRootCmd(e env) *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "ailingo [files...]",
		Short: "Translate or rewrite files with a large language model",
		Long: `ailingo sends files, web pages or editor buffers to a chat completion model
and writes the translation next to the original.

Without --target the input is rewritten in its own language.`,
		Example: `  ailingo README.md -t ja,fr
  ailingo docs/en/**/*.md -s en -t ja
  ailingo notes.txt -o "{parent}/{target}/{name}" -t de
  ailingo -u https://example.com/article -t ja
  ailingo -e -t en`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, e)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.url, "url", "u", "", "URL to translate")
	flags.BoolVarP(&opts.edit, "edit", "e", false, "write the text to translate in $EDITOR")
	flags.StringVarP(&opts.source, "source", "s", "", "source language")
	flags.StringSliceVarP(&opts.targets, "target", "t", nil, "comma separated target languages, the input is rewritten when omitted")
	flags.StringVarP(&opts.model, "model", "m", "", fmt.Sprintf("model to use (env AILINGO_MODEL, default %s)", llm.DefaultModel))
	flags.StringVarP(&opts.output, "output", "o", "", fmt.Sprintf("output path pattern, %q prints to the console (default %s)", config.ConsolePattern, translator.DefaultOutputPattern))
	flags.BoolVarP(&opts.yes, "yes", "y", false, "overwrite existing outputs without asking")
	flags.StringVarP(&opts.request, "request", "r", "", "additional request for the model")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "show what would be written without doing it")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress and status output")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.stream, "stream", false, "write the result as it is generated")
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (default: .ailingo.{yaml,yml,hcl,json} in the working directory)")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (opts *rootOpts) run(cmd *cobra.Command, args []string, e env) error {
	level := zerolog.InfoLevel
	if opts.debug {
		level = zerolog.DebugLevel
	}
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: e.stderr, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
	logger := log.New(e.stderr, zlog).WithQuiet(opts.quiet)

	ctx := zlog.WithContext(cmd.Context())
	ctx = log.NewContext(ctx, logger)

	cfg, err := opts.loadConfig(ctx, e)
	if err != nil {
		return err
	}
	opts.merge(cmd, cfg, e)

	files, err := expandFiles(args)
	if err != nil {
		return err
	}
	if err := opts.validate(files); err != nil {
		return err
	}
	if err := opts.checkPattern(logger); err != nil {
		return err
	}

	plan := translator.Plan{
		Mode:           opts.mode(),
		SourceLanguage: opts.source,
		Targets:        opts.targets,
		Pattern:        opts.output,
		Console:        e.stdout,
	}
	switch plan.Mode {
	case translator.ModeEdit:
		plan.Inputs = []input.Source{input.NewEditorSource(cfg.Editor)}
	case translator.ModeURL:
		plan.Inputs = []input.Source{input.NewURLSource(opts.url, input.URLOptions{
			Quiet:       logger.Quiet(),
			GitHubToken: e.getenv("GITHUB_TOKEN"),
		})}
	default:
		for _, f := range files {
			plan.Inputs = append(plan.Inputs, input.NewFileSource(f))
		}
	}

	units, err := plan.Units()
	if err != nil {
		return err
	}

	zlog.Debug().
		Str("mode", plan.Mode.String()).
		Str("model", opts.model).
		Int("units", len(units)).
		Bool("dry_run", opts.dryRun).
		Msg("starting")

	if !opts.dryRun && len(units) > 1 {
		logger.Header(fmt.Sprintf("%s, %d files", opts.model, len(units)))
	}

	tr := translator.New(e.newEngine(opts.model), e.confirm)
	topts := translator.Options{
		Overwrite: opts.yes,
		DryRun:    opts.dryRun,
		Stream:    opts.stream,
		Request:   plan.Request(opts.request),
	}

	written := 0
	for _, u := range units {
		status, err := tr.Translate(ctx, u, topts)
		if err != nil {
			return err
		}
		if status == log.StatusTranslated || status == log.StatusRewritten {
			written++
		}
	}

	if written > 0 {
		logger.Successf("Done! %d of %d written", written, len(units))
	}
	return nil
}

func (opts *rootOpts) loadConfig(ctx context.Context, e env) (*config.Config, error) {
	path := opts.configFile
	if path == "" {
		wd, err := e.getwd()
		if err != nil {
			return nil, errors.Errorf("getting working directory: %w", err)
		}
		found, ok := config.Find(wd)
		if !ok {
			return &config.Config{}, nil
		}
		path = found
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	log.FromContext(ctx).Infof("using %s (%s)", cfg.Location(), cfg)
	return cfg, nil
}

// merge fills every flag the user did not set from the config, then from
// the environment.
func (opts *rootOpts) merge(cmd *cobra.Command, cfg *config.Config, e env) {
	changed := cmd.Flags().Changed

	if !changed("model") {
		opts.model = firstNonEmpty(cfg.Model, e.getenv("AILINGO_MODEL"), llm.DefaultModel)
	}
	if !changed("source") {
		opts.source = cfg.Source
	}
	if !changed("target") {
		opts.targets = cfg.Targets
	}
	if !changed("output") {
		opts.output = cfg.Output
	}
	if !changed("request") {
		opts.request = cfg.Request
	}
	if !changed("stream") {
		opts.stream = cfg.Stream
	}
	cfg.Editor = firstNonEmpty(cfg.Editor, e.getenv("EDITOR"), input.DefaultEditor)

	for i, t := range opts.targets {
		opts.targets[i] = strings.TrimSpace(t)
	}
}

func (opts *rootOpts) mode() translator.Mode {
	switch {
	case opts.edit:
		return translator.ModeEdit
	case opts.url != "":
		return translator.ModeURL
	default:
		return translator.ModeFile
	}
}

// 🔍 validate rejects flag combinations that have no meaning.
func (opts *rootOpts) validate(files []string) error {
	switch {
	case opts.edit && len(files) > 0:
		return errors.Errorf("%w: file paths cannot be given in edit mode", ErrInvalidArgs)
	case opts.edit && len(opts.targets) > 1:
		return errors.Errorf("%w: edit mode takes a single target language", ErrInvalidArgs)
	case opts.edit && opts.url != "":
		return errors.Errorf("%w: --url and --edit cannot be combined", ErrInvalidArgs)
	case opts.url != "" && len(opts.targets) > 1:
		return errors.Errorf("%w: --url takes a single target language", ErrInvalidArgs)
	case opts.url != "" && len(files) > 0:
		return errors.Errorf("%w: file paths cannot be combined with --url", ErrInvalidArgs)
	case !opts.edit && opts.url == "" && len(files) == 0:
		return errors.Errorf("%w: no input given, pass files, --url or --edit", ErrInvalidArgs)
	}

	for _, t := range opts.targets {
		if t == "" {
			return errors.Errorf("%w: empty target language", ErrInvalidArgs)
		}
	}
	return nil
}

// checkPattern rejects a broken output pattern and warns about language
// fields that would render empty.
func (opts *rootOpts) checkPattern(logger *log.Logger) error {
	if opts.output == "" || opts.output == config.ConsolePattern {
		return nil
	}

	tmpl, err := outpath.Parse(opts.output)
	if err != nil {
		return errors.Errorf("%w: output pattern: %s", ErrInvalidArgs, err.Error())
	}

	for _, name := range tmpl.FieldNames() {
		switch {
		case name == "target" && len(opts.targets) == 0:
			logger.Warningf("output pattern %q uses {target} but no target language is set", opts.output)
		case name == "source" && opts.source == "":
			logger.Warningf("output pattern %q uses {source} but no source language is set", opts.output)
		}
	}
	return nil
}

// 📂 expandFiles resolves glob arguments such as "docs/**/*.md" and checks
// that every file exists.
func expandFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !hasMeta(arg) {
			info, err := os.Stat(arg)
			switch {
			case err != nil:
				return nil, errors.Errorf("%w: %s does not exist", ErrInvalidArgs, arg)
			case info.IsDir():
				return nil, errors.Errorf("%w: %s is a directory", ErrInvalidArgs, arg)
			}
			files = append(files, arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("%w: bad pattern %q: %v", ErrInvalidArgs, arg, err)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("%w: no files match %q", ErrInvalidArgs, arg)
		}
		files = append(files, matches...)
	}
	return files, nil
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
