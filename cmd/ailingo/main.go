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
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/walteh/ailingo/pkg/llm"
	"github.com/walteh/ailingo/pkg/log"
	"github.com/walteh/ailingo/pkg/translator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], defaultEnv())
	stop()
	os.Exit(code)
}

// 🌍 env is everything the command takes from the process.
type env struct {
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
	getwd  func() (string, error)

	newEngine func(model string) llm.Engine
	confirm   translator.Confirmer
}

func defaultEnv() env {
	return env{
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
		getwd:  os.Getwd,
		newEngine: func(model string) llm.Engine {
			return llm.NewOpenAI(llm.OpenAIOptions{Model: model})
		},
		confirm: log.InteractiveConfirmer{},
	}
}

// run executes the command line and returns the exit code.
func run(ctx context.Context, args []string, e env) int {
	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		log.New(e.stderr, zerolog.Nop()).Error(err.Error())
		return 1
	}
	return 0
}
