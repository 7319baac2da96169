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

package llm

import (
	"context"
	"iter"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o"

// 🔧 OpenAIOptions configures an OpenAI engine. Empty fields fall back to
// OPENAI_API_KEY and OPENAI_BASE_URL.
type OpenAIOptions struct {
	Model      string
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// 🤖 OpenAI is an Engine backed by an OpenAI compatible chat completions
// endpoint. Requests are never retried.
type OpenAI struct {
	client openai.Client
	model  string
}

var _ Engine = (*OpenAI)(nil)

func NewOpenAI(opts OpenAIOptions) *OpenAI {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}

	reqOpts := []option.RequestOption{option.WithMaxRetries(0)}
	if opts.APIKey != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(opts.APIKey))
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	return &OpenAI{
		client: openai.NewClient(reqOpts...),
		model:  opts.Model,
	}
}

// Complete collects the streamed completion.
func (o *OpenAI) Complete(ctx context.Context, messages []Message) (string, error) {
	return Collect(o.Stream(ctx, messages))
}

// 🌊 Stream yields content deltas of the first choice as they arrive.
func (o *OpenAI) Stream(ctx context.Context, messages []Message) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		params, err := o.params(messages)
		if err != nil {
			yield("", err)
			return
		}

		zerolog.Ctx(ctx).Debug().Str("model", o.model).Int("messages", len(messages)).Msg("requesting completion")

		stream := o.client.Chat.Completions.NewStreaming(ctx, params)
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
				continue
			}
			if !yield(chunk.Choices[0].Delta.Content, nil) {
				return
			}
		}

		if err := stream.Err(); err != nil {
			yield("", errors.Errorf("streaming completion from %s: %w", o.model, err))
		}
	}
}

func (o *OpenAI) params(messages []Message) (openai.ChatCompletionNewParams, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for i, m := range messages {
		switch m.Role {
		case RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case RoleUser:
			msgs = append(msgs, openai.UserMessage(m.Content))
		case RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			return openai.ChatCompletionNewParams{}, errors.Errorf("message %d: unknown role %q", i, m.Role)
		}
	}

	return openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.model),
		Messages: msgs,
	}, nil
}
