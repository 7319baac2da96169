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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Model    string `json:"model"`
	Stream   bool   `json:"stream"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func streamServer(t *testing.T, fragments []string, got *recordedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(got))

		w.Header().Set("Content-Type", "text/event-stream")
		for i, f := range fragments {
			content, err := json.Marshal(f)
			require.NoError(t, err)
			fmt.Fprintf(w, "data: {\"id\":\"c1\",\"object\":\"chat.completion.chunk\",\"created\":%d,\"model\":\"%s\",\"choices\":[{\"index\":0,\"delta\":{\"content\":%s},\"finish_reason\":null}]}\n\n", i, got.Model, content)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
}

func TestOpenAIStream(t *testing.T) {
	var got recordedRequest
	srv := streamServer(t, []string{"Bon", "", "jour", " le monde"}, &got)
	defer srv.Close()

	engine := NewOpenAI(OpenAIOptions{Model: "gpt-4o-mini", APIKey: "test-key", BaseURL: srv.URL})

	var fragments []string
	for f, err := range engine.Stream(context.Background(), []Message{
		{Role: RoleSystem, Content: "translate"},
		{Role: RoleUser, Content: "Hello world"},
	}) {
		require.NoError(t, err)
		fragments = append(fragments, f)
	}

	assert.Equal(t, []string{"Bon", "jour", " le monde"}, fragments)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.True(t, got.Stream)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "translate", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "Hello world", got.Messages[1].Content)
}

func TestOpenAIComplete(t *testing.T) {
	var got recordedRequest
	srv := streamServer(t, []string{"Hallo", " Welt"}, &got)
	defer srv.Close()

	engine := NewOpenAI(OpenAIOptions{APIKey: "test-key", BaseURL: srv.URL})
	text, err := engine.Complete(context.Background(), []Message{{Role: RoleUser, Content: "Hello world"}})
	require.NoError(t, err)
	assert.Equal(t, "Hallo Welt", text)
	assert.Equal(t, DefaultModel, got.Model)
}

func TestOpenAIError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"boom","type":"server_error"}}`)
	}))
	defer srv.Close()

	engine := NewOpenAI(OpenAIOptions{APIKey: "test-key", BaseURL: srv.URL})

	_, err := engine.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "requests must not be retried")
}

func TestOpenAIUnknownRole(t *testing.T) {
	engine := NewOpenAI(OpenAIOptions{APIKey: "test-key", BaseURL: "http://127.0.0.1:0"})

	_, err := engine.Complete(context.Background(), []Message{{Role: "tool", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestCollect(t *testing.T) {
	text, err := Collect(func(yield func(string, error) bool) {
		for _, s := range []string{"a", "b", "c"} {
			if !yield(s, nil) {
				return
			}
		}
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", text)
}
