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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<!DOCTYPE html>
<html><head><title>Guide</title><style>body { color: red }</style><script>var x = 1;</script></head>
<body><h1>Hello   World</h1><p>First <b>bold</b> line.<br>Second line</p><ul><li>one</li><li>two</li></ul><pre>  code
  block</pre><!-- hidden --></body></html>`

func TestExtractText(t *testing.T) {
	text, err := ExtractText(strings.NewReader(testPage))
	require.NoError(t, err)

	want := "Guide\n\nHello World\n\nFirst bold line.\nSecond line\n\none\ntwo\n\n  code\n  block"
	assert.Equal(t, want, text)
}

func TestURLSource(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(testPage))
	})
	mux.HandleFunc("/plain.md", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/markdown")
		_, _ = w.Write([]byte("# Title\n\n<b>kept</b>\n"))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	tests := []struct {
		name     string
		path     string
		want     string
		contains string
		wantErr  error
	}{
		{name: "html_page", path: "/page", contains: "First bold line."},
		{name: "plain_text_verbatim", path: "/plain.md", want: "# Title\n\n<b>kept</b>\n"},
		{name: "not_found", path: "/missing", wantErr: ErrFetch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewURLSource(srv.URL+tt.path, URLOptions{Quiet: true})
			assert.Equal(t, srv.URL+tt.path, src.Path())

			text, err := src.Read(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "404")
				return
			}

			require.NoError(t, err)
			if tt.want != "" {
				assert.Equal(t, tt.want, text)
			}
			if tt.contains != "" {
				assert.Contains(t, text, tt.contains)
				assert.NotContains(t, text, "var x")
			}
		})
	}
}

func TestURLSourceNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := NewURLSource(addr+"/gone", URLOptions{Quiet: true}).Read(context.Background())
	require.ErrorIs(t, err, ErrFetch)
}

func TestParseGitHubBlob(t *testing.T) {
	tests := []struct {
		url    string
		want   githubBlob
		wantOK bool
	}{
		{
			url:    "https://github.com/walteh/ailingo/blob/main/docs/intro.md",
			want:   githubBlob{Owner: "walteh", Repo: "ailingo", Ref: "main", Path: "docs/intro.md"},
			wantOK: true,
		},
		{url: "https://github.com/walteh/ailingo/tree/main/docs"},
		{url: "https://github.com/walteh/ailingo"},
		{url: "https://example.com/walteh/ailingo/blob/main/x.md"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, ok := parseGitHubBlob(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURLSourceGitHubBlob(t *testing.T) {
	var gotAuth, gotRef string
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/docs/contents/guide/intro.md", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRef = r.URL.Query().Get("ref")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"type":"file","name":"intro.md","path":"guide/intro.md","encoding":"base64","content":"aGVsbG8gd29ybGQ="}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	src := NewURLSource("https://github.com/octo/docs/blob/v1.2.0/guide/intro.md", URLOptions{
		Quiet:       true,
		GitHubToken: "secret",
		GitHubAPI:   srv.URL,
	})

	text, err := src.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "v1.2.0", gotRef)
}

func TestURLSourceGitHubError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	src := NewURLSource("https://github.com/octo/docs/blob/main/missing.md", URLOptions{
		Quiet:     true,
		GitHubAPI: srv.URL,
	})

	_, err := src.Read(context.Background())
	require.ErrorIs(t, err, ErrFetch)
}
