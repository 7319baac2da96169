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
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ailingo/pkg/log"
)

// 🔧 URLOptions configures a URLSource.
type URLOptions struct {
	Quiet       bool         // no progress spinner
	Client      *http.Client // defaults to http.DefaultClient
	GitHubToken string       // optional token for github.com blob urls
	GitHubAPI   string       // GitHub API base url, for enterprise servers and tests
}

// 🌐 URLSource downloads a web page and returns its rendered text.
//
// github.com blob urls are fetched as the raw file through the GitHub API
// instead of the HTML page around it.
type URLSource struct {
	url  string
	opts URLOptions
}

// NewURLSource creates a source for rawURL. Nothing is fetched yet.
func NewURLSource(rawURL string, opts URLOptions) *URLSource {
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	return &URLSource{url: rawURL, opts: opts}
}

func (s *URLSource) Path() string {
	return s.url
}

func (s *URLSource) Read(ctx context.Context) (string, error) {
	if !s.opts.Quiet {
		stop := log.FromContext(ctx).Spin("Downloading... " + s.url)
		defer stop()
	}

	if blob, ok := parseGitHubBlob(s.url); ok {
		return s.readGitHub(ctx, blob)
	}

	return s.readPage(ctx)
}

func (s *URLSource) readPage(ctx context.Context) (string, error) {
	zerolog.Ctx(ctx).Debug().Str("url", s.url).Msg("fetching url")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", errors.Errorf("%w: %s: %v", ErrFetch, s.url, err)
	}
	req.Header.Set("User-Agent", "ailingo")

	resp, err := s.opts.Client.Do(req)
	if err != nil {
		return "", errors.Errorf("%w: %s: %v", ErrFetch, s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Errorf("%w: %s: unexpected status %s", ErrFetch, s.url, resp.Status)
	}

	if isHTML(resp.Header.Get("Content-Type")) {
		text, err := ExtractText(resp.Body)
		if err != nil {
			return "", errors.Errorf("%w: %s: %v", ErrFetch, s.url, err)
		}
		return text, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Errorf("%w: %s: reading body: %v", ErrFetch, s.url, err)
	}
	return string(body), nil
}

// isHTML reports whether a Content-Type header describes an HTML document.
// A missing header is treated as HTML.
func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "html")
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
