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
	"net/url"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/oauth2"
)

// 🐙 githubBlob is a file addressed by a github.com/<owner>/<repo>/blob/<ref>/<path> url
type githubBlob struct {
	Owner string
	Repo  string
	Ref   string
	Path  string
}

// parseGitHubBlob recognizes github.com file urls. Refs containing slashes
// are not supported, the first segment after "blob" is the ref.
func parseGitHubBlob(raw string) (githubBlob, bool) {
	u, err := url.Parse(raw)
	if err != nil || (u.Host != "github.com" && u.Host != "www.github.com") {
		return githubBlob{}, false
	}

	parts := strings.SplitN(strings.Trim(u.Path, "/"), "/", 5)
	if len(parts) != 5 || parts[2] != "blob" || parts[4] == "" {
		return githubBlob{}, false
	}

	return githubBlob{
		Owner: parts[0],
		Repo:  parts[1],
		Ref:   parts[3],
		Path:  parts[4],
	}, true
}

func (s *URLSource) githubClient(ctx context.Context) (*github.Client, error) {
	httpClient := s.opts.Client
	if s.opts.GitHubToken != "" {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, s.opts.Client)
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: s.opts.GitHubToken})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(httpClient)
	if s.opts.GitHubAPI != "" {
		base := s.opts.GitHubAPI
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, errors.Errorf("parsing github api url: %w", err)
		}
		client.BaseURL = u
	}

	return client, nil
}

func (s *URLSource) readGitHub(ctx context.Context, blob githubBlob) (string, error) {
	zerolog.Ctx(ctx).Debug().
		Str("owner", blob.Owner).
		Str("repo", blob.Repo).
		Str("ref", blob.Ref).
		Str("path", blob.Path).
		Msg("fetching github file")

	client, err := s.githubClient(ctx)
	if err != nil {
		return "", errors.Errorf("%w: %s: %v", ErrFetch, s.url, err)
	}

	content, _, _, err := client.Repositories.GetContents(ctx, blob.Owner, blob.Repo, blob.Path, &github.RepositoryContentGetOptions{
		Ref: blob.Ref,
	})
	if err != nil {
		return "", errors.Errorf("%w: %s: %v", ErrFetch, s.url, err)
	}
	if content == nil {
		return "", errors.Errorf("%w: %s is a directory", ErrFetch, s.url)
	}

	data, err := content.GetContent()
	if err != nil {
		return "", errors.Errorf("%w: %s: decoding content: %v", ErrFetch, s.url, err)
	}

	return data, nil
}
