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

package output

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func chunksOf(parts ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, p := range parts {
			if !yield(p, nil) {
				return
			}
		}
	}
}

func TestFileSourceExists(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "test.txt")
	require.NoError(t, os.WriteFile(existing, nil, 0o644))

	assert.True(t, NewFileSource(existing).Exists())
	assert.True(t, NewFileSource(existing).Readable())

	missing := NewFileSource(filepath.Join(dir, "test2.txt"))
	assert.False(t, missing.Exists())
	assert.False(t, missing.Readable())

	_, err := missing.Read(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileSourceWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.txt")
	src := NewFileSource(path)
	ctx := context.Background()

	require.NoError(t, src.Write(ctx, "Hello, world!"))
	got, err := src.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", got)

	require.NoError(t, src.Write(ctx, "short"))
	got, err = src.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "short", got, "write should replace the whole file")
}

func TestFileSourceWriteStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "stream.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("previous content that is longer"), 0o644))

	src := NewFileSource(path)
	require.NoError(t, src.WriteStream(context.Background(), chunksOf("# Ti", "tle\n", "", "body")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Title\nbody", string(data))
}

func TestFileSourceWriteStreamObservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream.txt")
	src := NewFileSource(path)

	seen := 0
	chunks := func(yield func(string, error) bool) {
		for _, c := range []string{"a", "b", "c"} {
			// everything yielded so far must already be on disk
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Len(t, data, seen)
			seen++
			if !yield(c, nil) {
				return
			}
		}
	}

	require.NoError(t, src.WriteStream(context.Background(), chunks))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}

func TestFileSourceWriteStreamError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream.txt")
	boom := errors.New("stream broke")

	chunks := func(yield func(string, error) bool) {
		if !yield("partial", nil) {
			return
		}
		yield("", boom)
	}

	err := NewFileSource(path).WriteStream(context.Background(), chunks)
	require.ErrorIs(t, err, boom)
}

func TestFromPattern(t *testing.T) {
	src, err := FromPattern("dir/test.txt", "{parent}/{stem}.translated{suffix}", nil)
	require.NoError(t, err)
	assert.Equal(t, "dir/test.translated.txt", src.Path())

	src, err = FromPattern("/path/to/en/my_document.txt", "{parents[1]}/{target}/{name}", map[string]string{"target": "ja"})
	require.NoError(t, err)
	assert.Equal(t, "/path/to/ja/my_document.txt", src.Path())
}

func TestFromReplacement(t *testing.T) {
	src, err := FromReplacement("test/document.en.txt", "en", "ja")
	require.NoError(t, err)
	assert.Equal(t, "test/document.ja.txt", src.Path())

	src, err = FromReplacement("locales/en/LC_MESSAGES/message.po", "en", "ja")
	require.NoError(t, err)
	assert.Equal(t, "locales/ja/LC_MESSAGES/message.po", src.Path())

	_, err = FromReplacement("test/document.txt", "en", "ja")
	require.Error(t, err)

	_, err = FromReplacement("test/en-US/document.txt", "en", "ja")
	require.Error(t, err)
}
