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

package outpath

import "gitlab.com/tozd/go/errors"

var (
	// ErrTemplateField is returned when a template references a field that
	// is not available or uses it in a way its kind does not support.
	ErrTemplateField = errors.Base("template field error")

	// ErrMalformedTemplate is returned for unbalanced braces and bad index syntax.
	ErrMalformedTemplate = errors.Base("malformed template")

	// ErrIndexOutOfRange is returned when an index goes past the end of a sequence field.
	ErrIndexOutOfRange = errors.Base("index out of range")

	// ErrTokenNotFound is returned by FromReplacement when the source token
	// is neither a path segment nor a dot-delimited token of the file name.
	ErrTokenNotFound = errors.Base("token not found")
)
