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

package log

import (
	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// 🤔 ConfirmFunc answers a yes/no question with a plain function.
type ConfirmFunc func(question string) (bool, error)

func (f ConfirmFunc) Confirm(question string) (bool, error) {
	return f(question)
}

// 🖥️ InteractiveConfirmer asks on the terminal, defaulting to yes.
type InteractiveConfirmer struct{}

func (InteractiveConfirmer) Confirm(question string) (bool, error) {
	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(true).
		Show(question)
	if err != nil {
		return false, errors.Errorf("asking for confirmation: %w", err)
	}
	return ok, nil
}
