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

package outpath_test

import (
	"fmt"

	"github.com/walteh/ailingo/pkg/outpath"
)

func ExampleFromPattern() {
	out, err := outpath.FromPattern("docs/en/intro.md", "{parents[1]}/{target}/{name}", map[string]string{
		"target": "ja",
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: docs/ja/intro.md
}

func ExampleFromReplacement() {
	out, err := outpath.FromReplacement("locales/en/LC_MESSAGES/message.po", "en", "ja")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: locales/ja/LC_MESSAGES/message.po
}

func ExampleParse() {
	t, err := outpath.Parse("{parent}/{stem}.{target}{suffixes}")
	if err != nil {
		fmt.Println(err)
		return
	}
	out, err := outpath.Resolve("dist/archive.tar.gz", t, map[string]string{"target": "fr"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: dist/archive.tar.fr.tar.gz
}
