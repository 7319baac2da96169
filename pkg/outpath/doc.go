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

/*
Package outpath derives output file paths from input file paths.

	            +--------------+
	            |  input path  |
	            +------+-------+
	                   |
	      +------------+------------+
	      |                         |
	+-----+------+           +------+------+
	|  Pattern   |           | Replacement |
	| {stem}...  |           |  en -> ja   |
	+------------+           +-------------+

🎯 Purpose:
- Formats an output path from a named-placeholder template
- Swaps a language token in a directory segment or file name

📝 Pattern fields:

	drive     volume name ("" on unix)
	root      path separator for absolute paths
	anchor    drive + root
	parents   ancestor directories, nearest first ({parents[1]} = grandparent)
	parent    parents[0], or "." when there is none
	name      file name with all extensions
	suffix    last extension including the dot
	suffixes  all extensions ({suffixes} = ".tar.gz", {suffixes[0]} = ".tar")
	stem      name minus the last extension

Extra fields (usually "source" and "target") are supplied by the caller and
win over the structural fields on collision. Literal braces are written "{{"
and "}}".

Nothing in this package touches the filesystem.

🔍 Example:

	out, err := outpath.FromPattern("docs/en/intro.md", "{parents[1]}/{target}/{name}", map[string]string{
		"target": "ja",
	})
	// out == "docs/ja/intro.md"

	out, err = outpath.FromReplacement("docs/intro.en.md", "en", "ja")
	// out == "docs/intro.ja.md"
*/
package outpath
