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
Package config loads the project defaults for ailingo.

🎯 Purpose:
- Finds .ailingo.yaml, .ailingo.yml, .ailingo.hcl or .ailingo.json
- Decodes the file by extension
- Validates and normalizes the values

🔄 Flow:
1. Find looks for the default names in a directory
2. Load decodes the file, rejecting unknown fields
3. Validate trims values and checks the output pattern

📝 Formats:

	# .ailingo.yaml
	model: gpt-4o-mini
	source: en
	targets: [ja, fr]
	output: "{parents[1]}/{target}/{name}"

	# .ailingo.hcl
	source  = "en"
	targets = ["ja", "fr"]
	editor  = env.EDITOR

HCL files can read the process environment through the env map. Command line
flags always win over the file.
*/
package config
