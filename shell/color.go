/*
Copyright © 2020 Stopwatch Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package shell

import (
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/core"
	"github.com/fatih/color"
)

const colorEnvVar = "COLOR"

var lookupEnv = os.LookupEnv

// DisableColorBasedOnEnvVar follows the COLOR environment variable
// when it is set and the terminal detection of the color library
// otherwise.
func DisableColorBasedOnEnvVar() {
	value, exists := lookupEnv(colorEnvVar)
	if !exists {
		core.DisableColor = color.NoColor
		return
	}

	switch strings.ToLower(value) {
	case "false":
		DisableColor()
	case "true":
		core.DisableColor = false
		color.NoColor = false
	}
}

// DisableColor turns off colors for messages and prompts.
func DisableColor() {
	core.DisableColor = true
	color.NoColor = true
}
