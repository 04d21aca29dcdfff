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
	"context"
	"time"
)

// Menu actions. The numbers are what the user types.
const (
	ActionStart = iota + 1
	ActionPause
	ActionStop
	ActionReset
	ActionDisplay
	ActionSetInterval
	ActionLap
	ActionDisplayLaps
	ActionHelp
	ActionExit
)

// Stopwatch is the set of operations the menu drives.
// `core.Stopwatch` is the implementation used by the CLI.
type Stopwatch interface {
	Start() (bool, error)
	Pause() (time.Duration, error)
	Stop() (time.Duration, error)
	Reset(confirmed bool) bool
	Display()
	Lap() (int, time.Duration, error)
	Laps() []time.Duration
	SetDisplayInterval(seconds float64) error
}

// Validator checks an answer before a Prompter accepts it.
// Returning an error makes the Prompter ask again.
type Validator func(interface{}) error

// Prompter asks the user questions. It is implemented on top of
// survey when stdin is a terminal and by `LinePrompter` otherwise.
type Prompter interface {
	Get(message, help string, validator Validator) (string, error)
	Confirm(message, help string) (bool, error)
}

// Runner is anything `RunCLIInstance` can drive until completion.
type Runner interface {
	Run(context.Context) error
}
