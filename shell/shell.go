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
	"fmt"
	"io"
	"strconv"
	"strings"

	"stopwatch/core"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	choicePrompt   = "Enter your choice (1-10):"
	intervalPrompt = "Enter new display interval in seconds (0.1 to 60):"
	resetPrompt    = "Are you sure you want to reset the stopwatch?"
)

const menu = `
Stopwatch Menu:
1. Start/Resume
2. Pause
3. Stop
4. Reset
5. Display Time
6. Set Display Interval
7. Record Lap
8. Display Laps
9. Help
10. Exit`

const help = `
Help: This stopwatch allows you to:
1. Start and stop timing.
2. Pause and resume timing.
3. Record lap times.
4. View recorded lap times.
5. Change the display update interval.
6. Reset the stopwatch.
Type the number corresponding to each option to use the stopwatch.`

var (
	success = color.New(color.FgHiGreen)
	warning = color.New(color.FgHiYellow)
	heading = color.New(color.FgHiWhite, color.Bold)
)

// Shell is the numbered text menu in front of a Stopwatch.
type Shell struct {
	stopwatch Stopwatch
	prompt    Prompter
	out       io.Writer
	logFields log.Fields
}

// Run shows the menu and executes choices until the user exits
// or the prompter fails. Prompt errors such as io.EOF are returned.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to the Stopwatch!")
	fmt.Fprintf(s.out, "Type %d for help on how to use the stopwatch.\n", ActionHelp)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		heading.Fprintln(s.out, menu)
		answer, err := s.prompt.Get(choicePrompt, "", ValidateChoice)
		if err != nil {
			return err
		}
		// The stopwatch may already be closed.
		if ctx.Err() != nil {
			return ctx.Err()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			return errors.WithStack(err)
		}
		log.WithFields(s.logFields).WithField("choice", choice).Debug("menu choice")

		if choice == ActionExit {
			return nil
		}
		if err := s.execute(choice); err != nil {
			return err
		}
	}
}

func (s *Shell) execute(choice int) error {
	switch choice {
	case ActionStart:
		resumed, err := s.stopwatch.Start()
		switch {
		case err != nil:
			s.warn(err)
		case resumed:
			success.Fprintln(s.out, "Stopwatch resumed.")
		default:
			success.Fprintln(s.out, "Stopwatch started.")
		}
	case ActionPause:
		if _, err := s.stopwatch.Pause(); err != nil {
			s.warn(err)
		}
	case ActionStop:
		if _, err := s.stopwatch.Stop(); err != nil {
			s.warn(err)
		}
	case ActionReset:
		confirmed, err := s.prompt.Confirm(resetPrompt, "Clears the elapsed time and all recorded laps.")
		if err != nil {
			return err
		}
		if s.stopwatch.Reset(confirmed) {
			success.Fprintln(s.out, "Stopwatch reset.")
		} else {
			fmt.Fprintln(s.out, "Reset cancelled.")
		}
	case ActionDisplay:
		s.stopwatch.Display()
	case ActionSetInterval:
		return s.setInterval()
	case ActionLap:
		i, d, err := s.stopwatch.Lap()
		if err != nil {
			warning.Fprintf(s.out, "Cannot record lap: %s\n", describe(err))
			return nil
		}
		fmt.Fprintf(s.out, "Lap %d: Elapsed time: %s\n", i, core.FormatElapsed(d))
	case ActionDisplayLaps:
		s.displayLaps()
	case ActionHelp:
		fmt.Fprintln(s.out, help)
	}
	return nil
}

func (s *Shell) setInterval() error {
	answer, err := s.prompt.Get(intervalPrompt, "How often the time is redrawn while the stopwatch runs.", ValidateInterval)
	if err != nil {
		return err
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	if err == nil {
		err = s.stopwatch.SetDisplayInterval(seconds)
	}
	if err != nil {
		s.warn(err)
		return nil
	}
	success.Fprintf(s.out, "Display interval set to %v seconds.\n", seconds)
	return nil
}

func (s *Shell) displayLaps() {
	laps := s.stopwatch.Laps()
	if len(laps) == 0 {
		fmt.Fprintln(s.out, "No laps recorded.")
		return
	}

	heading.Fprintln(s.out, "Recorded Laps:")
	for i, d := range laps {
		fmt.Fprintf(s.out, "Lap %d: Elapsed time: %s\n", i+1, core.FormatElapsed(d))
	}
}

func (s *Shell) warn(err error) {
	warning.Fprintln(s.out, describe(err))
}

// describe turns stopwatch errors into the sentences shown to the user.
func describe(err error) string {
	switch errors.Cause(err) {
	case core.ErrAlreadyRunning:
		return "Stopwatch is already running."
	case core.ErrAlreadyPaused:
		return "Stopwatch is already paused."
	case core.ErrNotRunning:
		return "Stopwatch is not running."
	case core.ErrClosed:
		return "Stopwatch is closed."
	case core.ErrInvalidInterval:
		return fmt.Sprintf("Invalid interval. Please enter a number between %v and %v seconds.", core.MinDisplayInterval, core.MaxDisplayInterval)
	default:
		return err.Error()
	}
}

// ValidateChoice accepts a menu number.
func ValidateChoice(ans interface{}) error {
	n, err := strconv.Atoi(strings.TrimSpace(fmt.Sprint(ans)))
	if err != nil || n < ActionStart || n > ActionExit {
		return errors.Errorf("Invalid input. Please enter a number between %d and %d.", ActionStart, ActionExit)
	}
	return nil
}

// ValidateInterval accepts a display interval in seconds.
func ValidateInterval(ans interface{}) error {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(fmt.Sprint(ans)), 64)
	if err != nil || !(seconds >= core.MinDisplayInterval && seconds <= core.MaxDisplayInterval) {
		return errors.Errorf("Invalid input. Please enter a number between %v and %v.", core.MinDisplayInterval, core.MaxDisplayInterval)
	}
	return nil
}

// NewShell creates a Shell printing to out.
func NewShell(stopwatch Stopwatch, prompt Prompter, out io.Writer) *Shell {
	return &Shell{
		stopwatch: stopwatch,
		prompt:    prompt,
		out:       out,
		logFields: log.Fields{"module": "shell"},
	}
}
