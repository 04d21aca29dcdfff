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
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// SurveyPrompter asks questions interactively on a terminal.
type SurveyPrompter struct {
	ask func(survey.Prompt, interface{}, ...survey.AskOpt) error
}

func (p *SurveyPrompter) Get(message, help string, validator Validator) (string, error) {
	var opts []survey.AskOpt
	if validator != nil {
		opts = append(opts, survey.WithValidator(survey.Validator(validator)))
	}

	var answer string
	err := p.ask(&survey.Input{Message: message, Help: help}, &answer, opts...)
	if err != nil {
		return "", translateSurveyErr(err)
	}
	return answer, nil
}

func (p *SurveyPrompter) Confirm(message, help string) (bool, error) {
	var confirmed bool
	err := p.ask(&survey.Confirm{Message: message, Help: help}, &confirmed)
	if err != nil {
		return false, translateSurveyErr(err)
	}
	return confirmed, nil
}

// Ctrl-C and Ctrl-D inside a survey prompt end the session
// the same way end of input does.
func translateSurveyErr(err error) error {
	if err == terminal.InterruptErr || err == io.EOF {
		return io.EOF
	}
	return errors.WithStack(err)
}

func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{ask: survey.AskOne}
}

// NewPrompter picks a SurveyPrompter when stdin is a terminal
// and a LinePrompter otherwise.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return NewSurveyPrompter()
	}
	return NewLinePrompter(in, out)
}
