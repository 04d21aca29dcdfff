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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// LinePrompter reads one answer per line. It is used when stdin is
// not a terminal, e.g. when commands are piped into the stopwatch.
type LinePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *LinePrompter) Get(message, help string, validator Validator) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s ", message)
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if validator == nil {
			return answer, nil
		}
		if err := validator(answer); err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return answer, nil
	}
}

// Confirm is true only for answers starting with y or Y.
func (p *LinePrompter) Confirm(message, help string) (bool, error) {
	fmt.Fprintf(p.out, "%s (y/n): ", message)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

func (p *LinePrompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", errors.WithStack(err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}
