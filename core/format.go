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

package core

import (
	"fmt"
	"strings"
	"time"
)

const progressBarWidth = 50

// FormatElapsed formats d as MM:SS.cc. Minutes are not wrapped
// into hours, so an hour and a half reads 90:00.00.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	centis := int64(d / (10 * time.Millisecond))
	minutes := centis / 6000
	centis %= 6000
	return fmt.Sprintf("%02d:%02d.%02d", minutes, centis/100, centis%100)
}

// ProgressBar draws the position of d within the current minute.
func ProgressBar(d time.Duration) string {
	seconds := d.Seconds()
	if seconds < 0 {
		seconds = 0
	}
	progress := int(seconds/60*progressBarWidth) % progressBarWidth

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < progressBarWidth; i++ {
		switch {
		case i < progress:
			b.WriteByte('=')
		case i == progress:
			b.WriteByte('>')
		default:
			b.WriteByte(' ')
		}
	}
	fmt.Fprintf(&b, "] %ds", int(seconds)%60)
	return b.String()
}

func formatElapsedLine(d time.Duration, note string) string {
	return fmt.Sprintf("Elapsed time: %s (%s)", FormatElapsed(d), note)
}
