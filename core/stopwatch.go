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
	"io"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Stopwatch accumulates elapsed time over start/pause/stop cycles
// and records laps.
// While it is running a refresh loop renders the current time to
// `out` every display interval.
//
// Every method takes `mu` for its whole critical section, the
// refresh loop included. Methods that stop the loop also hold
// `control` so that the loop can be joined after `mu` is released.
type Stopwatch struct {
	control sync.Mutex
	mu      sync.Mutex

	status       Status
	elapsed      time.Duration
	segmentStart time.Time
	interval     time.Duration
	laps         []time.Duration
	loop         *refreshLoop
	closed       bool

	clock     clockwork.Clock
	out       io.Writer
	store     ConfigStore
	logFields log.Fields
}

// Start begins a new segment. resumed is true when the stopwatch
// was paused.
func (s *Stopwatch) Start() (resumed bool, err error) {
	s.control.Lock()
	defer s.control.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false, ErrClosed
	}
	if s.status == Running {
		s.mu.Unlock()
		return false, ErrAlreadyRunning
	}
	// Never let two loops coexist.
	stale := s.detachRefreshLoop()
	s.mu.Unlock()
	stale.wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	resumed = s.status == Paused
	s.segmentStart = s.clock.Now()
	s.status = Running
	s.launchRefreshLoop()
	log.WithFields(s.logFields).WithField("resumed", resumed).Debug("started")
	return resumed, nil
}

// Pause folds the current segment into the total and returns it.
func (s *Stopwatch) Pause() (time.Duration, error) {
	return s.halt(Paused, "Stopwatch paused")
}

// Stop is like Pause but leaves the stopwatch Stopped. The total and
// the laps are kept, a following Start continues from them.
func (s *Stopwatch) Stop() (time.Duration, error) {
	return s.halt(Stopped, "Stopwatch stopped")
}

func (s *Stopwatch) halt(next Status, note string) (time.Duration, error) {
	s.control.Lock()
	defer s.control.Unlock()

	s.mu.Lock()
	if s.status != Running {
		err := ErrNotRunning
		if s.status == Paused && next == Paused {
			err = ErrAlreadyPaused
		}
		s.mu.Unlock()
		return 0, err
	}

	s.elapsed += s.clock.Since(s.segmentStart)
	s.segmentStart = time.Time{}
	s.status = next
	loop := s.detachRefreshLoop()
	fmt.Fprintln(s.out, formatElapsedLine(s.elapsed, note))
	elapsed := s.elapsed
	s.mu.Unlock()

	loop.wait()
	log.WithFields(s.logFields).WithFields(log.Fields{"status": next, "elapsed": elapsed}).Debug("halted")
	return elapsed, nil
}

// Reset clears the total and the laps. Nothing happens unless
// confirmed is true. It reports whether the reset took place.
func (s *Stopwatch) Reset(confirmed bool) bool {
	if !confirmed {
		return false
	}

	s.control.Lock()
	defer s.control.Unlock()

	s.mu.Lock()
	s.elapsed = 0
	s.segmentStart = time.Time{}
	s.status = Stopped
	s.laps = nil
	loop := s.detachRefreshLoop()
	s.mu.Unlock()

	loop.wait()
	log.WithFields(s.logFields).Debug("reset")
	return true
}

// Display renders the current time, status and progress bar.
func (s *Stopwatch) Display() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.render()
}

// render must be called with s.mu held.
func (s *Stopwatch) render() {
	total := s.total()
	fmt.Fprintln(s.out, formatElapsedLine(total, s.status.String()))
	fmt.Fprintln(s.out, ProgressBar(total))
}

// total must be called with s.mu held.
func (s *Stopwatch) total() time.Duration {
	if s.status == Running {
		return s.elapsed + s.clock.Since(s.segmentStart)
	}
	return s.elapsed
}

// Lap records the current total. The returned index starts at 1.
func (s *Stopwatch) Lap() (int, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Running {
		return 0, 0, ErrNotRunning
	}

	d := s.total()
	s.laps = append(s.laps, d)
	return len(s.laps), d, nil
}

// Laps returns a copy of the recorded laps in the order they were taken.
func (s *Stopwatch) Laps() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	laps := make([]time.Duration, len(s.laps))
	copy(laps, s.laps)
	return laps
}

// SetDisplayInterval changes the refresh cadence. A running refresh
// loop uses the new value from its next cycle.
func (s *Stopwatch) SetDisplayInterval(seconds float64) error {
	if !(seconds >= MinDisplayInterval && seconds <= MaxDisplayInterval) {
		return errors.WithStack(ErrInvalidInterval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = time.Duration(seconds * float64(time.Second))
	return nil
}

func (s *Stopwatch) DisplayInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

func (s *Stopwatch) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Elapsed is the total time spent running, the current segment included.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total()
}

// Close stops the refresh loop and saves the display interval.
// Start fails with ErrClosed afterwards.
func (s *Stopwatch) Close() error {
	s.control.Lock()
	defer s.control.Unlock()

	s.mu.Lock()
	s.closed = true
	if s.status == Running {
		s.elapsed += s.clock.Since(s.segmentStart)
		s.segmentStart = time.Time{}
		s.status = Stopped
	}
	loop := s.detachRefreshLoop()
	seconds := s.interval.Seconds()
	s.mu.Unlock()

	loop.wait()

	if s.store == nil {
		return nil
	}
	if err := s.store.SaveDisplayInterval(seconds); err != nil {
		log.WithFields(s.logFields).WithField("err", err).Warn("error saving config")
		return errors.Wrap(err, "save display interval")
	}
	return nil
}

func (s *Stopwatch) loadConfig() {
	if s.store == nil {
		return
	}

	seconds, err := s.store.LoadDisplayInterval()
	if err == nil {
		err = s.SetDisplayInterval(seconds)
	}
	if err != nil {
		log.WithFields(s.logFields).WithField("err", err).Warnf("error loading config, using default display interval of %v", DefaultDisplayInterval)
		return
	}
	log.WithFields(s.logFields).WithField("interval", seconds).Debug("display interval loaded")
}

// NewStopwatch creates a stopped stopwatch rendering to out.
// The display interval is loaded from store when one is given.
func NewStopwatch(out io.Writer, clock clockwork.Clock, store ConfigStore) *Stopwatch {
	s := &Stopwatch{
		status:    Stopped,
		interval:  DefaultDisplayInterval,
		clock:     clock,
		out:       out,
		store:     store,
		logFields: log.Fields{"module": "stopwatch"},
	}
	s.loadConfig()
	return s
}
