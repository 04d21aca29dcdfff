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
	"context"

	log "github.com/sirupsen/logrus"
)

// refreshLoop is the handle of the goroutine that keeps
// re-rendering the stopwatch while it is running.
// Stopping a loop is split in two halves: `cancel` is called
// while the state lock is held so that the loop can never render
// again, `wait` is called after the lock is released and blocks
// until the goroutine has returned.
type refreshLoop struct {
	cancelFunc context.CancelFunc
	done       chan struct{}
}

func (l *refreshLoop) cancel() {
	if l != nil {
		l.cancelFunc()
	}
}

func (l *refreshLoop) wait() {
	if l != nil {
		<-l.done
	}
}

// launchRefreshLoop must be called with s.mu held and
// with no other loop attached.
func (s *Stopwatch) launchRefreshLoop() {
	ctx, cancelFunc := context.WithCancel(context.Background())
	l := &refreshLoop{
		cancelFunc: cancelFunc,
		done:       make(chan struct{}),
	}
	s.loop = l
	go s.refresh(ctx, l.done)
}

// detachRefreshLoop must be called with s.mu held. The returned
// loop has been cancelled and the caller should wait on it once
// s.mu is released.
func (s *Stopwatch) detachRefreshLoop() *refreshLoop {
	l := s.loop
	s.loop = nil
	l.cancel()
	return l
}

func (s *Stopwatch) refresh(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	log.WithFields(s.logFields).Debug("refresh loop started")
	defer log.WithFields(s.logFields).Debug("refresh loop exited")

	for {
		s.mu.Lock()
		if ctx.Err() != nil {
			s.mu.Unlock()
			return
		}
		if s.status == Running {
			s.render()
		}
		// Read every cycle so that SetDisplayInterval takes
		// effect without restarting the loop.
		interval := s.interval
		s.mu.Unlock()

		timer := s.clock.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.Chan():
		}
	}
}
