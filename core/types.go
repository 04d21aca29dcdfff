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
	"time"

	"github.com/pkg/errors"
)

const (
	// MinDisplayInterval and MaxDisplayInterval bound the refresh
	// cadence in seconds.
	MinDisplayInterval = 0.1
	MaxDisplayInterval = 60.0

	DefaultDisplayInterval = time.Second
)

var (
	ErrAlreadyRunning  = errors.New("stopwatch is already running")
	ErrAlreadyPaused   = errors.New("stopwatch is already paused")
	ErrNotRunning      = errors.New("stopwatch is not running")
	ErrClosed          = errors.New("stopwatch is closed")
	ErrInvalidInterval = errors.Errorf("invalid interval: must be between %v and %v seconds", MinDisplayInterval, MaxDisplayInterval)
)

// Status of a `Stopwatch`.
type Status int

const (
	Stopped Status = iota
	Running
	Paused
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	default:
		return "Stopped"
	}
}

// ConfigStore is where the display interval survives between runs.
// Stopwatch reads it once when it is created and writes it once
// when it is closed. Both directions use seconds.
type ConfigStore interface {
	LoadDisplayInterval() (float64, error)
	SaveDisplayInterval(float64) error
}
