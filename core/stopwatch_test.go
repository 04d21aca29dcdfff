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

package core_test

import (
	"strings"
	"testing"
	"time"

	"stopwatch/core"
	"stopwatch/mocks"
	"stopwatch/utils"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStopwatch(t *testing.T) (*core.Stopwatch, utils.FakeClock, *utils.SyncBuffer) {
	var clock utils.FakeClock = clockwork.NewFakeClock()
	out := &utils.SyncBuffer{}
	sw := core.NewStopwatch(out, clock, nil)
	t.Cleanup(func() { sw.Close() })
	return sw, clock, out
}

func TestPauseResumeIsAdditive(t *testing.T) {
	sw, clock, _ := newTestStopwatch(t)

	segments := []time.Duration{
		1500 * time.Millisecond,
		200 * time.Millisecond,
		3 * time.Second,
		750 * time.Millisecond,
	}

	var expected time.Duration
	for _, d := range segments {
		_, err := sw.Start()
		require.NoError(t, err)
		clock.Advance(d)
		expected += d

		elapsed, err := sw.Pause()
		require.NoError(t, err)
		assert.Equal(t, expected, elapsed)

		// Time spent paused does not count.
		clock.Advance(10 * time.Second)
		assert.Equal(t, expected, sw.Elapsed())
	}
}

func TestLapsAcrossPause(t *testing.T) {
	sw, clock, _ := newTestStopwatch(t)

	resumed, err := sw.Start()
	require.NoError(t, err)
	assert.False(t, resumed)
	clock.Advance(1500 * time.Millisecond)

	i, d, err := sw.Lap()
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, 1500*time.Millisecond, d)

	_, err = sw.Pause()
	require.NoError(t, err)

	resumed, err = sw.Start()
	require.NoError(t, err)
	assert.True(t, resumed)
	clock.Advance(time.Second)

	i, d, err = sw.Lap()
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	assert.Equal(t, 2500*time.Millisecond, d)

	assert.Equal(t, []time.Duration{1500 * time.Millisecond, 2500 * time.Millisecond}, sw.Laps())
}

func TestLapRequiresRunning(t *testing.T) {
	sw, clock, _ := newTestStopwatch(t)

	_, _, err := sw.Lap()
	assert.Equal(t, core.ErrNotRunning, err)
	assert.Empty(t, sw.Laps())

	sw.Start()
	clock.Advance(time.Second)
	_, _, err = sw.Lap()
	require.NoError(t, err)

	sw.Pause()
	_, _, err = sw.Lap()
	assert.Equal(t, core.ErrNotRunning, err)
	assert.Len(t, sw.Laps(), 1)

	sw.Start()
	sw.Stop()
	_, _, err = sw.Lap()
	assert.Equal(t, core.ErrNotRunning, err)
	assert.Len(t, sw.Laps(), 1)
}

func TestLapsReturnsCopy(t *testing.T) {
	sw, clock, _ := newTestStopwatch(t)

	sw.Start()
	clock.Advance(time.Second)
	sw.Lap()

	laps := sw.Laps()
	laps[0] = time.Hour
	assert.Equal(t, []time.Duration{time.Second}, sw.Laps())
}

func TestResetDeclined(t *testing.T) {
	sw, clock, _ := newTestStopwatch(t)

	sw.Start()
	clock.Advance(2 * time.Second)
	sw.Lap()
	sw.Pause()

	assert.False(t, sw.Reset(false))
	assert.Equal(t, core.Paused, sw.Status())
	assert.Equal(t, 2*time.Second, sw.Elapsed())
	assert.Len(t, sw.Laps(), 1)
}

func TestResetConfirmed(t *testing.T) {
	sw, clock, _ := newTestStopwatch(t)

	sw.Start()
	clock.Advance(2 * time.Second)
	sw.Lap()

	assert.True(t, sw.Reset(true))
	assert.Equal(t, core.Stopped, sw.Status())
	assert.Equal(t, time.Duration(0), sw.Elapsed())
	assert.Empty(t, sw.Laps())

	// The refresh loop is gone, so there is nothing left to wake up.
	clock.Advance(time.Minute)
	assert.Equal(t, time.Duration(0), sw.Elapsed())
}

func TestInvalidTransitions(t *testing.T) {
	sw, _, _ := newTestStopwatch(t)

	_, err := sw.Pause()
	assert.Equal(t, core.ErrNotRunning, err)
	_, err = sw.Stop()
	assert.Equal(t, core.ErrNotRunning, err)

	_, err = sw.Start()
	require.NoError(t, err)
	_, err = sw.Start()
	assert.Equal(t, core.ErrAlreadyRunning, err)

	_, err = sw.Pause()
	require.NoError(t, err)
	_, err = sw.Pause()
	assert.Equal(t, core.ErrAlreadyPaused, err)
	_, err = sw.Stop()
	assert.Equal(t, core.ErrNotRunning, err)
	assert.Equal(t, core.Paused, sw.Status())
}

func TestStopThenStartContinues(t *testing.T) {
	sw, clock, _ := newTestStopwatch(t)

	sw.Start()
	clock.Advance(3 * time.Second)
	elapsed, err := sw.Stop()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, elapsed)
	assert.Equal(t, core.Stopped, sw.Status())

	resumed, err := sw.Start()
	require.NoError(t, err)
	assert.False(t, resumed)
	clock.Advance(2 * time.Second)
	assert.Equal(t, 5*time.Second, sw.Elapsed())
}

func TestSetDisplayInterval(t *testing.T) {
	cases := []struct {
		seconds float64
		valid   bool
	}{
		{0.1, true},
		{0.5, true},
		{60, true},
		{0.09, false},
		{60.01, false},
		{-1, false},
		{0, false},
	}

	for _, c := range cases {
		sw, _, _ := newTestStopwatch(t)
		err := sw.SetDisplayInterval(c.seconds)
		if c.valid {
			assert.NoError(t, err, "%v", c.seconds)
			assert.Equal(t, time.Duration(c.seconds*float64(time.Second)), sw.DisplayInterval())
		} else {
			assert.True(t, errors.Is(err, core.ErrInvalidInterval), "%v", c.seconds)
			assert.Equal(t, core.DefaultDisplayInterval, sw.DisplayInterval())
		}
	}
}

func TestPauseRendersFinalTime(t *testing.T) {
	sw, clock, out := newTestStopwatch(t)

	sw.Start()
	clock.Advance(1500 * time.Millisecond)
	sw.Pause()

	assert.True(t, strings.HasSuffix(out.String(), "Elapsed time: 00:01.50 (Stopwatch paused)\n"))
}

func TestDisplay(t *testing.T) {
	sw, _, out := newTestStopwatch(t)

	sw.Display()
	expected := "Elapsed time: 00:00.00 (Stopped)\n[>" + strings.Repeat(" ", 49) + "] 0s\n"
	assert.Equal(t, expected, out.String())
}

func TestNoRunningRenderAfterHalt(t *testing.T) {
	cases := []struct {
		name   string
		halt   func(sw *core.Stopwatch)
		suffix string
	}{
		{"pause", func(sw *core.Stopwatch) { sw.Pause() }, "(Stopwatch paused)\n"},
		{"stop", func(sw *core.Stopwatch) { sw.Stop() }, "(Stopwatch stopped)\n"},
		{"reset", func(sw *core.Stopwatch) { sw.Reset(true) }, "(Running)\n" + core.ProgressBar(time.Second) + "\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sw, clock, out := newTestStopwatch(t)

			sw.Start()
			utils.WaitForTimers(t, clock, 1)
			clock.Advance(time.Second)
			utils.WaitForTimers(t, clock, 1)
			assert.Equal(t, 2, strings.Count(out.String(), "(Running)"))

			c.halt(sw)
			haltedAt := len(out.String())
			assert.True(t, strings.HasSuffix(out.String(), c.suffix), out.String())

			// The loop has been joined, so no timer is left to fire.
			utils.WaitForTimers(t, clock, 0)
			clock.Advance(time.Minute)
			assert.Equal(t, haltedAt, len(out.String()))
			assert.Equal(t, 2, strings.Count(out.String(), "(Running)"))
		})
	}
}

func TestRefreshLoopPicksUpNewInterval(t *testing.T) {
	sw, clock, out := newTestStopwatch(t)

	sw.Start()
	utils.WaitForTimers(t, clock, 1)
	require.NoError(t, sw.SetDisplayInterval(5))

	// The pending cycle still uses the old interval.
	clock.Advance(time.Second)
	utils.WaitForTimers(t, clock, 1)
	assert.Equal(t, 2, strings.Count(out.String(), "(Running)"))

	clock.Advance(4 * time.Second)
	utils.WaitForTimers(t, clock, 1)
	assert.Equal(t, 2, strings.Count(out.String(), "(Running)"))

	clock.Advance(time.Second)
	utils.WaitForTimers(t, clock, 1)
	assert.Equal(t, 3, strings.Count(out.String(), "(Running)"))
}

func TestLoadsDisplayIntervalFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConfigStore(ctrl)
	store.EXPECT().LoadDisplayInterval().Return(2.5, nil)

	sw := core.NewStopwatch(&utils.SyncBuffer{}, clockwork.NewFakeClock(), store)
	assert.Equal(t, 2500*time.Millisecond, sw.DisplayInterval())
}

func TestDefaultIntervalWhenLoadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConfigStore(ctrl)
	store.EXPECT().LoadDisplayInterval().Return(0.0, errors.New("doh"))

	sw := core.NewStopwatch(&utils.SyncBuffer{}, clockwork.NewFakeClock(), store)
	assert.Equal(t, core.DefaultDisplayInterval, sw.DisplayInterval())
}

func TestDefaultIntervalWhenStoredValueIsOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConfigStore(ctrl)
	store.EXPECT().LoadDisplayInterval().Return(120.0, nil)

	sw := core.NewStopwatch(&utils.SyncBuffer{}, clockwork.NewFakeClock(), store)
	assert.Equal(t, core.DefaultDisplayInterval, sw.DisplayInterval())
}

func TestCloseSavesDisplayInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConfigStore(ctrl)
	store.EXPECT().LoadDisplayInterval().Return(1.0, nil)
	store.EXPECT().SaveDisplayInterval(0.5).Return(nil)

	clock := clockwork.NewFakeClock()
	sw := core.NewStopwatch(&utils.SyncBuffer{}, clock, store)
	require.NoError(t, sw.SetDisplayInterval(0.5))
	sw.Start()
	clock.Advance(time.Second)

	assert.NoError(t, sw.Close())
	assert.Equal(t, core.Stopped, sw.Status())
	assert.Equal(t, time.Second, sw.Elapsed())
}

func TestCloseReportsSaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConfigStore(ctrl)
	store.EXPECT().LoadDisplayInterval().Return(1.0, nil)
	store.EXPECT().SaveDisplayInterval(1.0).Return(errors.New("disk full"))

	sw := core.NewStopwatch(&utils.SyncBuffer{}, clockwork.NewFakeClock(), store)
	assert.EqualError(t, sw.Close(), "save display interval: disk full")
}

func TestStartAfterClose(t *testing.T) {
	sw, clock, out := newTestStopwatch(t)

	sw.Start()
	clock.Advance(time.Second)
	require.NoError(t, sw.Close())
	closedAt := len(out.String())

	_, err := sw.Start()
	assert.Equal(t, core.ErrClosed, err)
	assert.Equal(t, core.Stopped, sw.Status())

	utils.WaitForTimers(t, clock, 0)
	clock.Advance(time.Minute)
	assert.Equal(t, closedAt, len(out.String()))
	assert.Equal(t, time.Second, sw.Elapsed())
}
