// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package clock provides the run's monotonic microsecond clock and the
// fixed-width time formatting used in trace output.
package clock

import "time"

// epoch is set at process start and re-pinned by Reset. time.Since(epoch)
// uses the runtime's monotonic clock reading, so between resets
// NowMicros is non-decreasing across goroutines regardless of
// wall-clock adjustments.
var epoch = time.Now()

// NowMicros returns microseconds elapsed since the epoch (process start,
// or the most recent Reset).
func NowMicros() int64 {
	return time.Since(epoch).Microseconds()
}

// Reset re-pins the epoch to the current instant. Used by the
// orchestrator at the start of each run so trace lines are relative to
// "simulation begins" rather than process start.
func Reset() int64 {
	epoch = time.Now()
	return 0
}

// SplitMillis splits a microsecond duration into whole milliseconds and
// the leftover microseconds, for the "%08d.%03dms" trace prefix.
func SplitMillis(us int64) (ms, usRemainder int64) {
	if us < 0 {
		us = 0
	}
	return us / 1000, us % 1000
}
