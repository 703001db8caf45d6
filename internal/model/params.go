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

package model

import "fmt"

// SimulationParameters is immutable once constructed by
// NewSimulationParameters.
type SimulationParameters struct {
	NumJobs                  int
	JobArrivalTimeUs         int64
	PapersRequiredLowerBound int64
	PapersRequiredUpperBound int64
	QueueCapacity            int
	PrintingRate             float64 // pages/sec
	PrinterPaperCapacity     int64
	RefillRate               float64 // pages/sec
}

// ValidationError reports a single invalid configuration value. It
// carries the offending flag name so the CLI layer can report it
// without re-deriving context.
type ValidationError struct {
	Flag   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid -%s: %s", e.Flag, e.Reason)
}

// NewSimulationParameters validates and normalizes raw flag values into
// a SimulationParameters. Bounds are swapped if inverted.
func NewSimulationParameters(numJobs, queueCapacity int, printerPaperCapacity int64, arrivalRate, printingRate, refillRate float64, papersLower, papersUpper int64) (SimulationParameters, error) {
	switch {
	case numJobs < 0:
		return SimulationParameters{}, &ValidationError{"num", "must be >= 0"}
	case queueCapacity <= 0:
		return SimulationParameters{}, &ValidationError{"q", "must be positive"}
	case printerPaperCapacity <= 0:
		return SimulationParameters{}, &ValidationError{"p_cap", "must be positive"}
	case arrivalRate <= 0:
		return SimulationParameters{}, &ValidationError{"arr", "must be positive"}
	case printingRate <= 0:
		return SimulationParameters{}, &ValidationError{"s", "must be positive"}
	case refillRate <= 0:
		return SimulationParameters{}, &ValidationError{"ref", "must be positive"}
	case papersLower <= 0:
		return SimulationParameters{}, &ValidationError{"papers_lower", "must be positive"}
	case papersUpper <= 0:
		return SimulationParameters{}, &ValidationError{"papers_upper", "must be positive"}
	}
	if papersLower > papersUpper {
		papersLower, papersUpper = papersUpper, papersLower
	}
	return SimulationParameters{
		NumJobs:                  numJobs,
		JobArrivalTimeUs:         int64(1_000_000.0 / arrivalRate),
		PapersRequiredLowerBound: papersLower,
		PapersRequiredUpperBound: papersUpper,
		QueueCapacity:            queueCapacity,
		PrintingRate:             printingRate,
		PrinterPaperCapacity:     printerPaperCapacity,
		RefillRate:               refillRate,
	}, nil
}
