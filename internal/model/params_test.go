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

import "testing"

func TestNewSimulationParameters_SwapsInvertedBounds(t *testing.T) {
	p, err := NewSimulationParameters(10, 10, 100, 5, 5, 5, 30, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PapersRequiredLowerBound != 10 || p.PapersRequiredUpperBound != 30 {
		t.Fatalf("expected bounds swapped to [10,30], got [%d,%d]", p.PapersRequiredLowerBound, p.PapersRequiredUpperBound)
	}
}

func TestNewSimulationParameters_ArrivalTimeDerivedFromRate(t *testing.T) {
	p, err := NewSimulationParameters(10, 10, 100, 10, 5, 5, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.JobArrivalTimeUs != 100_000 {
		t.Fatalf("expected 10 jobs/sec to derive a 100000us inter-arrival time, got %d", p.JobArrivalTimeUs)
	}
}

func TestNewSimulationParameters_RejectsNonPositive(t *testing.T) {
	cases := []struct {
		name          string
		num, q        int
		pCap          int64
		arr, svc, ref float64
		lower, upper  int64
	}{
		{"queue capacity", 1, 0, 10, 1, 1, 1, 1, 1},
		{"printer capacity", 1, 1, 0, 1, 1, 1, 1, 1},
		{"arrival rate", 1, 1, 10, 0, 1, 1, 1, 1},
		{"printing rate", 1, 1, 10, 1, 0, 1, 1, 1},
		{"refill rate", 1, 1, 10, 1, 1, 0, 1, 1},
		{"papers lower", 1, 1, 10, 1, 1, 1, 0, 1},
		{"papers upper", 1, 1, 10, 1, 1, 1, 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewSimulationParameters(c.num, c.q, c.pCap, c.arr, c.svc, c.ref, c.lower, c.upper); err == nil {
				t.Fatalf("expected a ValidationError for non-positive %s", c.name)
			}
		})
	}
}

func TestNewSimulationParameters_AllowsZeroJobs(t *testing.T) {
	if _, err := NewSimulationParameters(0, 1, 10, 1, 1, 1, 1, 1); err != nil {
		t.Fatalf("expected num=0 to be a valid empty run, got %v", err)
	}
}

func TestNewSimulationParameters_RejectsNegativeNumJobs(t *testing.T) {
	if _, err := NewSimulationParameters(-1, 1, 10, 1, 1, 1, 1, 1); err == nil {
		t.Fatalf("expected a negative job count to be rejected")
	}
}
