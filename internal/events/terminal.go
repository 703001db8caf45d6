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

package events

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"sync"
)

// TerminalSink writes one line per event to an io.Writer (stdout in
// production) under a mutex, buffered the way the reference sinks
// buffer append-only output: a bufio.Writer flushed after every write,
// since trace lines are low-volume and must appear promptly.
type TerminalSink struct {
	mu sync.Mutex
	w  *bufio.Writer
}

// NewTerminalSink wraps w in a buffered, lock-guarded writer.
func NewTerminalSink(w io.Writer) *TerminalSink {
	return &TerminalSink{w: bufio.NewWriter(w)}
}

// Log writes line followed by a newline.
func (t *TerminalSink) Log(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, line)
	t.w.Flush()
}

// Params prints the simulation parameters in deterministic key order.
func (t *TerminalSink) Params(params map[string]any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintln(t.w, "simulation parameters:")
	for _, k := range keys {
		fmt.Fprintf(t.w, "  %-28s %v\n", k, params[k])
	}
	t.w.Flush()
}

// Statistics prints the final statistics in deterministic key order.
func (t *TerminalSink) Statistics(data map[string]any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintln(t.w, "final statistics:")
	for _, k := range keys {
		fmt.Fprintf(t.w, "  %-28s %v\n", k, data[k])
	}
	t.w.Flush()
}
