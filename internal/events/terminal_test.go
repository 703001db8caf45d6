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
	"bytes"
	"strings"
	"testing"
)

func TestTerminalSink_LogWritesOneLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf)
	sink.Log("simulation begins")
	if buf.String() != "simulation begins\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestTerminalSink_ParamsSortedDeterministically(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf)
	sink.Params(map[string]any{"z_field": 1, "a_field": 2})
	out := buf.String()
	if strings.Index(out, "a_field") > strings.Index(out, "z_field") {
		t.Fatalf("expected keys in sorted order, got %q", out)
	}
}

func TestServerSink_EmitsTypedFrames(t *testing.T) {
	var frames [][]byte
	sink := NewServerSink(func(f []byte) { frames = append(frames, f) })

	sink.Log("hello")
	sink.Params(map[string]any{"a": 1})
	sink.Statistics(map[string]any{"b": 2})

	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	if !strings.Contains(string(frames[0]), `"type":"log"`) {
		t.Fatalf("expected a log frame, got %q", frames[0])
	}
	if !strings.Contains(string(frames[1]), `"type":"params"`) {
		t.Fatalf("expected a params frame, got %q", frames[1])
	}
	if !strings.Contains(string(frames[2]), `"type":"statistics"`) {
		t.Fatalf("expected a statistics frame, got %q", frames[2])
	}
}

func TestBuildSink_UnknownModeErrors(t *testing.T) {
	if _, err := BuildSink("bogus", nil, nil); err == nil {
		t.Fatalf("expected an error for an unrecognized sink mode")
	}
}

func TestBuildSink_ServerModeRequiresSend(t *testing.T) {
	if _, err := BuildSink("server", nil, nil); err == nil {
		t.Fatalf("expected an error when server mode has no send function")
	}
}
