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

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"printservice/internal/model"
)

func testParams(t *testing.T) model.SimulationParameters {
	t.Helper()
	p, err := model.NewSimulationParameters(2, 10, 200, 2000, 2000, 5000, 1, 1)
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	return p
}

func dialTestServer(t *testing.T, params model.SimulationParameters) *websocket.Conn {
	t.Helper()
	s := NewServer(params)
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/websocket"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	var frame map[string]any
	if err := json.Unmarshal(msg, &frame); err != nil {
		t.Fatalf("frame %q is not valid JSON: %v", msg, err)
	}
	return frame
}

func send(t *testing.T, conn *websocket.Conn, cmd string) {
	t.Helper()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(cmd)); err != nil {
		t.Fatalf("write %q: %v", cmd, err)
	}
}

func TestServer_StatusIsIdleBeforeAnyRun(t *testing.T) {
	conn := dialTestServer(t, testParams(t))
	send(t, conn, "status")
	frame := readFrame(t, conn)
	if frame["status"] != "idle" {
		t.Fatalf("expected idle status before any run, got %v", frame)
	}
}

func TestServer_UnknownCommandIsRejected(t *testing.T) {
	conn := dialTestServer(t, testParams(t))
	send(t, conn, "bogus")
	frame := readFrame(t, conn)
	if frame["error"] != "unknown command" {
		t.Fatalf("expected an unknown-command error frame, got %v", frame)
	}
}

// TestServer_StartStreamsARunToCompletion drives the full command
// protocol: start launches a run, the run's trace frames stream over
// the same connection, and the statistics frame marks the end. Frame
// order between the command reply and the run's own frames is not
// guaranteed, so this collects frames by type until statistics arrive.
func TestServer_StartStreamsARunToCompletion(t *testing.T) {
	conn := dialTestServer(t, testParams(t))
	send(t, conn, "start")

	var sawStarting, sawParams, sawBegins, sawStats bool
	deadline := time.Now().Add(10 * time.Second)
	for !sawStats {
		if time.Now().After(deadline) {
			t.Fatalf("run did not complete: starting=%v params=%v begins=%v", sawStarting, sawParams, sawBegins)
		}
		frame := readFrame(t, conn)
		switch {
		case frame["status"] == "starting":
			sawStarting = true
		case frame["type"] == "params":
			sawParams = true
		case frame["type"] == "log":
			if msg, _ := frame["message"].(string); strings.Contains(msg, "simulation begins") {
				sawBegins = true
			}
		case frame["type"] == "statistics":
			sawStats = true
		}
	}
	if !sawStarting || !sawParams || !sawBegins {
		t.Fatalf("expected the starting reply, params frame, and begin trace before statistics: starting=%v params=%v begins=%v",
			sawStarting, sawParams, sawBegins)
	}

	// The run goroutine flips back to idle just after its final frame.
	for {
		if time.Now().After(deadline) {
			t.Fatalf("server never returned to idle after the run completed")
		}
		send(t, conn, "status")
		if frame := readFrame(t, conn); frame["status"] == "idle" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}
