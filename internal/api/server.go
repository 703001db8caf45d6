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

// Package api implements the public-facing transport for server mode:
// a WebSocket command channel that streams trace/statistics frames to
// the client, plus a Prometheus /metrics endpoint.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"printservice/internal/events"
	"printservice/internal/model"
	"printservice/internal/sim"
	"printservice/internal/stats"
	"printservice/internal/telemetry"
)

// Server bridges one WebSocket-driven run of the simulation at a time
// to the outbound frame queue of the client that started it; other
// connected clients receive only their own command replies.
type Server struct {
	params model.SimulationParameters

	upgrader websocket.Upgrader

	mu      sync.Mutex
	running bool
	current *sim.Simulation
}

// NewServer builds a server that launches simulations configured by
// params. It registers no Prometheus collector itself; see Collector.
func NewServer(params model.SimulationParameters) *Server {
	s := &Server{
		params: params,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	return s
}

// Collector returns a telemetry collector scraping the most recently
// started run's statistics, for the caller to register once.
func (s *Server) Collector() *telemetry.Collector {
	return telemetry.NewCollector(s.currentStats)
}

func (s *Server) currentStats() *stats.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	return s.current.Stats()
}

// RegisterRoutes wires /websocket and /metrics onto mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/websocket", s.handleWebSocket)
	mux.Handle("/metrics", promhttp.Handler())
}

// ListenAndServe starts the HTTP server on addr, serving both routes.
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("print service control server listening on %s", addr)
	return httpServer.ListenAndServe()
}

// connWriter serializes writes to one WebSocket connection through a
// buffered channel, since a single connection must never be written to
// concurrently from multiple goroutines.
type connWriter struct {
	conn *websocket.Conn
	out  chan []byte
}

func newConnWriter(conn *websocket.Conn) *connWriter {
	return &connWriter{conn: conn, out: make(chan []byte, 256)}
}

// send enqueues a frame, dropping it if the client is not keeping up.
// Per the error-handling design, transport errors never abort the run:
// a frame sent after the connection's handler has returned (and closed
// out) is dropped too.
func (w *connWriter) send(frame []byte) {
	defer func() { _ = recover() }()
	select {
	case w.out <- frame:
	default:
	}
}

func (w *connWriter) writePump() {
	for frame := range w.out {
		if err := w.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
}

func (w *connWriter) replyJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	w.send(b)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	cw := newConnWriter(conn)
	go cw.writePump()
	defer close(cw.out)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		s.dispatch(strings.TrimSpace(string(msg)), cw)
	}
}

func (s *Server) dispatch(cmd string, cw *connWriter) {
	switch cmd {
	case "start":
		cw.replyJSON(map[string]string{"status": s.start(cw.send)})
	case "stop":
		cw.replyJSON(map[string]string{"status": s.stopRun()})
	case "status":
		cw.replyJSON(map[string]string{"status": s.status()})
	default:
		cw.replyJSON(map[string]string{"error": "unknown command"})
	}
}

// start launches the orchestrator in a goroutine if one is not already
// running, returning "starting" or "running".
func (s *Server) start(send events.Send) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return "running"
	}

	sink := events.NewServerSink(send)
	simulation := sim.NewSimulation(s.params, sink)
	s.current = simulation
	s.running = true

	go func() {
		simulation.Run()
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	return "starting"
}

// stopRun invokes the stop coordinator of the active run, if any.
func (s *Server) stopRun() string {
	s.mu.Lock()
	cur, running := s.current, s.running
	s.mu.Unlock()

	if !running || cur == nil {
		return "idle"
	}
	cur.Stop()
	return "stopping"
}

func (s *Server) status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return "running"
	}
	return "idle"
}
