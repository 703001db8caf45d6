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

// Command printserver runs the print service simulation behind a
// WebSocket control channel, so a browser can start, stop, and watch a
// run, plus a Prometheus /metrics endpoint.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"printservice/internal/api"
	"printservice/internal/model"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	num := flag.Int("num", 20, "number of jobs to generate")
	q := flag.Int("q", 10, "job queue capacity")
	pCap := flag.Int64("p_cap", 100, "printer paper capacity")
	arr := flag.Float64("arr", 10, "job arrival rate in jobs/sec")
	svc := flag.Float64("s", 5, "printing rate in pages/sec")
	ref := flag.Float64("ref", 20, "refill rate in pages/sec")
	papersLower := flag.Int64("papers_lower", 1, "lower bound of papers_required")
	papersUpper := flag.Int64("papers_upper", 10, "upper bound of papers_required")
	flag.Parse()

	params, err := model.NewSimulationParameters(*num, *q, *pCap, *arr, *svc, *ref, *papersLower, *papersUpper)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	server := api.NewServer(params)
	prometheus.MustRegister(server.Collector())

	if err := server.ListenAndServe(*addr); err != nil {
		log.Fatalf("http: %v", err)
	}
}
