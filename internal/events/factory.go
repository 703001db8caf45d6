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
	"fmt"
	"io"
)

// BuildSink selects exactly one Sink implementation by name, the same
// way the reference architecture's persistence layer picks one storage
// adapter by a string selector at process start. Supported modes:
//   - "terminal": human-readable trace lines written to w.
//   - "server": JSON frames handed to send.
func BuildSink(mode string, w io.Writer, send Send) (Sink, error) {
	switch mode {
	case "terminal":
		return NewTerminalSink(w), nil
	case "server":
		if send == nil {
			return nil, fmt.Errorf("server sink requires a non-nil send function")
		}
		return NewServerSink(send), nil
	default:
		return nil, fmt.Errorf("unknown event sink mode: %s", mode)
	}
}
