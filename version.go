// Copyright 2025 Lachstec
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

package main

// version is stamped at release time via -ldflags "-X main.version=...".
var version = "0.2.0"

// ANSI escape codes for plain terminal output outside the TUI.
const (
	Green  = "\033[92m"
	Yellow = "\033[93m"
	Red    = "\033[91m"
	Reset  = "\033[0m"
)
