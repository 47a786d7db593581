// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package cli implements the romanos command-line interface.
//
// # Commands
//
// to-roman - Convert integers to Roman numerals:
//
//	romanos to-roman 1994 2024 [--format json]
//
// to-arabic - Convert Roman numerals to integers (case-insensitive):
//
//	romanos to-arabic MCMXCIV mmxxiv
//
// check - Report whether numerals are canonical:
//
//	romanos check XIV IIII
//
// symbols - List the value/symbol table:
//
//	romanos symbols --format table
//
// serve - Run the HTTP API (same as romanosd):
//
//	romanos serve
//
// Each conversion command prints one record per argument with the fields
// input, roman, arabic, canonical and error. Every argument is processed
// even when some fail; the exit code is then non-zero.
//
// # Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--log-level    debug, info, warn, error (env: LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Arguments starting with "-" are read as flags; place them after "--".
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, failed conversion)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/numeralia/romanos/pkg/cli.version=1.0.0'"
package cli
