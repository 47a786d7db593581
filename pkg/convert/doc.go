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

// Package convert exposes numeral conversion over HTTP.
//
// Routes (GET only):
//
//	/a2r?arabic=<1-3999>   {"roman":"MCMXCIV","arabic":1994}
//	/r2a?roman=<numeral>   {"arabic":1994,"roman":"MCMXCIV"}
//
// The same handlers are also registered under /v1. Input is case-insensitive
// and the roman value is echoed in canonical uppercase. A missing or empty
// parameter yields 400 MISSING_PARAMETER; an invalid value yields 400
// OUT_OF_RANGE (a2r) or INVALID_NUMERAL (r2a). Successful responses are
// cacheable since conversions never change.
package convert
