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

// Package errors provides structured errors shared by the HTTP and CLI layers.
//
// A StructuredError pairs a stable ErrorCode with a message, an optional
// cause and optional context. The server package maps codes to HTTP status
// codes and retryability, so handlers only decide which code applies:
//
//	if errors.Is(err, numeral.ErrOutOfRange) {
//	    return rnerrors.WrapWithContext(rnerrors.ErrCodeOutOfRange,
//	        "invalid arabic parameter", err, map[string]any{"value": raw})
//	}
package errors
