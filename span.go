// Copyright 2024 The Commonmark-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package commonmark

// Span is a half-open byte range [Start, End) into a source buffer. It is
// the universal substring representation used throughout the package: no
// parsing step ever materializes a copy of the bytes it describes.
type Span struct {
	Start int
	End   int
}

// NullSpan returns the span used to represent "no span present"
// (a link title that wasn't given, a code fence with no info string).
func NullSpan() Span {
	return Span{Start: -1, End: -1}
}

// IsValid reports whether the span refers to an actual range rather than
// the [NullSpan] sentinel.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	if !s.IsValid() {
		return 0
	}
	return s.End - s.Start
}

// slice returns the bytes of source that s refers to.
// It panics if s falls outside source, which would indicate a bug in the
// parser rather than a condition callers should handle.
func (s Span) slice(source []byte) []byte {
	return source[s.Start:s.End]
}
