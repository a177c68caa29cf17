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

// Package commonmark provides a zero-copy [CommonMark]-flavored Markdown
// parser and an HTML renderer.
//
// The parser never copies substrings out of the source buffer: every parsed
// node stores offsets into the caller's byte slice, and the resulting
// [Document] borrows that slice for as long as it is used. Blocks and
// inlines are stored in two flat, append-only arrays; parent/child
// relationships are index ranges into those arrays rather than pointers.
//
// A typical use looks like:
//
//	html, err := commonmark.ToHTML(nil, source)
//
// or, to reuse the parsed [Document]:
//
//	doc := commonmark.Parse(source)
//	var buf bytes.Buffer
//	if err := commonmark.RenderHTML(&buf, doc, nil); err != nil {
//		// handle write failure
//	}
//
// [CommonMark]: https://commonmark.org/
package commonmark
