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

// Parse always returns a [Document] for the given source, no matter how
// malformed the input looks to a human reader. There is no parse error:
// every byte of source is accounted for by some block.
//
// The returned Document borrows source; it must not be used after source
// is modified.
func Parse(source []byte) *Document {
	blocks, topLevelCount, lineCount, inlines, lines := parseBlocks(source)
	return &Document{
		Source:        source,
		Blocks:        blocks,
		TopLevelCount: topLevelCount,
		Inlines:       inlines,
		LineCount:     lineCount,
		lines:         lines,
	}
}
