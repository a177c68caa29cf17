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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTryHeading(t *testing.T) {
	tests := []struct {
		line      string
		wantLevel int
		wantText  string
	}{
		{"# Title", 1, "Title"},
		{"## Title", 2, "Title"},
		{"###### Title", 6, "Title"},
		{"####### Title", 0, ""},
		{"#Title", 0, ""},
		{"#", 1, ""},
		{"# Title #", 1, "Title"},
		{"# Title ###", 1, "Title"},
	}
	for _, test := range tests {
		h := tryHeading([]byte(test.line))
		if test.wantLevel == 0 {
			if h != nil {
				t.Errorf("tryHeading(%q) = %+v; want nil", test.line, h)
			}
			continue
		}
		if h == nil {
			t.Fatalf("tryHeading(%q) = nil; want level %d", test.line, test.wantLevel)
		}
		if h.level != test.wantLevel {
			t.Errorf("tryHeading(%q) level = %d; want %d", test.line, h.level, test.wantLevel)
		}
		got := string(h.content.slice([]byte(test.line)))
		if got != test.wantText {
			t.Errorf("tryHeading(%q) text = %q; want %q", test.line, got, test.wantText)
		}
	}
}

func TestIsThematicBreak(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"---", true},
		{"***", true},
		{"___", true},
		{"- - -", true},
		{"--", false},
		{"- - ", false},
		{"-a-", false},
		{"***-", false},
	}
	for _, test := range tests {
		if got := isThematicBreak([]byte(test.line)); got != test.want {
			t.Errorf("isThematicBreak(%q) = %v; want %v", test.line, got, test.want)
		}
	}
}

func TestTryCodeFence(t *testing.T) {
	tests := []struct {
		line     string
		wantOK   bool
		wantChar byte
		wantN    int
		wantInfo string
	}{
		{"```", true, '`', 3, ""},
		{"~~~~", true, '~', 4, ""},
		{"``", false, 0, 0, ""},
		{"```go", true, '`', 3, "go"},
		{"``` go extra", true, '`', 3, "go extra"},
		{"```go`", false, 0, 0, ""},
	}
	for _, test := range tests {
		f := tryCodeFence([]byte(test.line))
		if !test.wantOK {
			if f != nil {
				t.Errorf("tryCodeFence(%q) = %+v; want nil", test.line, f)
			}
			continue
		}
		if f == nil {
			t.Fatalf("tryCodeFence(%q) = nil; want fence", test.line)
		}
		if f.char != test.wantChar || f.n != test.wantN {
			t.Errorf("tryCodeFence(%q) = {%c, %d}; want {%c, %d}", test.line, f.char, f.n, test.wantChar, test.wantN)
		}
		gotInfo := ""
		if f.info.IsValid() {
			gotInfo = string(f.info.slice([]byte(test.line)))
		}
		if gotInfo != test.wantInfo {
			t.Errorf("tryCodeFence(%q) info = %q; want %q", test.line, gotInfo, test.wantInfo)
		}
	}
}

func TestParseListMarker(t *testing.T) {
	tests := []struct {
		line        string
		wantOK      bool
		wantOrdered bool
		wantDelim   byte
		wantStart   int
	}{
		{"- item", true, false, '-', 0},
		{"* item", true, false, '*', 0},
		{"+ item", true, false, '+', 0},
		{"1. item", true, true, '.', 1},
		{"42) item", true, true, ')', 42},
		{"-item", false, false, 0, 0},
		{"1.item", false, false, 0, 0},
		{"a. item", false, false, 0, 0},
	}
	for _, test := range tests {
		m := parseListMarker([]byte(test.line))
		if m.ok != test.wantOK {
			t.Errorf("parseListMarker(%q).ok = %v; want %v", test.line, m.ok, test.wantOK)
			continue
		}
		if !test.wantOK {
			continue
		}
		if m.ordered != test.wantOrdered || m.delim != test.wantDelim || m.start != test.wantStart {
			t.Errorf("parseListMarker(%q) = %+v; want ordered=%v delim=%c start=%d",
				test.line, m, test.wantOrdered, test.wantDelim, test.wantStart)
		}
	}
}

// blockOutline is a simplified, comparison-friendly projection of a
// Document's block tree: kind names only, nested to mirror container
// structure. Tests compare this instead of the raw offset-bearing arrays.
type blockOutline struct {
	Kind     string
	Children []blockOutline `json:",omitempty"`
}

func outlineBlocks(doc *Document, blocks []Block) []blockOutline {
	out := make([]blockOutline, len(blocks))
	for i, b := range blocks {
		o := blockOutline{Kind: b.Kind.String()}
		if b.Kind.IsContainer() {
			o.Children = outlineBlocks(doc, doc.Children(&b))
		}
		out[i] = o
	}
	return out
}

func TestParseBlocksOutline(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []blockOutline
	}{
		{
			name:   "paragraph",
			source: "hello world\n",
			want:   []blockOutline{{Kind: "Paragraph"}},
		},
		{
			name:   "headingAndParagraph",
			source: "# Title\n\nBody text.\n",
			want: []blockOutline{
				{Kind: "Heading"},
				{Kind: "BlankLine"},
				{Kind: "Paragraph"},
			},
		},
		{
			name:   "thematicBreak",
			source: "a\n\n---\n\nb\n",
			want: []blockOutline{
				{Kind: "Paragraph"},
				{Kind: "BlankLine"},
				{Kind: "ThematicBreak"},
				{Kind: "BlankLine"},
				{Kind: "Paragraph"},
			},
		},
		{
			name:   "fencedCode",
			source: "```go\nx := 1\n```\n",
			want:   []blockOutline{{Kind: "CodeBlock"}},
		},
		{
			name:   "blockquote",
			source: "> quoted text\n> more\n",
			want: []blockOutline{
				{Kind: "Quote", Children: []blockOutline{{Kind: "Paragraph"}}},
			},
		},
		{
			name:   "bulletList",
			source: "- one\n- two\n",
			want: []blockOutline{
				{Kind: "List", Children: []blockOutline{
					{Kind: "ListItem", Children: []blockOutline{{Kind: "Paragraph"}}},
					{Kind: "ListItem", Children: []blockOutline{{Kind: "Paragraph"}}},
				}},
			},
		},
		{
			name:   "indentedCode",
			source: "    code line\n",
			want:   []blockOutline{{Kind: "CodeBlock"}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc := Parse([]byte(test.source))
			got := outlineBlocks(doc, doc.TopLevelBlocks())
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Parse(%q) block outline mismatch (-want +got):\n%s", test.source, diff)
			}
		})
	}
}

// TestInvariantChildRangesContiguous checks that every container's
// children occupy a contiguous range strictly after it in the array.
func TestInvariantChildRangesContiguous(t *testing.T) {
	source := "# H\n\n> quoted\n\n- a\n- b\n\npara *em* **strong** [l](u) `c`\n"
	doc := Parse([]byte(source))
	for i, b := range doc.Blocks {
		if !b.Kind.IsContainer() {
			continue
		}
		if b.FirstChild <= i {
			t.Errorf("block %d (%s): FirstChild %d is not after its own index", i, b.Kind, b.FirstChild)
		}
		if b.FirstChild+b.ChildCount > len(doc.Blocks) {
			t.Errorf("block %d (%s): child range [%d,%d) exceeds array length %d", i, b.Kind, b.FirstChild, b.FirstChild+b.ChildCount, len(doc.Blocks))
		}
	}
	for i, in := range doc.Inlines {
		if in.ChildCount == 0 {
			continue
		}
		if in.FirstChild <= i {
			t.Errorf("inline %d (%s): FirstChild %d is not after its own index", i, in.Kind, in.FirstChild)
		}
	}
}

// TestParseTotalNeverPanics checks that there is no input, however
// malformed, that Parse fails to handle.
func TestParseTotalNeverPanics(t *testing.T) {
	inputs := []string{
		"", "\n", "\r", "\r\n", "   ", "#", "```", "> ", "- ", "***",
		"1.", "[", "![", "](", "`", "<", "\x00\x01\x02",
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q) panicked: %v", in, r)
				}
			}()
			doc := Parse([]byte(in))
			var total int
			for _, b := range doc.TopLevelBlocks() {
				if b.Kind.IsLeaf() {
					total++
				}
			}
		}()
	}
}
