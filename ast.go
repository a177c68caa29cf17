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

// BlockKind is an enumeration of the kinds of [Block] a document can
// contain.
type BlockKind uint8

const (
	// Paragraph is a run of inline text.
	Paragraph BlockKind = 1 + iota
	// Heading is an ATX heading ("# Title").
	Heading
	// CodeBlock is a fenced or indented verbatim code block.
	CodeBlock
	// ThematicBreak is a horizontal rule ("---").
	ThematicBreak
	// HtmlBlock is a single line of raw HTML recognized as a block.
	HtmlBlock
	// BlankLine is an otherwise-empty line between blocks.
	BlankLine
	// Quote is a block quote container.
	Quote
	// List is an ordered or unordered list container.
	List
	// ListItem is a single item of a [List].
	ListItem
)

// IsLeaf reports whether blocks of this kind never have block children
// (Paragraph, Heading, CodeBlock, ThematicBreak, HtmlBlock, BlankLine).
func (k BlockKind) IsLeaf() bool {
	switch k {
	case Paragraph, Heading, CodeBlock, ThematicBreak, HtmlBlock, BlankLine:
		return true
	default:
		return false
	}
}

// IsContainer reports whether blocks of this kind hold other blocks as
// children (Quote, List, ListItem).
func (k BlockKind) IsContainer() bool {
	return !k.IsLeaf()
}

func (k BlockKind) String() string {
	switch k {
	case Paragraph:
		return "Paragraph"
	case Heading:
		return "Heading"
	case CodeBlock:
		return "CodeBlock"
	case ThematicBreak:
		return "ThematicBreak"
	case HtmlBlock:
		return "HtmlBlock"
	case BlankLine:
		return "BlankLine"
	case Quote:
		return "Quote"
	case List:
		return "List"
	case ListItem:
		return "ListItem"
	default:
		return "BlockKind(0)"
	}
}

// InlineKind is an enumeration of the kinds of [Inline] node a leaf block's
// content can be tokenized into.
type InlineKind uint8

const (
	// Literal is a run of plain text.
	Literal InlineKind = 1 + iota
	// Emphasis wraps its children in "<em>".
	Emphasis
	// Strong wraps its children in "<strong>".
	Strong
	// Code is an inline code span.
	Code
	// Link is an inline link; children are the link text.
	Link
	// Image is an inline image; children are the alt text.
	Image
	// SoftLineBreak is a line break within a paragraph rendered as whitespace.
	SoftLineBreak
	// HardLineBreak is an explicit line break rendered as "<br />".
	HardLineBreak
	// HtmlInline is a raw inline HTML tag or comment.
	HtmlInline
	// AutoLink is a bare "<http://…>" or "<user@host>" form.
	AutoLink
)

func (k InlineKind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Emphasis:
		return "Emphasis"
	case Strong:
		return "Strong"
	case Code:
		return "Code"
	case Link:
		return "Link"
	case Image:
		return "Image"
	case SoftLineBreak:
		return "SoftLineBreak"
	case HardLineBreak:
		return "HardLineBreak"
	case HtmlInline:
		return "HtmlInline"
	case AutoLink:
		return "AutoLink"
	default:
		return "InlineKind(0)"
	}
}

// Block is a fixed-size value record describing one structural element of
// a document. Blocks are never allocated individually and
// never mutated after [Parse] returns; they live inside a [Document]'s flat
// block array and reference the document's source buffer by offset only.
type Block struct {
	Kind BlockKind

	// Line and Column are the 0-based source location where the block
	// begins. Column accounts for tab expansion to 4-column stops.
	Line   int
	Column int

	// ContentStart and ContentEnd bound the block's own text for leaf
	// kinds. For CodeBlock, these are 0-based *line numbers* (inclusive
	// start, exclusive end) into the document's line table rather than
	// byte offsets, so a multi-line block needs no contiguous byte range.
	// For every other leaf kind they are byte offsets into the source
	// buffer. Zero for container kinds.
	ContentStart int
	ContentEnd   int

	// LineCount is the number of source lines the block spans. Meaningful
	// for leaf kinds.
	LineCount int

	// FirstChild and ChildCount describe the contiguous range
	// [FirstChild, FirstChild+ChildCount) of the document's block array
	// that holds this block's children. Meaningful for container kinds
	// only; zero for leaves.
	FirstChild int
	ChildCount int

	// FirstInline and InlineCount describe the contiguous range of the
	// document's inline array holding this leaf's inline content.
	// Meaningful only for Paragraph and Heading.
	FirstInline int
	InlineCount int

	// DataStart and DataEnd bound kind-specific secondary text: the info
	// string of a fenced CodeBlock.
	DataStart int
	DataEnd   int

	// D1, D2, D3 are kind-specific scalars:
	//   Heading:       D1 = level (1..6), D2 = '#'
	//   CodeBlock:     D1 = fence length, D2 = fence char ('`', '~', or 0
	//                  for an indented block), D3 = is-fenced
	//   List:          D1 = ordered start number, D2 = bullet/delimiter
	//                  char, D3 = is-ordered
	//   ThematicBreak: D2 = the rule character
	D1 int
	D2 byte
	D3 bool

	// Loose reports whether a List or ListItem is "loose" rather than
	// "tight": a list is loose if any non-final item is separated from the next
	// by a blank line, or if any item directly contains two block
	// children with a blank line between them. A loose list's items
	// render their Paragraph children wrapped in <p>; a tight list's do
	// not. Meaningless for every other kind.
	Loose bool
}

// Inline is a fixed-size value record describing one inline element of a
// leaf block's content.
type Inline struct {
	Kind InlineKind

	// ContentStart and ContentEnd are the primary text span: literal/code
	// text, a link's visible text range, an image's alt-text range, an
	// autolink's URL, or raw HTML.
	ContentStart int
	ContentEnd   int

	// LinkURLStart/LinkURLEnd and LinkTitleStart/LinkTitleEnd describe a
	// Link or Image's destination and optional title. LinkTitleStart == -1
	// means no title was given (the [NullSpan] sentinel).
	LinkURLStart   int
	LinkURLEnd     int
	LinkTitleStart int
	LinkTitleEnd   int

	// DelimiterChar and DelimiterCount describe an Emphasis (count 1) or
	// Strong (count 2) node's opening/closing marker character.
	DelimiterChar  byte
	DelimiterCount int

	// FirstChild and ChildCount describe the contiguous range of the
	// document's inline array holding this node's children. Only
	// Emphasis, Strong, Link, and Image have children.
	FirstChild int
	ChildCount int
}

// Document is the immutable bundle a parse produces: a borrowed source
// buffer plus two flat, index-linked arrays. A Document
// must not outlive the buffer it was parsed from.
type Document struct {
	// Source is the buffer the document was parsed from. The document is
	// only meaningful while this slice is unmodified and alive.
	Source []byte

	// Blocks holds every block in the document. The first TopLevelCount
	// entries are the document's direct children, in source order;
	// descendants of a container follow it, in the contiguous range
	// [FirstChild, FirstChild+ChildCount).
	Blocks []Block
	// TopLevelCount is the number of entries at the front of Blocks that
	// are top-level (direct children of the implicit document root).
	TopLevelCount int

	// Inlines holds every inline node produced while tokenizing the
	// document's leaf blocks, addressed the same way as Blocks.
	Inlines []Inline

	// LineCount is the total number of lines in Source, as segmented by
	// the line scanner.
	LineCount int

	// lines is the pass-1 line index, retained so that a
	// CodeBlock's line-numbered content range can be resolved to byte
	// spans without re-scanning the whole source. The first LineCount
	// entries are the source's own lines; entries past that are the
	// dequoted/indent-stripped interior lines of Quote and ListItem
	// containers, appended during parse so nested code blocks resolve
	// against the same table.
	lines []Span
}

// codeBlockLine returns the byte span of the n'th entry of the line table.
func (d *Document) codeBlockLine(n int) Span {
	return d.lines[n]
}

// TopLevelBlocks returns the document's top-level blocks.
func (d *Document) TopLevelBlocks() []Block {
	return d.Blocks[:d.TopLevelCount]
}

// Children returns b's child blocks, given that b belongs to d's block
// array. It panics if b is not a container block.
func (d *Document) Children(b *Block) []Block {
	if !b.Kind.IsContainer() {
		panic("commonmark: Children called on a leaf block")
	}
	return d.Blocks[b.FirstChild : b.FirstChild+b.ChildCount]
}

// InlineChildren returns the inline nodes attached to leaf block b.
func (d *Document) InlineChildren(b *Block) []Inline {
	return d.Inlines[b.FirstInline : b.FirstInline+b.InlineCount]
}

// InlineChildrenOf returns in's inline children.
func (d *Document) InlineChildrenOf(in *Inline) []Inline {
	return d.Inlines[in.FirstChild : in.FirstChild+in.ChildCount]
}

// Text returns the source bytes a block's content span covers. It panics
// for container blocks and for CodeBlock (whose ContentStart/ContentEnd
// are indices into the document's line table, not byte offsets).
func (d *Document) Text(b *Block) []byte {
	if b.Kind.IsContainer() || b.Kind == CodeBlock {
		panic("commonmark: Text called on a block with no byte-offset content span")
	}
	return d.Source[b.ContentStart:b.ContentEnd]
}

// InfoString returns the fenced code block's info string, or nil if there
// is none.
func (d *Document) InfoString(b *Block) []byte {
	if b.Kind != CodeBlock || b.DataStart == b.DataEnd {
		return nil
	}
	return d.Source[b.DataStart:b.DataEnd]
}

// InlineText returns the source bytes an inline node's content span covers.
func (d *Document) InlineText(in *Inline) []byte {
	return d.Source[in.ContentStart:in.ContentEnd]
}

// LinkURL returns a Link/Image/AutoLink node's destination text.
func (d *Document) LinkURL(in *Inline) []byte {
	return d.Source[in.LinkURLStart:in.LinkURLEnd]
}

// LinkTitle returns a Link/Image node's title text and whether one was
// present.
func (d *Document) LinkTitle(in *Inline) ([]byte, bool) {
	if in.LinkTitleStart < 0 {
		return nil, false
	}
	return d.Source[in.LinkTitleStart:in.LinkTitleEnd], true
}
