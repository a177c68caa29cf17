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
	"fmt"
	"io"
	"strconv"
)

// RenderOptions controls optional behavior of [RenderHTML]. The zero value
// renders raw HTML through unfiltered.
type RenderOptions struct {
	// FilterRawHTML, when non-nil, is consulted for every raw HTML block
	// and inline span before it is written. Tags for which it returns
	// false are escaped instead of passed through, the way GitHub's
	// sanitizing renderer filters a fixed tag denylist. See
	// [FilterTagDenylist].
	FilterRawHTML func(tagName string) bool
}

// Sink is the minimal output contract the renderer needs: anything an
// [io.Writer] already satisfies.
type Sink = io.Writer

// RenderHTML is the streaming single-pass renderer: it
// walks doc's blocks and inlines once, in document order, writing HTML
// directly to w with no intermediate tree or string-builder allocation
// beyond what w itself buffers.
func RenderHTML(w Sink, doc *Document, opts *RenderOptions) error {
	if opts == nil {
		opts = &RenderOptions{}
	}
	r := &renderState{w: w, doc: doc, opts: opts}
	if err := r.blocks(doc.TopLevelBlocks()); err != nil {
		return fmt.Errorf("render markdown to html: %w", err)
	}
	return nil
}

// ToHTML parses source and renders it to HTML in one call. dst, if it has
// spare capacity, is reused as the output buffer; sizing it to roughly
// 2.5x the input length avoids a reallocation in the common case.
func ToHTML(dst []byte, source []byte) (string, error) {
	doc := Parse(source)
	buf := growHTMLBuffer(dst, len(source))
	w := &sliceWriter{buf: buf}
	if err := RenderHTML(w, doc, nil); err != nil {
		return "", err
	}
	return string(w.buf), nil
}

func growHTMLBuffer(dst []byte, sourceLen int) []byte {
	want := sourceLen + sourceLen*3/2
	if cap(dst) >= want {
		return dst[:0]
	}
	return make([]byte, 0, want)
}

// sliceWriter is an io.Writer backed by a growable byte slice, used so
// ToHTML never needs a bytes.Buffer's extra indirection.
type sliceWriter struct{ buf []byte }

func (s *sliceWriter) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

type renderState struct {
	w    Sink
	doc  *Document
	opts *RenderOptions
}

func (r *renderState) blocks(blocks []Block) error {
	for i := range blocks {
		if err := r.block(&blocks[i]); err != nil {
			return err
		}
	}
	return nil
}

// block dispatches on the block's kind.
func (r *renderState) block(b *Block) error {
	switch b.Kind {
	case Paragraph:
		return r.wrapInline(b, "p")
	case Heading:
		tag := "h" + strconv.Itoa(b.D1)
		if b.D1 < 1 || b.D1 > 6 {
			tag = "h1"
		}
		return r.wrapInline(b, tag)
	case CodeBlock:
		return r.codeBlock(b)
	case ThematicBreak:
		return r.writeString("<hr />\n")
	case HtmlBlock:
		return r.htmlBlock(b)
	case BlankLine:
		return nil
	case Quote:
		if err := r.writeString("<blockquote>\n"); err != nil {
			return err
		}
		if err := r.blocks(r.doc.Children(b)); err != nil {
			return err
		}
		return r.writeString("</blockquote>\n")
	case List:
		return r.list(b)
	case ListItem:
		if err := r.writeString("<li>"); err != nil {
			return err
		}
		if err := r.listItemChildren(b); err != nil {
			return err
		}
		return r.writeString("</li>\n")
	default:
		return nil
	}
}

// listItemChildren renders a ListItem's block children. In a tight list, a
// Paragraph child's own <p> wrapper is skipped and only its inline
// content is written; every other child kind renders normally regardless
// of tightness.
func (r *renderState) listItemChildren(b *Block) error {
	tight := !b.Loose
	children := r.doc.Children(b)
	for i := range children {
		c := &children[i]
		if tight && c.Kind == Paragraph {
			if err := r.inlines(r.doc.InlineChildren(c)); err != nil {
				return err
			}
			continue
		}
		if err := r.block(c); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderState) wrapInline(b *Block, tag string) error {
	if err := r.writeString("<" + tag + ">"); err != nil {
		return err
	}
	if err := r.inlines(r.doc.InlineChildren(b)); err != nil {
		return err
	}
	return r.writeString("</" + tag + ">\n")
}

func (r *renderState) codeBlock(b *Block) error {
	if err := r.writeString("<pre><code"); err != nil {
		return err
	}
	if info := r.doc.InfoString(b); len(info) > 0 {
		lang := info
		for i, c := range lang {
			if c == ' ' || c == '\t' {
				lang = lang[:i]
				break
			}
		}
		if len(lang) > 0 {
			if err := r.writeString(` class="language-`); err != nil {
				return err
			}
			if err := writeEscapedAttr(r.w, lang); err != nil {
				return err
			}
			if err := r.writeString(`"`); err != nil {
				return err
			}
		}
	}
	if err := r.writeString(">"); err != nil {
		return err
	}
	// Content lines shed the indentation that introduced the block: the
	// opening fence's own indent for a fenced block, the four-column
	// margin for an indented one.
	strip := b.Column
	if !b.D3 {
		strip = codeBlockIndentLimit
	}
	for line := b.ContentStart; line < b.ContentEnd; line++ {
		text := stripColumns(r.doc.codeBlockLine(line).slice(r.doc.Source), strip)
		if err := writeEscapedText(r.w, text); err != nil {
			return err
		}
		if err := r.writeString("\n"); err != nil {
			return err
		}
	}
	return r.writeString("</code></pre>\n")
}

func (r *renderState) htmlBlock(b *Block) error {
	if err := r.rawHTML(r.doc.Text(b)); err != nil {
		return err
	}
	return r.writeString("\n")
}

func (r *renderState) rawHTML(text []byte) error {
	if r.opts.FilterRawHTML != nil && !r.opts.FilterRawHTML(htmlTagName(text)) {
		return writeEscapedText(r.w, text)
	}
	return r.writeBytes(text)
}

func (r *renderState) list(b *Block) error {
	tag := "ul"
	if b.D3 {
		tag = "ol"
	}
	open := "<" + tag + ">\n"
	if b.D3 && b.D1 != 1 {
		open = "<" + tag + ` start="` + strconv.Itoa(b.D1) + `">` + "\n"
	}
	if err := r.writeString(open); err != nil {
		return err
	}
	if err := r.blocks(r.doc.Children(b)); err != nil {
		return err
	}
	return r.writeString("</" + tag + ">\n")
}

func (r *renderState) inlines(nodes []Inline) error {
	for i := range nodes {
		if err := r.inline(&nodes[i]); err != nil {
			return err
		}
	}
	return nil
}

// inline dispatches on the inline node's kind.
func (r *renderState) inline(n *Inline) error {
	switch n.Kind {
	case Literal:
		return writeEscapedText(r.w, r.doc.InlineText(n))
	case Code:
		if err := r.writeString("<code>"); err != nil {
			return err
		}
		if err := writeEscapedText(r.w, r.doc.InlineText(n)); err != nil {
			return err
		}
		return r.writeString("</code>")
	case Emphasis:
		if err := r.writeString("<em>"); err != nil {
			return err
		}
		if err := r.inlines(r.doc.InlineChildrenOf(n)); err != nil {
			return err
		}
		return r.writeString("</em>")
	case Strong:
		if err := r.writeString("<strong>"); err != nil {
			return err
		}
		if err := r.inlines(r.doc.InlineChildrenOf(n)); err != nil {
			return err
		}
		return r.writeString("</strong>")
	case Link:
		return r.link(n)
	case Image:
		return r.image(n)
	case SoftLineBreak:
		return r.writeString(" ")
	case HardLineBreak:
		return r.writeString("<br />\n")
	case HtmlInline:
		return r.rawHTML(r.doc.InlineText(n))
	case AutoLink:
		return r.autoLink(n)
	default:
		return nil
	}
}

func (r *renderState) link(n *Inline) error {
	if err := r.writeString(`<a href="`); err != nil {
		return err
	}
	if err := writeEscapedAttr(r.w, normalizeURI(r.doc.LinkURL(n))); err != nil {
		return err
	}
	if err := r.writeString(`"`); err != nil {
		return err
	}
	if title, ok := r.doc.LinkTitle(n); ok {
		if err := r.writeString(` title="`); err != nil {
			return err
		}
		if err := writeEscapedAttr(r.w, title); err != nil {
			return err
		}
		if err := r.writeString(`"`); err != nil {
			return err
		}
	}
	if err := r.writeString(">"); err != nil {
		return err
	}
	if err := r.inlines(r.doc.InlineChildrenOf(n)); err != nil {
		return err
	}
	return r.writeString("</a>")
}

func (r *renderState) image(n *Inline) error {
	if err := r.writeString(`<img src="`); err != nil {
		return err
	}
	if err := writeEscapedAttr(r.w, normalizeURI(r.doc.LinkURL(n))); err != nil {
		return err
	}
	if err := r.writeString(`" alt="`); err != nil {
		return err
	}
	if err := writeEscapedAttr(r.w, flattenAltText(r.doc, r.doc.InlineChildrenOf(n))); err != nil {
		return err
	}
	if err := r.writeString(`"`); err != nil {
		return err
	}
	if title, ok := r.doc.LinkTitle(n); ok {
		if err := r.writeString(` title="`); err != nil {
			return err
		}
		if err := writeEscapedAttr(r.w, title); err != nil {
			return err
		}
		if err := r.writeString(`"`); err != nil {
			return err
		}
	}
	return r.writeString(` />`)
}

func (r *renderState) autoLink(n *Inline) error {
	url := r.doc.LinkURL(n)
	href := url
	if containsByte(url, '@') && !containsByte(url, ':') {
		href = append([]byte("mailto:"), url...)
	}
	if err := r.writeString(`<a href="`); err != nil {
		return err
	}
	if err := writeEscapedAttr(r.w, normalizeURI(href)); err != nil {
		return err
	}
	if err := r.writeString(`">`); err != nil {
		return err
	}
	if err := writeEscapedText(r.w, url); err != nil {
		return err
	}
	return r.writeString("</a>")
}

func (r *renderState) writeString(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

func (r *renderState) writeBytes(b []byte) error {
	_, err := r.w.Write(b)
	return err
}

// flattenAltText recursively concatenates an image's inline children into
// plain text: alt text may contain no markup, so emphasis/links are
// unwrapped to their text, a soft break becomes a space, a hard break a
// newline, and raw inline HTML contributes nothing.
func flattenAltText(doc *Document, nodes []Inline) []byte {
	var out []byte
	for i := range nodes {
		n := &nodes[i]
		switch n.Kind {
		case Literal, Code, AutoLink:
			out = append(out, doc.InlineText(n)...)
		case Emphasis, Strong, Link, Image:
			out = append(out, flattenAltText(doc, doc.InlineChildrenOf(n))...)
		case SoftLineBreak:
			out = append(out, ' ')
		case HardLineBreak:
			out = append(out, '\n')
		}
	}
	return out
}

func containsByte(b []byte, c byte) bool {
	for _, x := range b {
		if x == c {
			return true
		}
	}
	return false
}

// htmlTagName extracts the tag name from a raw HTML span such as "<div>"
// or "</div>", for use with [RenderOptions.FilterRawHTML]. It returns ""
// for comments, processing instructions, and declarations.
func htmlTagName(tag []byte) string {
	i := 0
	if i < len(tag) && tag[i] == '<' {
		i++
	}
	if i < len(tag) && tag[i] == '/' {
		i++
	}
	start := i
	for i < len(tag) && (isASCIILetter(tag[i]) || (i > start && isASCIIDigit(tag[i]))) {
		i++
	}
	return string(tag[start:i])
}
