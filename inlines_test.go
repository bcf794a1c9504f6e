// Copyright 2023 Ross Light
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

package mdtoken

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeSpan(t *testing.T) {
	tokens := mustTokenize(t, "`foo`")
	require.Equal(t, []Kind{ParagraphKind, InlineCodeSpanKind, ParagraphKind.End()}, kindsOf(tokens))
	require.Equal(t, "foo", tokens[1].Content)
}

func TestCodeSpanStripsOneLeadingAndTrailingSpace(t *testing.T) {
	tokens := mustTokenize(t, "`` `foo` ``")
	require.Equal(t, []Kind{ParagraphKind, InlineCodeSpanKind, ParagraphKind.End()}, kindsOf(tokens))
	require.Equal(t, "`foo`", tokens[1].Content)
}

func TestURIAutolink(t *testing.T) {
	tokens := mustTokenize(t, "<http://example.com>")
	require.Equal(t, []Kind{ParagraphKind, URIAutolinkKind, ParagraphKind.End()}, kindsOf(tokens))
	require.Equal(t, "http://example.com", tokens[1].Content)
}

func TestEmailAutolink(t *testing.T) {
	tokens := mustTokenize(t, "<foo@bar.example.com>")
	require.Equal(t, []Kind{ParagraphKind, EmailAutolinkKind, ParagraphKind.End()}, kindsOf(tokens))
	require.Equal(t, "foo@bar.example.com", tokens[1].Content)
}

func TestRawInlineHTML(t *testing.T) {
	tokens := mustTokenize(t, "a <span class=\"x\"> b")
	require.Equal(t, []Kind{ParagraphKind, TextKind, RawHTMLKind, TextKind, ParagraphKind.End()}, kindsOf(tokens))
	require.Equal(t, `<span class="x">`, tokens[2].Content)
}

func TestHardBreakTrailingSpaces(t *testing.T) {
	tokens := mustTokenize(t, "foo  \nbar")
	require.Equal(t, []Kind{ParagraphKind, TextKind, HardBreakKind, TextKind, ParagraphKind.End()}, kindsOf(tokens))
}

func TestBackslashHardBreak(t *testing.T) {
	tokens := mustTokenize(t, "foo\\\nbar")
	require.Equal(t, []Kind{ParagraphKind, TextKind, HardBreakKind, TextKind, ParagraphKind.End()}, kindsOf(tokens))
}

func TestSimpleStrongEmphasis(t *testing.T) {
	tokens := mustTokenize(t, "**foo**")
	require.Equal(t, []Kind{
		ParagraphKind, EmphasisKind, TextKind, EmphasisKind.End(), ParagraphKind.End(),
	}, kindsOf(tokens))
	require.Equal(t, 2, tokens[1].EmphasisLength)
	require.Equal(t, byte('*'), tokens[1].MarkerChar)
	require.Equal(t, "foo", tokens[2].Content)
}

func TestInlineLink(t *testing.T) {
	tokens := mustTokenize(t, `[foo](/url "title")`)
	require.Equal(t, []Kind{
		ParagraphKind, LinkStartKind, TextKind, LinkStartKind.End(), ParagraphKind.End(),
	}, kindsOf(tokens))
	require.Equal(t, "/url", tokens[1].URI)
	require.Equal(t, "title", tokens[1].Title)
	require.Equal(t, "foo", tokens[2].Content)
}

func TestFullReferenceLink(t *testing.T) {
	tokens := mustTokenize(t, "[foo][bar]\n\n[bar]: /url\n")
	require.Equal(t, LinkStartKind, tokens[1].Kind)
	require.Equal(t, "/url", tokens[1].URI)
}

func TestShortcutReferenceLink(t *testing.T) {
	tokens := mustTokenize(t, "[foo]\n\n[foo]: /url\n")
	require.Equal(t, LinkStartKind, tokens[1].Kind)
	require.Equal(t, "/url", tokens[1].URI)
}

func TestImageIsNotALink(t *testing.T) {
	tokens := mustTokenize(t, `![alt](/img.png)`)
	require.Equal(t, []Kind{
		ParagraphKind, ImageStartKind, TextKind, ImageStartKind.End(), ParagraphKind.End(),
	}, kindsOf(tokens))
	require.Equal(t, "/img.png", tokens[1].URI)
}

func TestLinkDeactivatesEarlierBrackets(t *testing.T) {
	// Per the nearest-active-bracket / no-nested-links rule: once the
	// inner "[bar](/b)" resolves as a link, the outer "[" is
	// deactivated, so the whole thing is not itself a link.
	tokens := mustTokenize(t, `[foo [bar](/b)`)
	var linkStarts int
	for _, tok := range tokens {
		if tok.Kind == LinkStartKind {
			linkStarts++
		}
	}
	require.Equal(t, 1, linkStarts, "the outer '[' should not resolve into a second, nested link")
}

func TestEntityDecodingInText(t *testing.T) {
	tokens := mustTokenize(t, "a &amp; b")
	require.Equal(t, []Kind{ParagraphKind, TextKind, ParagraphKind.End()}, kindsOf(tokens))
	require.Equal(t, "a & b", tokens[1].Content)
}

func TestEntityDecodingFullHTML5Table(t *testing.T) {
	// defaultEntities only carries caller overrides; the bulk of the
	// HTML5 named-entity list must come from the html.UnescapeString
	// fallback in matchEntity, not a hand-maintained subset.
	tokens := mustTokenize(t, "&spades; &frac12;")
	require.Equal(t, []Kind{ParagraphKind, TextKind, ParagraphKind.End()}, kindsOf(tokens))
	require.Equal(t, "♠ ½", tokens[1].Content)
}

func TestBacktickPrecedesEmphasisInPrecedence(t *testing.T) {
	// A code span's backticks must not be treated as delimiter text;
	// '*' inside it is literal, never emphasis.
	tokens := mustTokenize(t, "`*foo*`")
	require.Equal(t, []Kind{ParagraphKind, InlineCodeSpanKind, ParagraphKind.End()}, kindsOf(tokens))
	require.Equal(t, "*foo*", tokens[1].Content)
}
