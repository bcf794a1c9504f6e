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

func TestATXHeading(t *testing.T) {
	tokens := mustTokenize(t, "## hello")
	require.Equal(t, []Kind{ATXHeadingKind, TextKind, ATXHeadingKind.End()}, kindsOf(tokens))
	require.Equal(t, 2, tokens[0].HeadingLevel)
	require.Equal(t, "hello", tokens[1].Content)
}

func TestThematicBreak(t *testing.T) {
	tokens := mustTokenize(t, "***")
	require.Equal(t, []Kind{ThematicBreakKind}, kindsOf(tokens))
}

func TestBlankLineBetweenParagraphsMakesTwoParagraphs(t *testing.T) {
	tokens := mustTokenize(t, "a\n\nb")
	require.Equal(t, []Kind{
		ParagraphKind, TextKind, ParagraphKind.End(),
		BlankLineKind,
		ParagraphKind, TextKind, ParagraphKind.End(),
	}, kindsOf(tokens))
}

func TestBlockQuoteWrapsParagraph(t *testing.T) {
	tokens := mustTokenize(t, "> quoted")
	require.Equal(t, []Kind{
		BlockQuoteKind, ParagraphKind, TextKind, ParagraphKind.End(), BlockQuoteKind.End(),
	}, kindsOf(tokens))
	require.Equal(t, "quoted", tokens[2].Content)
}

func TestBlockQuoteLazyContinuation(t *testing.T) {
	// The second line omits '>' but continues the paragraph lazily,
	// per the block quote's lazy-continuation rule.
	tokens := mustTokenize(t, "> a\nb")
	require.Equal(t, []Kind{
		BlockQuoteKind, ParagraphKind, TextKind, ParagraphKind.End(), BlockQuoteKind.End(),
	}, kindsOf(tokens))
	require.Equal(t, "a\nb", tokens[2].Content)
}

func TestIndentedCodeBlock(t *testing.T) {
	tokens := mustTokenize(t, "    code here")
	require.Equal(t, []Kind{IndentedCodeBlockKind, TextKind, IndentedCodeBlockKind.End()}, kindsOf(tokens))
}

func TestFencedCodeBlockWithInfoString(t *testing.T) {
	tokens := mustTokenize(t, "```go\nfunc f() {}\n```")
	require.Equal(t, []Kind{FencedCodeBlockKind, TextKind, FencedCodeBlockKind.End()}, kindsOf(tokens))
	require.Equal(t, "go", tokens[0].InfoString)
	require.Equal(t, byte('`'), tokens[0].FenceChar)
	require.Equal(t, 3, tokens[0].FenceCount)
}

func TestLinkReferenceDefinitionConsumedNotEmittedAsParagraph(t *testing.T) {
	tokens := mustTokenize(t, "[foo]: /url \"title\"\n\n[foo]")
	var sawDef bool
	for _, tok := range tokens {
		if tok.Kind == LinkReferenceDefinitionKind {
			sawDef = true
			require.Equal(t, "/url", tok.URI)
			require.Equal(t, "title", tok.Title)
			require.True(t, tok.DidAddDefinition)
		}
	}
	require.True(t, sawDef, "a standalone link reference definition line must emit a link_ref_def token")
}

func TestDuplicateLinkReferenceDefinitionMarkedSkipped(t *testing.T) {
	tokens := mustTokenize(t, "[foo]: /url1\n\n[foo]: /url2\n")
	var defs []Token
	for _, tok := range tokens {
		if tok.Kind == LinkReferenceDefinitionKind {
			defs = append(defs, tok)
		}
	}
	require.Len(t, defs, 2)
	require.True(t, defs[0].DidAddDefinition)
	require.False(t, defs[1].DidAddDefinition, "the first definition for a label wins; later duplicates are marked skip")
}
