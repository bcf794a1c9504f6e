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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// tokenStack replays a token sequence against a stack of open Kinds,
// the same invariant the flat renderer in render.go relies on: every
// end token must close the nearest unclosed start of its own Start()
// kind.
func tokenStack(t *testing.T, tokens []Token) []Kind {
	t.Helper()
	var stack []Kind
	for _, tok := range tokens {
		if tok.Kind.IsEnd() {
			require.NotEmpty(t, stack, "end token %v with no open start", tok.Kind)
			top := stack[len(stack)-1]
			require.Equal(t, top, tok.Kind.Start(), "mismatched end token %v, expected close for %v", tok.Kind, top)
			stack = stack[:len(stack)-1]
		} else if hasMatchingEnd(tok.Kind) {
			stack = append(stack, tok.Kind)
		}
	}
	require.Empty(t, stack, "unclosed tokens remain: %v", stack)
	return stack
}

// hasMatchingEnd reports whether k is a start kind that is always
// balanced by a corresponding end token in the stream (as opposed to a
// self-contained leaf token like blank_line or thematic_break).
func hasMatchingEnd(k Kind) bool {
	switch k {
	case BlankLineKind, ThematicBreakKind, LinkReferenceDefinitionKind, NewListItemKind,
		TextKind, InlineCodeSpanKind, HardBreakKind, URIAutolinkKind, EmailAutolinkKind, RawHTMLKind:
		return false
	}
	return !k.IsEnd()
}

var balanceFixtures = []string{
	"# heading\n\nsome **bold** and *em* text with `code`.\n\n> quoted paragraph\n> continues\n\n- one\n- two\n  - nested\n\n```go\nfunc f() {}\n```\n\n[a link](/url \"t\")\n\n[ref]: /u\n\n[shortcut][ref]\n",
	"foo ***\n\nfoo *\\**\n\n**foo*\n",
	"- a\n- ```\n  b\n\n\n  ```\n- c\n",
}

func TestTokenStreamIsBalanced(t *testing.T) {
	for _, src := range balanceFixtures {
		tokens := mustTokenize(t, src)
		tokenStack(t, tokens)
	}
}

func TestRetokenizingSameSourceIsIdempotentOverKinds(t *testing.T) {
	// Re-tokenizing the same source twice must produce the same Kind
	// sequence; the block/inline processors hold no state across
	// Transform calls that could make the first run differ from the
	// second.
	for _, src := range balanceFixtures {
		first := kindsOf(mustTokenize(t, src))
		second := kindsOf(mustTokenize(t, src))
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("tokenizing %q twice produced different kind sequences (-first +second):\n%s", src, diff)
		}
	}
}

func TestTopLevelLineNumbersAreMonotone(t *testing.T) {
	tokens := mustTokenize(t, "# a\n\nb\n\n> c\n\n- d\n- e\n")
	last := 0
	for _, tok := range tokens {
		if tok.Kind.IsEnd() || tok.Pos.Line == 0 {
			continue
		}
		require.GreaterOrEqual(t, tok.Pos.Line, last, "token %v at line %d is out of order", tok.Kind, tok.Pos.Line)
		last = tok.Pos.Line
	}
}
