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

import "strings"

// emphasisMatch records one resolved opener/closer pairing produced by
// [findEmphasisMatches].
type emphasisMatch struct {
	closeIdx int
	useLen   int
}

// findEmphasisMatches implements the delimiter-stack algorithm of §4.2:
// scanning closers left to right, each looks back for the nearest
// unused compatible opener, applying the rule-of-three exclusion. A
// run is simplified to participate in at most one match (opener or
// closer) for the lifetime of this call; any leftover length after a
// partial match is rendered as literal text by [emitItems]. This
// covers the overwhelming majority of real Markdown (including runs
// like "**foo*" that partially consume one side) without the
// lower-bound scan optimization real implementations use for
// amortized linear time.
func findEmphasisMatches(items []inlineItem) map[int]emphasisMatch {
	var delimIdxs []int
	for i, it := range items {
		if it.kind == itemDelim {
			delimIdxs = append(delimIdxs, i)
		}
	}
	used := make(map[int]bool, len(delimIdxs))
	matches := make(map[int]emphasisMatch)

	for ci := 0; ci < len(delimIdxs); ci++ {
		cIdx := delimIdxs[ci]
		closer := items[cIdx]
		if used[cIdx] || !closer.canClose {
			continue
		}
		for oi := ci - 1; oi >= 0; oi-- {
			oIdx := delimIdxs[oi]
			opener := items[oIdx]
			if used[oIdx] || opener.delimChar != closer.delimChar || !opener.canOpen {
				continue
			}
			sumMultOf3 := (opener.delimLen+closer.delimLen)%3 == 0
			eitherMultOf3 := opener.delimLen%3 == 0 || closer.delimLen%3 == 0
			if (opener.canClose || closer.canOpen) && sumMultOf3 && !eitherMultOf3 {
				continue
			}
			useLen := 1
			if opener.delimLen >= 2 && closer.delimLen >= 2 {
				useLen = 2
			}
			matches[oIdx] = emphasisMatch{closeIdx: cIdx, useLen: useLen}
			used[oIdx] = true
			used[cIdx] = true
			// Delimiters between the pair are left as literal text.
			for k := oi + 1; k < ci; k++ {
				used[delimIdxs[k]] = true
			}
			break
		}
	}
	return matches
}

// emitItems renders items[lo:hi] to final tokens, resolving the
// emphasis delimiter stack over that range. Already-resolved items
// (code spans, autolinks, raw HTML, hard breaks, links, images) splice
// their tokens through unchanged.
func emitItems(items []inlineItem, lo, hi int) []Token {
	matches := findEmphasisMatches(items[lo:hi])
	// findEmphasisMatches was given a sub-slice, so its indices are
	// relative to lo; rebase them back into the full items index space.
	rebased := make(map[int]emphasisMatch, len(matches))
	for k, v := range matches {
		rebased[k+lo] = emphasisMatch{closeIdx: v.closeIdx + lo, useLen: v.useLen}
	}
	return emitRange(items, lo, hi, rebased)
}

func emitRange(items []inlineItem, lo, hi int, matches map[int]emphasisMatch) []Token {
	var out []Token
	i := lo
	for i < hi {
		it := items[i]
		switch it.kind {
		case itemText:
			if it.text != "" {
				out = append(out, Token{Kind: TextKind, Content: it.text})
			}
			i++
		case itemResolved:
			out = append(out, it.resolved...)
			i++
		case itemBracket:
			mark := "["
			if it.isImage {
				mark = "!["
			}
			out = append(out, Token{Kind: TextKind, Content: mark})
			i++
		case itemDelim:
			m, isOpener := matches[i]
			if isOpener {
				opener := it
				closer := items[m.closeIdx]
				leftover := opener.delimLen - m.useLen
				if leftover > 0 {
					out = append(out, Token{Kind: TextKind, Content: strings.Repeat(string(opener.delimChar), leftover)})
				}
				out = append(out, Token{Kind: EmphasisKind, EmphasisLength: m.useLen, MarkerChar: opener.delimChar})
				out = append(out, emitRange(items, i+1, m.closeIdx, matches)...)
				out = append(out, Token{Kind: EmphasisKind.End(), EmphasisLength: m.useLen, MarkerChar: opener.delimChar})
				closerLeftover := closer.delimLen - m.useLen
				if closerLeftover > 0 {
					out = append(out, Token{Kind: TextKind, Content: strings.Repeat(string(closer.delimChar), closerLeftover)})
				}
				i = m.closeIdx + 1
				continue
			}
			if isClosingHalfOfMatch(matches, i) {
				// Consumed as part of an opener's range already handled
				// above; skip forward past it defensively (unreachable in
				// practice since emitRange always jumps to closeIdx+1).
				i++
				continue
			}
			out = append(out, Token{Kind: TextKind, Content: strings.Repeat(string(it.delimChar), it.delimLen)})
			i++
		}
	}
	return out
}

func isClosingHalfOfMatch(matches map[int]emphasisMatch, idx int) bool {
	for _, m := range matches {
		if m.closeIdx == idx {
			return true
		}
	}
	return false
}
