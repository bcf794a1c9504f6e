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

// extractLinkReferenceDefinitions repeatedly strips leading link
// reference definitions from a paragraph's buffered text, per §4.3.
// It returns the remaining paragraph text (possibly empty) and the
// tokens for every definition it found, in source order.
//
// Per the §9 Open Question, a definition is only recognized at the
// very start of the paragraph's buffered text: once any non-definition
// content has been seen, the rest of the paragraph's lines are never
// re-examined for definitions, mirroring original_source/pymarkdown's
// behavior rather than re-deriving the lazy-continuation edge case
// from CommonMark's errata discussion.
func (bp *blockProcessor) extractLinkReferenceDefinitions(text string, startPos Position) (string, []Token) {
	var tokens []Token
	pos := startPos
	for {
		label, afterLabel, _, ok := parseLinkLabel(text)
		if !ok {
			return text, tokens
		}
		rest := afterLabel
		if !strings.HasPrefix(rest, ":") {
			return text, tokens
		}
		rest = rest[1:]
		_, rest = takeLinkWhitespace(rest)
		dest, rest, ok := parseLinkDestination(rest)
		if !ok {
			return text, tokens
		}

		// Try to consume a title; titles may be omitted.
		afterDest := rest
		wsBeforeTitle, restAfterWS := takeLinkWhitespace(afterDest)
		title := ""
		hadTitle := false
		consumed := afterDest
		if wsBeforeTitle != "" {
			if t, after, ok := parseLinkTitle(restAfterWS); ok {
				restOfLine, nl := firstLineRemainder(after)
				if strings.TrimSpace(restOfLine) == "" {
					title = t
					hadTitle = true
					consumed = after[len(restOfLine):]
					if nl {
						consumed = consumeOneNewline(consumed)
					}
				}
			}
		}
		if !hadTitle {
			restOfLine, nl := firstLineRemainder(afterDest)
			if strings.TrimSpace(restOfLine) != "" {
				return text, tokens
			}
			consumed = afterDest[len(restOfLine):]
			if nl {
				consumed = consumeOneNewline(consumed)
			}
		}

		resolvedDest := NormalizeURI(unescapeBackslashes(bp.tz.decodeEntities(dest)))
		resolvedTitle := unescapeBackslashes(bp.tz.decodeEntities(title))

		normalized := normalizeLabel(label)
		added := bp.refs.define(normalized, linkDefinition{
			destination:   resolvedDest,
			title:         resolvedTitle,
			originalLabel: label,
		})
		tokens = append(tokens, Token{
			Kind:             LinkReferenceDefinitionKind,
			Pos:              pos,
			LabelDebug:       label,
			URI:              resolvedDest,
			Title:            resolvedTitle,
			DidAddDefinition: added,
		})

		text = consumed
	}
}

// parseLinkLabel parses a "[...]" label from the start of s, returning
// the label's inner text (unescaped by caller as needed), the
// remaining text after the closing ']', whether any content was
// skipped before it (always "" since it must be at position 0), and
// whether a well-formed, non-empty, ≤999-byte label was found.
func parseLinkLabel(s string) (label, rest, skipped string, ok bool) {
	if len(s) == 0 || s[0] != '[' {
		return "", s, "", false
	}
	depth := 0
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			depth++
			if depth > 0 {
				return "", s, "", false // labels cannot contain unescaped '['
			}
		case ']':
			inner := s[1:i]
			if strings.TrimSpace(inner) == "" || len(inner) > 999 {
				return "", s, "", false
			}
			return inner, s[i+1:], "", true
		}
	}
	return "", s, "", false
}

func takeLinkWhitespace(s string) (ws, rest string) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	return s[:i], s[i:]
}

// parseLinkDestination parses either a "<...>" bracketed destination or
// a bare non-whitespace, balanced-parenthesis destination.
func parseLinkDestination(s string) (dest, rest string, ok bool) {
	if len(s) == 0 {
		return "", s, false
	}
	if s[0] == '<' {
		for i := 1; i < len(s); i++ {
			switch s[i] {
			case '\\':
				i++
			case '\n', '<':
				return "", s, false
			case '>':
				return s[1:i], s[i+1:], true
			}
		}
		return "", s, false
	}
	depth := 0
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '\\' {
			i += 2
			continue
		}
		if c == ' ' || c == '\t' || c == '\n' {
			break
		}
		if c == '(' {
			depth++
		}
		if c == ')' {
			if depth == 0 {
				break
			}
			depth--
		}
		i++
	}
	if i == 0 {
		return "", s, false
	}
	return s[:i], s[i:], true
}

// parseLinkTitle parses a '"..."', '\'...\'', or '(...)' title.
func parseLinkTitle(s string) (title, rest string, ok bool) {
	if len(s) == 0 {
		return "", s, false
	}
	open := s[0]
	var close byte
	switch open {
	case '"':
		close = '"'
	case '\'':
		close = '\''
	case '(':
		close = ')'
	default:
		return "", s, false
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case close:
			return s[1:i], s[i+1:], true
		}
	}
	return "", s, false
}

func firstLineRemainder(s string) (string, bool) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i], true
	}
	return s, false
}

func consumeOneNewline(s string) string {
	if strings.HasPrefix(s, "\n") {
		return s[1:]
	}
	return s
}
