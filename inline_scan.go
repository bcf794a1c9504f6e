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

// scanCodeSpan scans a code span opened by a backtick run at the start
// of s, per CommonMark §6.1. It returns the span's content (stripped of
// one leading/trailing space when the content is non-blank and begins
// and ends with a space) and the number of bytes consumed.
func scanCodeSpan(s string) (content string, consumed int, ok bool) {
	openLen := 0
	for openLen < len(s) && s[openLen] == '`' {
		openLen++
	}
	i := openLen
	for i < len(s) {
		if s[i] != '`' {
			i++
			continue
		}
		runStart := i
		for i < len(s) && s[i] == '`' {
			i++
		}
		if i-runStart == openLen {
			inner := s[openLen:runStart]
			inner = strings.ReplaceAll(inner, "\n", " ")
			if len(inner) >= 2 && inner[0] == ' ' && inner[len(inner)-1] == ' ' && strings.TrimSpace(inner) != "" {
				inner = inner[1 : len(inner)-1]
			}
			return inner, i, true
		}
	}
	return "", 0, false
}

// scanAutolink scans a URI or email autolink "<...>" at the start of s,
// per CommonMark §6.4.
func scanAutolink(s string) (content string, consumed int, kind Kind, ok bool) {
	if len(s) == 0 || s[0] != '<' {
		return "", 0, 0, false
	}
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return "", 0, 0, false
	}
	inner := s[1:end]
	if isURIAutolink(inner) {
		return inner, end + 1, URIAutolinkKind, true
	}
	if isEmailAutolink(inner) {
		return inner, end + 1, EmailAutolinkKind, true
	}
	return "", 0, 0, false
}

// isURIAutolink reports whether s matches CommonMark's absolute URI
// grammar: a scheme of 2-32 letters/digits/'+'/'-'/'.' starting with a
// letter, a ':', then any sequence free of ASCII control characters,
// space, '<', and '>'.
func isURIAutolink(s string) bool {
	colon := strings.IndexByte(s, ':')
	if colon < 2 || colon > 32 {
		return false
	}
	scheme := s[:colon]
	if !isASCIILetter(scheme[0]) {
		return false
	}
	for i := 1; i < len(scheme); i++ {
		c := scheme[i]
		if !isASCIILetter(c) && !isASCIIDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	for i := colon + 1; i < len(s); i++ {
		c := s[i]
		if c <= 0x20 || c == '<' || c == '>' {
			return false
		}
	}
	return true
}

// isEmailAutolink reports whether s matches CommonMark's simplified
// email-address grammar.
func isEmailAutolink(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	for i := 0; i < len(local); i++ {
		if !isEmailLocalChar(local[i]) {
			return false
		}
	}
	labels := strings.Split(domain, ".")
	if len(labels) == 0 {
		return false
	}
	for _, label := range labels {
		if !isEmailDomainLabel(label) {
			return false
		}
	}
	return true
}

func isEmailLocalChar(c byte) bool {
	if isASCIILetter(c) || isASCIIDigit(c) {
		return true
	}
	switch c {
	case '.', '!', '#', '$', '%', '&', '\'', '*', '+', '/', '=', '?', '^', '_', '`', '{', '|', '}', '~', '-':
		return true
	}
	return false
}

func isEmailDomainLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !isASCIILetter(c) && !isASCIIDigit(c) && c != '-' {
			return false
		}
	}
	return true
}

// scanInlineRawHTML scans one inline raw-HTML construct ("<...>" open
// tag, closing tag, comment, processing instruction, declaration, or
// CDATA section) at the start of s, per CommonMark §6.8.
func scanInlineRawHTML(s string) (content string, consumed int, ok bool) {
	if len(s) == 0 || s[0] != '<' {
		return "", 0, false
	}
	switch {
	case strings.HasPrefix(s, "<!--"):
		if end := strings.Index(s[4:], "-->"); end >= 0 {
			n := 4 + end + 3
			return s[:n], n, true
		}
		return "", 0, false
	case strings.HasPrefix(s, "<?"):
		if end := strings.Index(s[2:], "?>"); end >= 0 {
			n := 2 + end + 2
			return s[:n], n, true
		}
		return "", 0, false
	case strings.HasPrefix(s, "<![CDATA["):
		if end := strings.Index(s[9:], "]]>"); end >= 0 {
			n := 9 + end + 3
			return s[:n], n, true
		}
		return "", 0, false
	case strings.HasPrefix(s, "<!"):
		if end := strings.IndexByte(s[2:], '>'); end >= 0 {
			n := 2 + end + 1
			return s[:n], n, true
		}
		return "", 0, false
	}

	rest := s[1:]
	closing := strings.HasPrefix(rest, "/")
	if closing {
		rest = rest[1:]
	}
	name, afterName := scanTagName(rest)
	if name == "" {
		return "", 0, false
	}
	if closing {
		trimmed := strings.TrimLeft(afterName, " \t\n")
		if strings.HasPrefix(trimmed, ">") {
			n := len(s) - len(trimmed) + 1
			return s[:n], n, true
		}
		return "", 0, false
	}
	// Open tag: consume attributes up to an unescaped '>' or "/>".
	i := len(s) - len(afterName)
	for i < len(s) {
		if strings.HasPrefix(s[i:], "/>") {
			return s[:i+2], i + 2, true
		}
		if s[i] == '>' {
			return s[:i+1], i + 1, true
		}
		if s[i] == '\n' || s[i] == '<' {
			return "", 0, false
		}
		i++
	}
	return "", 0, false
}
