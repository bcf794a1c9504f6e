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
	"strconv"
	"strings"
)

// Kind is a tagged variant over every token type the tokenizer can emit.
type Kind uint8

const (
	// Container-block tokens.
	BlockQuoteKind Kind = 1 + iota
	UnorderedListStartKind
	OrderedListStartKind
	NewListItemKind

	// Leaf-block tokens.
	BlankLineKind
	ParagraphKind
	ATXHeadingKind
	SetextHeadingKind
	IndentedCodeBlockKind
	FencedCodeBlockKind
	HTMLBlockKind
	ThematicBreakKind
	LinkReferenceDefinitionKind

	// Inline tokens.
	TextKind
	InlineCodeSpanKind
	HardBreakKind
	URIAutolinkKind
	EmailAutolinkKind
	RawHTMLKind
	EmphasisKind
	LinkStartKind
	ImageStartKind

	// endMarkerBase is added to a start Kind to produce its end Kind.
	// It must stay greater than every start kind above.
	endMarkerBase = 128
)

// End returns the end-marker Kind corresponding to a start Kind.
func (k Kind) End() Kind {
	return k + endMarkerBase
}

// IsEnd reports whether k is an end marker.
func (k Kind) IsEnd() bool {
	return k >= endMarkerBase
}

// Start returns the start Kind corresponding to an end-marker Kind.
// It is a no-op if k is already a start kind.
func (k Kind) Start() Kind {
	if k.IsEnd() {
		return k - endMarkerBase
	}
	return k
}

// kindNames gives the stable external name for each start Kind,
// per the canonical textual form in the external token-stream contract.
// End markers reuse the same name with an "end-" prefix.
var kindNames = map[Kind]string{
	BlockQuoteKind:              "block-quote",
	UnorderedListStartKind:      "ulist",
	OrderedListStartKind:        "olist",
	NewListItemKind:             "li",
	BlankLineKind:               "BLANK",
	ParagraphKind:               "para",
	ATXHeadingKind:              "atx",
	SetextHeadingKind:           "setext",
	IndentedCodeBlockKind:       "icode-block",
	FencedCodeBlockKind:         "fcode-block",
	HTMLBlockKind:               "html-block",
	ThematicBreakKind:           "tbreak",
	LinkReferenceDefinitionKind: "link-ref-def",
	TextKind:                    "text",
	InlineCodeSpanKind:          "icode-span",
	HardBreakKind:               "hard-break",
	URIAutolinkKind:             "uri-autolink",
	EmailAutolinkKind:           "email-autolink",
	RawHTMLKind:                 "raw-html",
	EmphasisKind:                "emphasis",
	LinkStartKind:               "link",
	ImageStartKind:              "image",
}

// String returns the canonical external name for k, matching the
// `[<name>(line,col):<extra>]` stable contract. End markers are
// prefixed "end-".
func (k Kind) String() string {
	if k.IsEnd() {
		return "end-" + k.Start().String()
	}
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a single entry in the flat token stream. It is a tagged
// variant: only the fields relevant to Kind are populated, mirroring
// pymarkdown's per-subclass extra_data fields in a single flat struct
// rather than a class hierarchy.
type Token struct {
	Kind Kind
	Pos  Position

	// Generic reconstruction fields, used by most leaf/container kinds.
	ExtractedWhitespace string
	EndWhitespace        string // trailing captured whitespace on end markers

	// Text / inline-content kinds.
	Content string

	// Fenced code block.
	FenceChar          byte
	FenceCount         int
	InfoString         string
	PostInfoWhitespace string
	PreFenceWhitespace string
	PreInfoWhitespace  string

	// List starts and new-list-items.
	MarkerChar     byte
	MarkerSequence string
	IndentLevel    int
	IsLoose        bool
	StartingNumber int
	StartContent   string

	// Headings.
	HeadingLevel int

	// Emphasis.
	EmphasisLength int

	// Links and images.
	URI        string
	Title      string
	LabelDebug string

	// Link reference definitions.
	DidAddDefinition bool

	// Thematic break / setext underline / fence-close reconstruction.
	ClosingSequence string
}

// String renders the token's canonical external form:
// "[<name>(line,col):<extra>]". This format is a stable external
// contract consumed by lint rule plugins and the test suite; changing
// field order or separators is a breaking change.
func (t Token) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(t.Kind.String())
	sb.WriteByte('(')
	sb.WriteString(strconv.Itoa(t.Pos.Line))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(t.Pos.Column))
	sb.WriteString("):")
	sb.WriteString(t.Extra())
	sb.WriteByte(']')
	return sb.String()
}

// Extra renders the kind-specific reconstruction payload, per §6 of the
// tokenizer contract. Field order and separators must not change.
func (t Token) Extra() string {
	switch t.Kind {
	case FencedCodeBlockKind:
		return joinFields(
			string(t.FenceChar),
			strconv.Itoa(t.FenceCount),
			t.InfoString,
			t.PostInfoWhitespace,
			t.PreFenceWhitespace,
			t.PreInfoWhitespace,
		)
	case OrderedListStartKind:
		return joinFields(
			t.MarkerSequence,
			t.StartContent,
			strconv.Itoa(t.IndentLevel),
			t.ExtractedWhitespace,
		)
	case UnorderedListStartKind:
		return joinFields(
			string(t.MarkerChar),
			strconv.Itoa(t.IndentLevel),
			t.ExtractedWhitespace,
		)
	case NewListItemKind:
		return joinFields(
			strconv.Itoa(t.IndentLevel),
			t.ExtractedWhitespace,
		)
	case BlockQuoteKind:
		return t.ExtractedWhitespace
	case ParagraphKind:
		return t.ExtractedWhitespace
	case ATXHeadingKind:
		return joinFields(
			strconv.Itoa(t.HeadingLevel),
			t.ExtractedWhitespace,
		)
	case SetextHeadingKind:
		return joinFields(
			strconv.Itoa(t.HeadingLevel),
			t.ExtractedWhitespace,
		)
	case IndentedCodeBlockKind:
		return t.ExtractedWhitespace
	case HTMLBlockKind:
		return t.ExtractedWhitespace
	case ThematicBreakKind:
		return joinFields(string(t.MarkerChar), t.ExtractedWhitespace)
	case LinkReferenceDefinitionKind:
		extra := joinFields(t.ExtractedWhitespace, t.LabelDebug, t.URI, t.Title)
		if !t.DidAddDefinition {
			extra += ":skip"
		}
		return extra
	case TextKind:
		if t.EndWhitespace != "" {
			return joinFields(t.Content, t.ExtractedWhitespace, t.EndWhitespace)
		}
		return joinFields(t.Content, t.ExtractedWhitespace)
	case InlineCodeSpanKind:
		return t.Content
	case HardBreakKind:
		return t.ExtractedWhitespace
	case URIAutolinkKind, EmailAutolinkKind:
		return t.Content
	case RawHTMLKind:
		return t.Content
	case EmphasisKind:
		return joinFields(strconv.Itoa(t.EmphasisLength), string(t.MarkerChar))
	case LinkStartKind, ImageStartKind:
		return joinFields(t.URI, t.Title, t.LabelDebug)
	default:
		if t.Kind.IsEnd() {
			return t.endExtra()
		}
		return t.ExtractedWhitespace
	}
}

// endExtra renders the extra field for end markers, which primarily
// carry whatever closing whitespace or sequence was captured when the
// scope was closed.
func (t Token) endExtra() string {
	switch t.Kind.Start() {
	case EmphasisKind:
		return joinFields(strconv.Itoa(t.EmphasisLength), string(t.MarkerChar))
	case FencedCodeBlockKind:
		return joinFields(t.ClosingSequence, t.ExtractedWhitespace)
	case ParagraphKind:
		return t.EndWhitespace
	default:
		return t.ExtractedWhitespace
	}
}

func joinFields(fields ...string) string {
	return strings.Join(fields, ":")
}

// endToken synthesizes the end marker for a start token, carrying no
// position of its own (sentinel zero Position) unless pos is supplied
// explicitly by the caller.
func endToken(start Token, pos Position) Token {
	return Token{
		Kind:           start.Kind.End(),
		Pos:            pos,
		ExtractedWhitespace: "",
		EmphasisLength: start.EmphasisLength,
		MarkerChar:     start.MarkerChar,
	}
}
