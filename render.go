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
	"html"
	"strconv"
	"strings"
)

// RenderHTML renders a flat token stream (as produced by
// [Tokenizer.Transform]) to HTML. Because the stream is already flat
// and balanced, rendering is a single linear walk with a small per-list
// stack for open items and tightness; no tree is built.
func RenderHTML(tokens []Token) string {
	var sb strings.Builder
	r := &htmlRenderState{sb: &sb}
	for i := 0; i < len(tokens); i++ {
		r.render(tokens, i)
	}
	return sb.String()
}

type htmlRenderState struct {
	sb          *strings.Builder
	skipContent int // paragraphs inside tight list items skip their own tags but not content

	// listItemOpen tracks, per nested list, whether its current item's
	// "<li>" is still unclosed. The token stream has no explicit
	// end-of-item token: an item runs until the next NewListItemKind in
	// the same list or until the list's own End() token. The list start
	// token itself opens the first item.
	listItemOpen []bool

	// listTight tracks, per nested list, whether the list is tight; the
	// paragraphs of the innermost list's items get no <p> tags when it is.
	listTight []bool
}

func (r *htmlRenderState) render(tokens []Token, i int) {
	t := tokens[i]
	switch t.Kind {
	case BlockQuoteKind:
		r.sb.WriteString("<blockquote>\n")
	case BlockQuoteKind.End():
		r.sb.WriteString("</blockquote>\n")
	case UnorderedListStartKind:
		r.sb.WriteString("<ul>\n<li>")
		r.listItemOpen = append(r.listItemOpen, true)
		r.listTight = append(r.listTight, !t.IsLoose)
	case UnorderedListStartKind.End():
		r.closeOpenListItem()
		r.listItemOpen = r.listItemOpen[:len(r.listItemOpen)-1]
		r.listTight = r.listTight[:len(r.listTight)-1]
		r.sb.WriteString("</ul>\n")
	case OrderedListStartKind:
		if t.StartingNumber != 0 && t.StartingNumber != 1 {
			r.sb.WriteString(`<ol start="` + strconv.Itoa(t.StartingNumber) + `">` + "\n")
		} else {
			r.sb.WriteString("<ol>\n")
		}
		r.sb.WriteString("<li>")
		r.listItemOpen = append(r.listItemOpen, true)
		r.listTight = append(r.listTight, !t.IsLoose)
	case OrderedListStartKind.End():
		r.closeOpenListItem()
		r.listItemOpen = r.listItemOpen[:len(r.listItemOpen)-1]
		r.listTight = r.listTight[:len(r.listTight)-1]
		r.sb.WriteString("</ol>\n")
	case NewListItemKind:
		r.closeOpenListItem()
		r.sb.WriteString("<li>")
		if len(r.listItemOpen) > 0 {
			r.listItemOpen[len(r.listItemOpen)-1] = true
		}
	case BlankLineKind:
		// No HTML output; blank lines are structural only.
	case ParagraphKind:
		if n := len(r.listTight); n == 0 || !r.listTight[n-1] {
			r.sb.WriteString("<p>")
		}
	case ParagraphKind.End():
		if n := len(r.listTight); n == 0 || !r.listTight[n-1] {
			r.sb.WriteString("</p>\n")
		}
	case ATXHeadingKind, SetextHeadingKind:
		r.sb.WriteString("<h" + strconv.Itoa(t.HeadingLevel) + ">")
	case ATXHeadingKind.End(), SetextHeadingKind.End():
		level := strconv.Itoa(t.HeadingLevel)
		r.sb.WriteString("</h" + level + ">\n")
	case IndentedCodeBlockKind, FencedCodeBlockKind:
		lang := ""
		if t.Kind == FencedCodeBlockKind && t.InfoString != "" {
			lang = ` class="language-` + html.EscapeString(strings.Fields(t.InfoString)[0]) + `"`
		}
		r.sb.WriteString("<pre><code" + lang + ">")
	case IndentedCodeBlockKind.End(), FencedCodeBlockKind.End():
		r.sb.WriteString("</code></pre>\n")
	case HTMLBlockKind, HTMLBlockKind.End():
		// Raw content is emitted as a single TextKind span in between;
		// no wrapper tags are added for HTML blocks.
	case ThematicBreakKind:
		r.sb.WriteString("<hr />\n")
	case LinkReferenceDefinitionKind:
		// Produces no HTML output by itself.
	case TextKind:
		r.sb.WriteString(html.EscapeString(t.Content))
	case InlineCodeSpanKind:
		r.sb.WriteString("<code>" + html.EscapeString(t.Content) + "</code>")
	case HardBreakKind:
		r.sb.WriteString("<br />\n")
	case URIAutolinkKind:
		href := html.EscapeString(NormalizeURI(t.Content))
		r.sb.WriteString(`<a href="` + href + `">` + html.EscapeString(t.Content) + `</a>`)
	case EmailAutolinkKind:
		href := html.EscapeString(NormalizeURI(t.Content))
		r.sb.WriteString(`<a href="mailto:` + href + `">` + html.EscapeString(t.Content) + `</a>`)
	case RawHTMLKind:
		r.sb.WriteString(t.Content)
	case EmphasisKind:
		r.sb.WriteString(emphasisTag(t.EmphasisLength, false))
	case EmphasisKind.End():
		r.sb.WriteString(emphasisTag(t.EmphasisLength, true))
	case LinkStartKind:
		r.sb.WriteString(`<a href="` + html.EscapeString(t.URI) + `"` + titleAttr(t.Title) + `>`)
	case LinkStartKind.End():
		r.sb.WriteString("</a>")
	case ImageStartKind:
		r.sb.WriteString(`<img src="` + html.EscapeString(t.URI) + `" alt="" ` + titleAttr(t.Title) + "/>")
	case ImageStartKind.End():
		// Images are always empty elements; nothing to close.
	}
}

// closeOpenListItem emits "</li>" if the innermost list has an item
// currently open, and clears that flag.
func (r *htmlRenderState) closeOpenListItem() {
	if len(r.listItemOpen) == 0 || !r.listItemOpen[len(r.listItemOpen)-1] {
		return
	}
	r.sb.WriteString("</li>\n")
	r.listItemOpen[len(r.listItemOpen)-1] = false
}

func emphasisTag(length int, closing bool) string {
	tag := "em"
	if length >= 2 {
		tag = "strong"
	}
	if closing {
		return "</" + tag + ">"
	}
	return "<" + tag + ">"
}

func titleAttr(title string) string {
	if title == "" {
		return ""
	}
	return ` title="` + html.EscapeString(title) + `"`
}
