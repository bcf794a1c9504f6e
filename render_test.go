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

	"github.com/dxfrontiers/mdtoken/internal/normhtml"
)

func renderNormalized(t *testing.T, source string) string {
	t.Helper()
	tokens := mustTokenize(t, source)
	return string(normhtml.Normalize([]byte(RenderHTML(tokens))))
}

func TestRenderHeadingAndParagraph(t *testing.T) {
	got := renderNormalized(t, "# Title\n\nbody text\n")
	want := string(normhtml.Normalize([]byte("<h1>Title</h1>\n<p>body text</p>\n")))
	require.Equal(t, want, got)
}

func TestRenderEmphasisAndLink(t *testing.T) {
	got := renderNormalized(t, `a [link](/url "t") and **bold**`)
	want := string(normhtml.Normalize([]byte(
		`<p>a <a href="/url" title="t">link</a> and <strong>bold</strong></p>`,
	)))
	require.Equal(t, want, got)
}

func TestRenderLinkURIIsPercentEncoded(t *testing.T) {
	got := RenderHTML(mustTokenize(t, "[x](</a b>)"))
	require.Contains(t, got, `href="/a%20b"`)
}

func TestRenderTightListSuppressesParagraphTags(t *testing.T) {
	got := renderNormalized(t, "- a\n- b\n")
	want := string(normhtml.Normalize([]byte("<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n")))
	require.Equal(t, want, got)
}
