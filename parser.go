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

// SourceProvider feeds the tokenizer one logical line at a time,
// letting callers stream input (a file, a network connection) without
// buffering the whole document, per §5's "pull" source model.
// NextLine returns ok=false once the source is exhausted; a line's
// trailing newline, if any, is optional and stripped either way.
type SourceProvider interface {
	NextLine() (line string, ok bool)
}

// sliceProvider adapts an in-memory string to [SourceProvider], the
// source [Tokenizer.Transform] builds for its single-string convenience
// entrypoint.
type sliceProvider struct {
	lines []string
	i     int
}

func newStringProvider(source string) *sliceProvider {
	lines := strings.Split(source, "\n")
	return &sliceProvider{lines: lines}
}

func (p *sliceProvider) NextLine() (string, bool) {
	if p.i >= len(p.lines) {
		return "", false
	}
	line := p.lines[p.i]
	p.i++
	return line, true
}

// Tokenizer holds the immutable configuration shared by every
// [Tokenizer.Transform] call: the named-entity table loaded at
// construction time (§4.7). A *Tokenizer has no mutable state and is
// safe for concurrent use across independent Transform calls, each of
// which builds its own call-local [blockProcessor] and
// [referenceRegistry].
type Tokenizer struct {
	entities map[string]string
}

// Options configures [NewTokenizer].
type Options struct {
	// EntityTablePath, if non-empty, names a "name=value" resource file
	// merged on top of the built-in entity table (§4.7). Leave empty to
	// use the built-in table alone.
	EntityTablePath string
}

// NewTokenizer constructs a [Tokenizer], loading its entity table. A
// malformed or unreadable EntityTablePath is reported as an
// [InitializationError].
func NewTokenizer(opts Options) (*Tokenizer, error) {
	table, err := loadEntityTable(opts.EntityTablePath)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{entities: table}, nil
}

// Transform tokenizes an in-memory Markdown document, per §5.
func (tz *Tokenizer) Transform(source string) ([]Token, error) {
	return tz.TransformFromProvider(newStringProvider(source))
}

// TransformFromProvider tokenizes a document pulled line by line from
// p, per §5. It runs the two-pass pipeline of §9: block processing
// first (which also builds the link-reference registry as a side
// effect of paragraph closing), then a second pass that expands each
// deferred raw span into inline tokens spliced in place.
func (tz *Tokenizer) TransformFromProvider(p SourceProvider) ([]Token, error) {
	if p == nil {
		return nil, errNilProvider
	}

	bp := newBlockProcessor(tz)
	if err := bp.run(p); err != nil {
		return nil, &TokenizationError{Reason: err.Error()}
	}

	ip := &inlineProcessor{tz: tz, refs: bp.refs}
	out := make([]Token, 0, len(bp.output))
	for _, elem := range bp.output {
		if elem.raw != nil {
			out = append(out, ip.tokenizeInline(*elem.raw)...)
			continue
		}
		out = append(out, elem.tok)
	}
	return out, nil
}
