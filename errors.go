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

// Package mdtoken provides a CommonMark/GFM tokenizer that converts
// Markdown source into a flat, position-annotated token stream.
package mdtoken

import "fmt"

// InitializationError is returned by [NewTokenizer] when the tokenizer's
// resource file (the named-entity table) cannot be loaded; the HTML
// block-start tag sets are compiled in and never loaded. It is always fatal: no [Tokenizer] is usable after this error.
type InitializationError struct {
	Path string
	Err  error
}

func (e *InitializationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("mdtoken: initialize tokenizer: %v", e.Err)
	}
	return fmt.Sprintf("mdtoken: initialize tokenizer: load %q: %v", e.Path, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// TokenizationError is returned by [Tokenizer.Transform] and
// [Tokenizer.TransformFromProvider] when the source could not be obtained.
// Unlike malformed Markdown, which always degrades to literal text and
// never produces an error, a TokenizationError means no token stream was
// produced at all. Callers may discard this input and continue with
// others.
type TokenizationError struct {
	Reason string
}

func (e *TokenizationError) Error() string {
	return "mdtoken: tokenization failed: " + e.Reason
}

// errNilProvider is returned when a nil [SourceProvider] is passed to
// [Tokenizer.TransformFromProvider].
var errNilProvider = &TokenizationError{Reason: "source provider is nil"}
