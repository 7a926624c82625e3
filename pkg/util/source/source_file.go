// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import "fmt"

// File represents a given piece of source text under parse, along with the
// name it should be reported under.
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	// Convert bytes into runes for easier parsing
	contents := []rune(string(bytes))
	//
	return &File{filename, contents}
}

// Filename returns the filename associated with this source file.
func (p *File) Filename() string {
	return p.filename
}

// Contents returns the contents of this source file.
func (p *File) Contents() []rune {
	return p.contents
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (p *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{p, span, msg}
}

// SyntaxError is a structured error which retains the span of the original
// string where the error arose, along with an error message.
type SyntaxError struct {
	srcfile *File
	// Span of the string being parsed where the error arose.
	span Span
	// Error message being reported
	msg string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.Message())
}
