/*
 * ============= Ryft-Customized BSD License ============
 * Copyright (c) 2015, Ryft Systems, Inc.
 * All rights reserved.
 * Redistribution and use in source and binary forms, with or without modification,
 * are permitted provided that the following conditions are met:
 *
 * 1. Redistributions of source code must retain the above copyright notice,
 *   this list of conditions and the following disclaimer.
 * 2. Redistributions in binary form must reproduce the above copyright notice,
 *   this list of conditions and the following disclaimer in the documentation and/or
 *   other materials provided with the distribution.
 * 3. All advertising materials mentioning features or use of this software must display the following acknowledgement:
 *   This product includes software developed by Ryft Systems, Inc.
 * 4. Neither the name of Ryft Systems, Inc. nor the names of its contributors may be used
 *   to endorse or promote products derived from this software without specific prior written permission.
 *
 * THIS SOFTWARE IS PROVIDED BY RYFT SYSTEMS, INC. ''AS IS'' AND ANY
 * EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
 * WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
 * DISCLAIMED. IN NO EVENT SHALL RYFT SYSTEMS, INC. BE LIABLE FOR ANY
 * DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES
 * (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES;
 * LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND
 * ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
 * (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS
 * SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
 * ============
 */

package calc

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"
)

const eof rune = -1

// Scanner represents a lexical scanner.
type Scanner struct {
	reader *bufio.Reader
}

// NewScanner returns a new instance of Scanner.
func NewScanner(r io.Reader) *Scanner {
	s := new(Scanner)
	s.reader = bufio.NewReader(r)
	return s
}

// NewScannerString gets a new Scanner instance from string.
func NewScannerString(data string) *Scanner {
	return NewScanner(strings.NewReader(data))
}

// reads the next rune.
// returns the `eof` if an error occurs.
func (s *Scanner) read() rune {
	r, _, err := s.reader.ReadRune()
	if err != nil {
		return eof
	}
	return r
}

// places the previously read rune back on the reader.
// WARNING: it's not possible to unread two runes!
func (s *Scanner) unread() {
	_ = s.reader.UnreadRune()
}

// is whitespace rune?
func (s *Scanner) isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// is letter rune?
func (s *Scanner) isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

// is number rune? dots are accepted anywhere
func (s *Scanner) isNumber(r rune) bool {
	return ('0' <= r && r <= '9') || r == '.'
}

// ScanAll returns all lexem up to EOF.
// panics in case of unknown operation or character
func (s *Scanner) ScanAll() []Lexeme {
	var res []Lexeme

	for {
		lex := s.Scan()
		if lex.token == EOF {
			break // done
		}

		res = append(res, lex)
	}

	return res
}

// Scan returns the next lexeme, whitespaces are skipped.
// panics in case of unknown operation or character
func (s *Scanner) Scan() Lexeme {
	s.skipSpace()

	switch r := s.read(); {
	case r == eof:
		return NewLexeme(EOF)

	case s.isNumber(r):
		s.unread()
		return s.scanNumber()

	case s.isLetter(r):
		s.unread()
		return s.scanName()

	default:
		if tok, ok := operators[r]; ok {
			return NewLexeme(tok, r)
		}

		panic(newError(ErrUnknownCharacter, "%q", r))
	}
}

// skipSpace consumes all contiguous whitespaces.
func (s *Scanner) skipSpace() {
	for {
		if r := s.read(); r == eof {
			return
		} else if !s.isSpace(r) {
			s.unread()
			return
		}
	}
}

// scanNumber consumes a contiguous run of digits and dots.
// The literal is not validated here, "1.2.3" is a valid lexeme.
func (s *Scanner) scanNumber() Lexeme {
	var buf bytes.Buffer

	for {
		if r := s.read(); r == eof {
			break
		} else if !s.isNumber(r) {
			s.unread()
			break
		} else {
			buf.WriteRune(r)
		}
	}

	return NewLexemeStr(NUMBER, buf.String())
}

// scanName consumes a contiguous run of letters
// and maps it to the function token.
func (s *Scanner) scanName() Lexeme {
	var buf bytes.Buffer

	for {
		if r := s.read(); r == eof {
			break
		} else if !s.isLetter(r) {
			s.unread()
			break
		} else {
			buf.WriteRune(r)
		}
	}

	name := buf.String()
	if tok, ok := functions[name]; ok {
		return NewLexemeStr(tok, name)
	}

	panic(newError(ErrUnknownOperation, "%q", name))
}

// Tokenize converts the text into a sequence of lexemes.
// The sequence never contains EOF.
func Tokenize(text string) (res []Lexeme, err error) {
	defer recoverer(&err)

	res = NewScannerString(text).ScanAll()
	return
}
