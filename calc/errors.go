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
	"errors"
	"fmt"
)

// Error classes.
const (
	CLASS_LEX    = "lex"
	CLASS_SYNTAX = "syntax"
	CLASS_DOMAIN = "domain"
)

// lexical errors
var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrUnknownCharacter = errors.New("unknown character")
	ErrBadNumber        = errors.New("bad number")
)

// syntax errors
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnclosedParen   = errors.New("unclosed parenthesis")
	ErrMissingParen    = errors.New("missing opening parenthesis")
	ErrTrailingTokens  = errors.New("not fully parsed")
	ErrTooDeep         = errors.New("expression is nested too deep")
)

// domain errors
var (
	ErrDecimalFactorial = errors.New("factorial for a decimal value is not supported")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNegativeExponent = errors.New("negative exponent")
	ErrOverflow         = errors.New("integer overflow")
	ErrDomain           = errors.New("argument out of domain")
)

var classes = map[error]string{
	ErrUnknownOperation: CLASS_LEX,
	ErrUnknownCharacter: CLASS_LEX,
	ErrBadNumber:        CLASS_LEX,
	ErrUnexpectedToken:  CLASS_SYNTAX,
	ErrUnclosedParen:    CLASS_SYNTAX,
	ErrMissingParen:     CLASS_SYNTAX,
	ErrTrailingTokens:   CLASS_SYNTAX,
	ErrTooDeep:          CLASS_SYNTAX,
	ErrDecimalFactorial: CLASS_DOMAIN,
	ErrDivisionByZero:   CLASS_DOMAIN,
	ErrNegativeExponent: CLASS_DOMAIN,
	ErrOverflow:         CLASS_DOMAIN,
	ErrDomain:           CLASS_DOMAIN,
}

// Error is an evaluation error.
// Kind is one of the Err* values, Details describes what was found.
type Error struct {
	Kind    error
	Details string
}

// newError creates new evaluation error.
func newError(kind error, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Details: fmt.Sprintf(format, args...),
	}
}

// Error gets the error as a string.
func (err *Error) Error() string {
	if len(err.Details) != 0 {
		return fmt.Sprintf("%s: %s", err.Kind, err.Details)
	}

	return err.Kind.Error()
}

// Unwrap gets the error kind.
func (err *Error) Unwrap() error {
	return err.Kind
}

// Class gets the error class: "lex", "syntax" or "domain".
func (err *Error) Class() string {
	return classes[err.Kind]
}

// ClassOf gets the class of any evaluation error, empty for foreign errors.
func ClassOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Class()
	}
	return ""
}

// recoverer catches *Error panics and stores them into errp.
// Any other panic is raised again.
func recoverer(errp *error) {
	if r := recover(); r != nil {
		if err, ok := r.(*Error); ok {
			*errp = err
			return
		}
		panic(r)
	}
}
