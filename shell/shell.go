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

package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/getryft/ryft-calc/calc"

	"github.com/sirupsen/logrus"
)

var (
	// package logger instance
	log = logrus.New()
)

const (
	PROMPT = ">> "
	QUIT   = "quit"
)

// SetLogLevel changes global module log level.
func SetLogLevel(level string) error {
	ll, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	log.Level = ll
	return nil // OK
}

// GetLogLevel gets global module log level.
func GetLogLevel() logrus.Level {
	return log.Level
}

// Once evaluates one expression and prints the result.
func Once(w io.Writer, expr string, opts calc.Options) error {
	res, err := calc.Evaluate(expr, opts)
	if err != nil {
		log.WithError(err).WithFields(map[string]interface{}{
			"expr":  expr,
			"class": calc.ClassOf(err),
		}).Debug("failed to evaluate")
		return err
	}

	_, err = fmt.Fprintln(w, res)
	return err
}

// Loop reads expressions line by line until "quit" or end of input.
// Each line is evaluated independently, errors are printed
// and do not stop the loop.
func Loop(r io.Reader, w io.Writer, opts calc.Options) error {
	in := bufio.NewScanner(r)
	for {
		if _, err := io.WriteString(w, PROMPT); err != nil {
			return err
		}

		if !in.Scan() {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			return in.Err() // nil on EOF
		}

		line := strings.TrimSpace(in.Text())
		if line == QUIT {
			return nil
		}
		if len(line) == 0 {
			continue
		}

		if err := Once(w, line, opts); err != nil {
			if _, err := fmt.Fprintf(w, "error: %s\n", err); err != nil {
				return err
			}
		}
	}
}
