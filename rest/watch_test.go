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

package rest

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/getryft/ryft-calc/calc"

	"github.com/stretchr/testify/assert"
)

// configuration reload on file change
func TestWatchConfig(t *testing.T) {
	testSetLogLevel()

	dir, err := ioutil.TempDir("", "ryft-calc")
	if !assert.NoError(t, err) {
		return
	}
	defer os.RemoveAll(dir)

	path := writeConfig(t, dir, "evaluator:\n  mode: int\n")
	s := NewServer()
	if !assert.NoError(t, s.ParseConfig(path)) || !assert.NoError(t, s.Prepare()) {
		return
	}
	assert.Equal(t, calc.INTEGER, s.Options().Mode)

	cw, err := s.WatchConfig(path)
	if !assert.NoError(t, err) {
		return
	}

	writeConfig(t, dir, "evaluator:\n  mode: float\n  strict: true\n")
	assert.Eventually(t, func() bool {
		return s.Options() == calc.Options{Mode: calc.FLOAT, Strict: true}
	}, 5*time.Second, 10*time.Millisecond)

	assert.NoError(t, cw.Close())

	// bad configuration is ignored
	writeConfig(t, dir, "evaluator:\n  mode: complex\n")
	assert.Error(t, s.Reload(path))
	assert.Equal(t, calc.Options{Mode: calc.FLOAT, Strict: true}, s.Options())

	// manual reload
	writeConfig(t, dir, "evaluator:\n  mode: int\n")
	assert.NoError(t, s.Reload(path))
	assert.Equal(t, calc.INTEGER, s.Options().Mode)

	// command line overrides survive reload
	mode, strict := calc.FLOAT, true
	s.Override(&mode, &strict)
	assert.Equal(t, calc.Options{Mode: calc.FLOAT, Strict: true}, s.Options())

	writeConfig(t, dir, "logging-options: {}\n")
	assert.NoError(t, s.Reload(path))
	assert.Equal(t, calc.Options{Mode: calc.FLOAT, Strict: true}, s.Options())

	writeConfig(t, dir, "evaluator:\n  mode: int\n  strict: false\n")
	assert.NoError(t, s.Reload(path))
	assert.Equal(t, calc.Options{Mode: calc.FLOAT, Strict: true}, s.Options())

	// only mode is overridden
	s.Override(&mode, nil)
	writeConfig(t, dir, "evaluator:\n  mode: int\n  strict: false\n")
	assert.NoError(t, s.Reload(path))
	assert.Equal(t, calc.Options{Mode: calc.FLOAT}, s.Options())

	s.SetOptions(calc.Options{Mode: calc.INTEGER, Strict: true})
	assert.Equal(t, calc.Options{Mode: calc.FLOAT, Strict: true}, s.Options())

	// no overrides
	s.Override(nil, nil)
	assert.NoError(t, s.Reload(path))
	assert.Equal(t, calc.Options{Mode: calc.INTEGER}, s.Options())

	// missing directory
	_, err = s.WatchConfig("/missing/dir/calc.yaml")
	assert.Error(t, err)
}
