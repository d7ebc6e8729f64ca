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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getryft/ryft-calc/shell"

	"github.com/stretchr/testify/assert"
)

// logging levels
func TestSetLoggingLevel(t *testing.T) {
	for k, v := range makeDefaultLoggingOptions("debug") {
		assert.NoError(t, setLoggingLevel(k, v))
	}

	for k, v := range makeDefaultLoggingOptions("error") {
		assert.NoError(t, setLoggingLevel(k, v))
	}

	// shell logger
	if assert.NoError(t, setLoggingLevel("shell", "warning")) {
		assert.Equal(t, "warning", shell.GetLogLevel().String())
	}
	assert.NoError(t, setLoggingLevel("shell", "error"))

	// unknown log level
	if err := setLoggingLevel("core", "bug"); assert.Error(t, err) {
		assert.Contains(t, err.Error(), "failed to parse level")
	}

	// unknown logger name
	if err := setLoggingLevel("missing-log", "debug"); assert.Error(t, err) {
		assert.Contains(t, err.Error(), "unknown logger name")
	}
}

// test /logging/level
func TestLogging(t *testing.T) {
	_, router := newFake(true)
	defer testSetLogLevel()

	check := func(query string, expected map[string]string) {
		w := doRequest(router, httptest.NewRequest(http.MethodGet, "/logging/level"+query, nil))
		if assert.Equal(t, http.StatusOK, w.Code, "query:%s", query) {
			var info map[string]string
			if assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &info)) {
				assert.Equal(t, expected, info)
			}
		}
	}

	check("", map[string]string{"core": "error", "core/config": "error", "shell": "error"})
	check("?core=info&shell=warning", map[string]string{"core": "info", "core/config": "error", "shell": "warning"})

	w := doRequest(router, httptest.NewRequest(http.MethodPost, "/logging/level?core=bug", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "failed to change logging level")
}
