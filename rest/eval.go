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
	"io"
	"math"
	"net/http"
	"time"

	"github.com/getryft/ryft-calc/calc"
	"github.com/getryft/ryft-calc/rest/codec"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// maximum size of the /eval request body
const maxEvalBodySize = 1 << 20

// EvalParams contains all the bound parameters for the /eval endpoint.
type EvalParams struct {
	Expr   string `form:"expr" json:"expr" msgpack:"expr" binding:"required"`
	Mode   string `form:"mode" json:"mode,omitempty" msgpack:"mode,omitempty"` // "" for server's default
	Strict *bool  `form:"strict" json:"strict,omitempty" msgpack:"strict,omitempty"`
}

// EvalResult is the /eval response.
type EvalResult struct {
	Expr   string      `json:"expr" msgpack:"expr"`
	Mode   string      `json:"mode" msgpack:"mode"`
	Result interface{} `json:"result" msgpack:"result"` // int64, float64 or string for NaN and infinities
}

// Handle /eval endpoint.
func (server *Server) DoEval(ctx *gin.Context) {
	// recover from panics if any
	defer RecoverFromPanic(ctx)

	requestStartTime := time.Now() // performance metric

	// parse request parameters
	if ctx.Request.Body != nil {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxEvalBodySize)
	}
	params := EvalParams{}
	if ctx.ContentType() == gin.MIMEJSON {
		if err := bindOptionalJson(ctx.Request, &params); err != nil {
			panic(NewError(http.StatusBadRequest, err.Error()).
				WithDetails("failed to parse request JSON parameters"))
		}
	}
	if err := binding.Form.Bind(ctx.Request, &params); err != nil {
		panic(NewError(http.StatusBadRequest, err.Error()).
			WithDetails("failed to parse request parameters"))
	}

	opts := server.Options() // defaults
	if len(params.Mode) != 0 {
		mode, err := calc.ParseMode(params.Mode)
		if err != nil {
			panic(NewError(http.StatusBadRequest, err.Error()).
				WithDetails("failed to parse evaluation mode"))
		}
		opts.Mode = mode
	}
	if params.Strict != nil {
		opts.Strict = *params.Strict
	}

	accept := ctx.NegotiateFormat(codec.GetSupportedMimeTypes()...)
	// default to JSON
	if accept == "" {
		accept = codec.MIME_JSON
	}

	res, err := calc.Evaluate(params.Expr, opts)
	log.WithFields(map[string]interface{}{
		"expr":    params.Expr,
		"options": opts,
		"result":  res,
		"error":   err,
		"elapsed": time.Since(requestStartTime),
	}).Debug("expression evaluated")
	if err != nil {
		panic(NewError(http.StatusBadRequest, err.Error()).
			WithDetails(calc.ClassOf(err) + " error"))
	}

	enc, err := codec.NewEncoder(ctx.Writer, accept)
	if err != nil {
		panic(NewError(http.StatusUnsupportedMediaType, err.Error()).
			WithDetails("failed to get encoder"))
	}
	defer enc.Close()

	ctx.Header("Content-Type", accept)
	ctx.Status(http.StatusOK)
	if err := enc.Encode(EvalResult{
		Expr:   params.Expr,
		Mode:   res.Mode.String(),
		Result: resultValue(res),
	}); err != nil {
		// header is already sent, just log
		log.WithError(err).Warn("failed to encode result")
	}
}

// get result value suitable for any encoder.
// JSON has no NaN and infinities, so string is used instead.
func resultValue(res calc.Result) interface{} {
	if res.Mode == calc.FLOAT && (math.IsNaN(res.Float) || math.IsInf(res.Float, 0)) {
		return res.String()
	}

	return res.Interface()
}

// bind to JSON, ignore empty body
func bindOptionalJson(req *http.Request, obj interface{}) error {
	decoder := json.NewDecoder(req.Body)
	if err := decoder.Decode(obj); err != nil {
		if err != io.EOF { // EOF is ignored
			return err
		}
	}

	return nil // OK
}
