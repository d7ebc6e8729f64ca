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
	"fmt"

	"github.com/getryft/ryft-calc/calc"

	"github.com/mitchellh/mapstructure"
)

// EvaluatorOptions contains evaluator options from configuration file
type EvaluatorOptions struct {
	Mode   string `json:"mode,omitempty"`   // "int" or "float"
	Strict bool   `json:"strict,omitempty"` // reject trailing lexemes
}

// ParseConfig parses evaluator options from configuration file
func (opts *EvaluatorOptions) ParseConfig(params interface{}) error {
	dcfg := mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           opts,
		TagName:          "json",
	}
	if d, err := mapstructure.NewDecoder(&dcfg); err != nil {
		return fmt.Errorf("failed to create decoder: %s", err)
	} else if err := d.Decode(params); err != nil {
		return fmt.Errorf("failed to decode: %s", err)
	}

	return nil // OK
}

// Options converts to evaluation options.
func (opts EvaluatorOptions) Options() (calc.Options, error) {
	mode, err := calc.ParseMode(opts.Mode)
	if err != nil {
		return calc.DefaultOptions(), err
	}

	return calc.Options{
		Mode:   mode,
		Strict: opts.Strict,
	}, nil
}
