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
	"io/ioutil"
	"net"
	"sync"
	"time"

	"github.com/getryft/ryft-calc/calc"

	"gopkg.in/yaml.v2"
)

// ServerConfig server's configuration.
type ServerConfig struct {
	DebugMode bool `yaml:"debug-mode,omitempty"`

	Logging        string                       `yaml:"logging,omitempty"`
	LoggingOptions map[string]map[string]string `yaml:"logging-options,omitempty"`

	ListenAddress   string `yaml:"address,omitempty"`
	HttpTimeout     string `yaml:"http-timeout,omitempty"`
	ShutdownTimeout string `yaml:"shutdown-timeout,omitempty"`
	CorsOrigins     string `yaml:"cors-origins,omitempty"`

	// evaluator defaults, see EvaluatorOptions
	Evaluator map[string]interface{} `yaml:"evaluator,omitempty"`
}

// Server instance
type Server struct {
	Config ServerConfig

	httpTimeout     time.Duration
	shutdownTimeout time.Duration

	// default evaluation options, may be changed on config reload
	options     calc.Options
	optionsLock sync.RWMutex

	// command line overrides, applied on top of any configuration
	overrideMode   *calc.Mode
	overrideStrict *bool
}

// create new server instance
func NewServer() *Server {
	s := new(Server)

	// default configuration
	s.Config.ListenAddress = ":8780"
	s.Config.CorsOrigins = "*"
	s.Config.Evaluator = map[string]interface{}{}
	s.options = calc.DefaultOptions()

	return s // OK
}

// parse server configuration from YML file
func (s *Server) ParseConfig(fileName string) error {
	if len(fileName) == 0 {
		return nil // OK
	}

	// read full file content
	buf, err := ioutil.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read configuration from %q: %s", fileName, err)
	}

	err = yaml.Unmarshal(buf, &s.Config)
	if err != nil {
		return fmt.Errorf("failed to parse configuration from %q: %s", fileName, err)
	}

	return nil // OK
}

// apply configuration
func (s *Server) Prepare() (err error) {
	if len(s.Config.ListenAddress) != 0 {
		if _, err = net.ResolveTCPAddr("tcp", s.Config.ListenAddress); err != nil {
			return fmt.Errorf("%q is not a valid TCP address: %s", s.Config.ListenAddress, err)
		}
	}

	if s.httpTimeout, err = parseTimeout(s.Config.HttpTimeout, 1*time.Minute); err != nil {
		return fmt.Errorf("failed to parse http timeout: %s", err)
	}
	if s.shutdownTimeout, err = parseTimeout(s.Config.ShutdownTimeout, 10*time.Second); err != nil {
		return fmt.Errorf("failed to parse shutdown timeout: %s", err)
	}

	// automatic debug mode
	if len(s.Config.Logging) == 0 && s.Config.DebugMode {
		s.Config.Logging = "debug"

		// if no "debug" section, create it...
		if _, ok := s.Config.LoggingOptions[s.Config.Logging]; !ok {
			if s.Config.LoggingOptions == nil {
				s.Config.LoggingOptions = make(map[string]map[string]string)
			}
			s.Config.LoggingOptions[s.Config.Logging] = makeDefaultLoggingOptions("debug")
		}
	}

	if err = applyLoggingOptions(&s.Config); err != nil {
		return err
	}

	// evaluator options
	var eval EvaluatorOptions
	if err = eval.ParseConfig(s.Config.Evaluator); err != nil {
		return fmt.Errorf("failed to parse evaluator options: %s", err)
	}
	opts, err := eval.Options()
	if err != nil {
		return fmt.Errorf("bad evaluator options: %s", err)
	}
	s.SetOptions(opts)

	return nil // OK
}

// Reload re-reads the configuration file and applies
// logging levels and evaluator options. Other options are ignored.
func (s *Server) Reload(fileName string) error {
	tmp := NewServer()
	if err := tmp.ParseConfig(fileName); err != nil {
		return err
	}
	tmp.Config.DebugMode = s.Config.DebugMode
	tmp.Config.ListenAddress = "" // not changed on reload

	if err := tmp.Prepare(); err != nil {
		return err
	}

	s.SetOptions(tmp.Options())
	return nil // OK
}

// Override sets evaluation options that configuration cannot change.
// nil means no override.
func (s *Server) Override(mode *calc.Mode, strict *bool) {
	s.optionsLock.Lock()
	defer s.optionsLock.Unlock()
	s.overrideMode = mode
	s.overrideStrict = strict
	s.options = s.applyOverrides(s.options)
}

// apply command line overrides, lock should be held
func (s *Server) applyOverrides(opts calc.Options) calc.Options {
	if s.overrideMode != nil {
		opts.Mode = *s.overrideMode
	}
	if s.overrideStrict != nil {
		opts.Strict = *s.overrideStrict
	}
	return opts
}

// Options gets default evaluation options.
func (s *Server) Options() calc.Options {
	s.optionsLock.RLock()
	defer s.optionsLock.RUnlock()
	return s.options
}

// SetOptions changes default evaluation options.
// Command line overrides still take precedence.
func (s *Server) SetOptions(opts calc.Options) {
	s.optionsLock.Lock()
	defer s.optionsLock.Unlock()
	s.options = s.applyOverrides(opts)
}

// get read/write http timeout
func (s *Server) GetHttpTimeout() time.Duration {
	return s.httpTimeout
}

// get graceful shutdown timeout
func (s *Server) GetShutdownTimeout() time.Duration {
	return s.shutdownTimeout
}

// parse duration, empty string means default
func parseTimeout(s string, def time.Duration) (time.Duration, error) {
	if len(s) == 0 {
		return def, nil
	}

	return time.ParseDuration(s)
}
