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

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/getryft/ryft-calc/calc"
	"github.com/getryft/ryft-calc/rest"
	"github.com/getryft/ryft-calc/shell"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/tylerb/graceful.v1"
)

var (
	// logger instance
	log = logrus.New()
)

// customized via Makefile
var (
	Version = "development"
	GitHash = "unknown"
)

// config file name kingpin.Value
// parses server configuration on value set
type serverConfigValue struct {
	s *rest.Server // server instance
	v string       // configuration path
}

// set server's configuration file
func (f *serverConfigValue) Set(s string) error {
	f.v = s
	return f.s.ParseConfig(f.v)
}

// get server's configuration file
func (f *serverConfigValue) String() string {
	return f.v
}

// main entry point
func main() {
	server := rest.NewServer() // server instance
	config := &serverConfigValue{s: server}

	var mode string
	var strict, serve bool
	var expr string

	// parse command line arguments
	kingpin.Version(fmt.Sprintf("%s (%s)", Version, GitHash))
	kingpin.Flag("config", "Configuration in YML format.").Short('c').SetValue(config)
	kingpin.Flag("mode", "Evaluation mode: int, float.").Short('m').EnumVar(&mode, "int", "integer", "float")
	kingpin.Flag("strict", "Reject anything left after the expression.").BoolVar(&strict)
	kingpin.Flag("debug", "Debug mode (more log messages).").Short('d').BoolVar(&server.Config.DebugMode)
	kingpin.Flag("logging", "Fine-tuned logging levels.").StringVar(&server.Config.Logging)
	kingpin.Flag("serve", "Run HTTP server instead of the prompt.").Short('s').BoolVar(&serve)
	kingpin.Flag("address", "Address:port to listen on.").Short('l').StringVar(&server.Config.ListenAddress)
	kingpin.Arg("expression", "Expression to evaluate. Interactive prompt if omitted.").StringVar(&expr)
	kingpin.Parse()

	// prepare server to start
	if err := server.Prepare(); err != nil {
		log.WithError(err).Fatal("failed to prepare configuration")
	}

	if server.Config.DebugMode {
		log.Level = logrus.DebugLevel
	}

	// command line overrides configuration, also on reload
	var overrideMode *calc.Mode
	var overrideStrict *bool
	if len(mode) != 0 {
		m, err := calc.ParseMode(mode)
		if err != nil {
			kingpin.FatalUsage("%s", err)
		}
		overrideMode = &m
	}
	if strict {
		overrideStrict = &strict
	}
	server.Override(overrideMode, overrideStrict)
	opts := server.Options()

	log.WithFields(map[string]interface{}{
		"version":  Version,
		"git-hash": GitHash,
		"config":   config.v,
		"options":  opts,
	}).Debug("starting...")

	switch {
	case serve:
		runServer(server, config.v)

	case len(expr) != 0:
		if err := shell.Once(os.Stdout, expr, opts); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			os.Exit(1)
		}

	default:
		if err := shell.Loop(os.Stdin, os.Stdout, opts); err != nil {
			log.WithError(err).Fatal("failed to read input")
		}
	}
}

// run HTTP server until interrupted
func runServer(server *rest.Server, configPath string) {
	// be quiet and efficient in production
	if !server.Config.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// reload on configuration change
	if len(configPath) != 0 {
		cw, err := server.WatchConfig(configPath)
		if err != nil {
			log.WithError(err).Warn("failed to watch configuration, reload disabled")
		} else {
			defer cw.Close()
		}
	}

	log.WithFields(map[string]interface{}{
		"version": Version,
		"address": server.Config.ListenAddress,
		"options": server.Options(),
	}).Info("starting server...")

	ep := &http.Server{
		Addr:    server.Config.ListenAddress,
		Handler: server.NewRouter(Version, GitHash),
	}
	ep.ReadTimeout = server.GetHttpTimeout()
	ep.WriteTimeout = server.GetHttpTimeout()

	worker := &graceful.Server{
		Timeout: server.GetShutdownTimeout(),
		Server:  ep,
	}

	if err := worker.ListenAndServe(); err != nil {
		log.WithError(err).WithField("address", ep.Addr).Fatal("failed to listen HTTP")
	}

	log.Info("server stopped")
}
