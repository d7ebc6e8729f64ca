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
	"net/http"
	"time"

	"github.com/getryft/ryft-calc/middleware/cors"

	"github.com/gin-gonic/gin"
)

// NewRouter creates HTTP router with all the endpoints.
func (s *Server) NewRouter(version, gitHash string) *gin.Engine {
	router := gin.New()

	if len(s.Config.CorsOrigins) != 0 {
		router.Use(cors.Cors(s.Config.CorsOrigins))
	}

	// /version API endpoint (without logging!)
	router.GET("/version", func(ctx *gin.Context) {
		info := map[string]interface{}{
			"version":  version,
			"git-hash": gitHash,
		}
		ctx.JSON(http.StatusOK, info)
	})

	// default middleware: logger, recover
	router.Use(func(ctx *gin.Context) {
		beg := time.Now()
		path := ctx.Request.URL.Path
		method := ctx.Request.Method

		ctx.Next() // do actual processing

		log.WithFields(map[string]interface{}{
			"status":  ctx.Writer.Status(),
			"client":  ctx.ClientIP(),
			"request": ctx.Request.URL,
			"latency": time.Since(beg),
		}).Infof("[%s]: %s %s", "REST", method, path)
	})
	router.Use(gin.Recovery())

	router.GET("/eval", s.DoEval)
	router.POST("/eval", s.DoEval)

	// debug API endpoints
	if s.Config.DebugMode {
		router.GET("/logging/level", s.DoLoggingLevel)
		router.POST("/logging/level", s.DoLoggingLevel)
	}

	return router
}
