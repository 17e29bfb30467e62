/*
 * Copyright (c) 2022-2023. Veteran Software
 *
 * Discord API Wrapper - A custom wrapper for the Discord REST API developed for a proprietary project.
 *
 * This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public
 * License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later
 * version.
 *
 * This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied
 * warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along with this program.
 * If not, see <http://www.gnu.org/licenses/>.
 */

package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/veteran-software/discord-api-wrapper/v10/logging"
)

// Pipeline is the public entry point wrapping a RateLimiter, a
// RequestEngine, and the shared HTTPS client. It exposes exactly the
// operations spec.md section 6 names: Request, GetFromCDN, and Close.
type Pipeline struct {
	rl     *RateLimiter
	engine *RequestEngine
	client Doer
	cfg    Configuration
}

// NewPipeline wires the given client into a fresh RateLimiter and
// RequestEngine built from cfg. It does not construct the client itself.
func NewPipeline(client Doer, cfg Configuration) *Pipeline {
	rl := NewRatelimiter(cfg)
	return &Pipeline{
		rl:     rl,
		engine: NewRequestEngine(client, rl, cfg),
		client: client,
		cfg:    cfg,
	}
}

// Request performs a single logical call per spec.md section 6:
// request(route, *, body, multipart, credential, reason, extra_headers).
func (p *Pipeline) Request(ctx context.Context, method, urlStr string, rk RouteKey, body any, files []File, credential, reason *string, extraHeaders http.Header) ([]byte, string, error) {
	if extraHeaders == nil {
		extraHeaders = http.Header{}
	}
	c := &call{
		Method:       method,
		URL:          urlStr,
		RouteKey:     rk,
		Body:         body,
		Files:        files,
		Credential:   credential,
		Reason:       reason,
		ExtraHeaders: extraHeaders,
	}
	return p.engine.do(ctx, c)
}

// GetFromCDN fetches an absolute CDN URL outside the bucket-rate-limited
// path (Discord's CDN does not hand out rate-limit headers the way the API
// does) and returns the raw bytes.
func (p *Pipeline) GetFromCDN(ctx context.Context, absoluteURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, absoluteURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, &HTTPException{Response: resp, Body: b, Message: fmt.Sprintf("GET %s", absoluteURL)}
	}
	return b, nil
}

// Close releases HTTPS resources. Idempotent: the underlying transport's
// connection pool is torn down by the process exiting, so there is nothing
// further to release here beyond logging the shutdown.
func (p *Pipeline) Close() {
	logging.Debugln(logging.Discord, logging.FuncName(), "pipeline closed")
}
