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
	"net/http"
	"net/url"

	"github.com/veteran-software/discord-api-wrapper/v10/logging"
	"github.com/veteran-software/discord-api-wrapper/v10/utilities"
)

var (
	// Rest is the package-wide Pipeline every endpoint wrapper calls
	// through. It is process-wide and lazily holds the HTTPS client, the
	// RateLimiter, and the RequestEngine behind it.
	Rest *Pipeline

	// Token is the bot credential applied to every request that doesn't
	// carry an explicit override.
	Token string

	// testClient, when non-nil, is swapped in by _test.go files to point
	// outbound requests at an httptest server instead of the real heimdall
	// transport.
	testClient *http.Client
)

// dynamicDoer lets tests swap testClient in after Rest has already been
// constructed, by checking it on every call instead of baking in a client
// at init time.
type dynamicDoer struct {
	fallback Doer
}

func (d dynamicDoer) Do(req *http.Request) (*http.Response, error) {
	if testClient != nil {
		return testClient.Do(req)
	}
	return d.fallback.Do(req)
}

func init() {
	cfg := NewConfiguration(WithDefaultAuth(""))
	Rest = NewPipeline(dynamicDoer{fallback: utilities.NewTransport()}, cfg)
}

// parseRoute parses a fully-formed request URL built by the endpoint
// wrapper files (base URL + path + optional query string already encoded).
func parseRoute(route string) *url.URL {
	u, err := url.Parse(route)
	if err != nil {
		logging.Errorln(logging.Discord, logging.FuncName(), err)
		return nil
	}

	return u
}

func authHeader() *string {
	if Token == "" {
		return nil
	}
	auth := "Bot " + Token
	return &auth
}

func fire(method string, u *url.URL, body any, reason *string) ([]byte, error) {
	rk := deriveRouteKey(method, u)
	respBody, _, err := Rest.Request(context.Background(), method, u.String(), rk, body, nil, authHeader(), reason, nil)
	if err != nil {
		logging.Errorln(logging.Discord, logging.FuncName(), err)
		return nil, err
	}
	return respBody, nil
}

func fireGetRequest(u *url.URL, body any, reason *string) ([]byte, error) {
	return fire(http.MethodGet, u, body, reason)
}

func firePostRequest(u *url.URL, body any, reason *string) ([]byte, error) {
	return fire(http.MethodPost, u, body, reason)
}

//goland:noinspection GoUnusedFunction
func firePutRequest(u *url.URL, body any, reason *string) ([]byte, error) {
	return fire(http.MethodPut, u, body, reason)
}

func firePatchRequest(u *url.URL, body any, reason *string) ([]byte, error) {
	return fire(http.MethodPatch, u, body, reason)
}

func fireDeleteRequest(u *url.URL, reason *string) error {
	_, err := fire(http.MethodDelete, u, nil, reason)
	return err
}
