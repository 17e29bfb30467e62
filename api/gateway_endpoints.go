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
	"fmt"
)

// GetGatewayResponse is the response body of GET /gateway.
type GetGatewayResponse struct {
	Url string `json:"url"`
}

// GetGatewayBotResponse is the response body of GET /gateway/bot.
type GetGatewayBotResponse struct {
	Url               string            `json:"url"`
	Shards            int               `json:"shards"`
	SessionStartLimit SessionStartLimit `json:"session_start_limit"`
}

// SessionStartLimit - Information on the current session start limit.
type SessionStartLimit struct {
	Total          int `json:"total"`
	Remaining      int `json:"remaining"`
	ResetAfter     int `json:"reset_after"`
	MaxConcurrency int `json:"max_concurrency"`
}

// GetGateway - Returns an object with a single valid WSS URL, which the
// client can use as a basis for Connecting. Clients should cache this value
// and only call this endpoint to retrieve a new URL if they are unable to
// properly establish a connection using the cached version of the URL.
func GetGateway() (*GetGatewayResponse, error) {
	u := parseRoute(fmt.Sprintf("%s/gateway", api))

	responseBytes, err := fireGetRequest(u, nil, nil)
	if err != nil {
		return nil, err
	}

	var resp GetGatewayResponse
	if err = decodeJSONBody(responseBytes, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetGatewayBot - Returns an object based on the information in Get
// Gateway, plus additional metadata that can help during the
// operation of large or sharded bots. Unlike the Get Gateway, this
// endpoint is authenticated and failures here are surfaced as
// GatewayNotFound.
func GetGatewayBot() (*GetGatewayBotResponse, error) {
	u := parseRoute(fmt.Sprintf("%s/gateway/bot", api))

	responseBytes, err := fireGetRequest(u, nil, nil)
	if err != nil {
		return nil, &GatewayNotFound{newHTTPException(nil, nil, err.Error())}
	}

	var resp GetGatewayBotResponse
	if err = decodeJSONBody(responseBytes, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
