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
	"net/url"
	"strings"
)

// RouteKey identifies a logical endpoint family: an HTTP method plus a path
// template, decorated with whichever major parameters the server uses to
// distinguish rate-limit buckets for that family.
type RouteKey struct {
	Method       string
	PathTemplate string

	ChannelID    string
	GuildID      string
	WebhookID    string
	WebhookToken string
}

// NewRouteKey builds a RouteKey from a method, a "{name}"-templated path,
// and the substitution values for those placeholders. Values whose name
// matches one of the major params (channel_id, guild_id, webhook_id,
// webhook_token) are additionally recorded for bucket identity.
func NewRouteKey(method, pathTemplate string, params map[string]any) RouteKey {
	rk := RouteKey{Method: method, PathTemplate: pathTemplate}
	for name, v := range params {
		switch name {
		case "channel_id":
			rk.ChannelID = fmt.Sprint(v)
		case "guild_id":
			rk.GuildID = fmt.Sprint(v)
		case "webhook_id":
			rk.WebhookID = fmt.Sprint(v)
		case "webhook_token":
			rk.WebhookToken = fmt.Sprint(v)
		}
	}
	return rk
}

// String returns the bucket-identity string "{channel_id}:{guild_id}:{path_template}".
//
// This deliberately omits webhook_id/webhook_token even though they are
// tracked as major params on the RouteKey itself and contribute to route
// equality via (method, route_key, credential) — matching disnake's
// Route.bucket property, which folds only channel_id and guild_id into the
// string. Unlike the Python original (which stringifies an absent id as the
// literal "None"), an absent component here is the Go zero value (""); see
// DESIGN.md for why that deviation is harmless and clearer.
func (rk RouteKey) String() string {
	return rk.ChannelID + ":" + rk.GuildID + ":" + rk.PathTemplate
}

// URL expands "{name}" placeholders in the path template against params,
// URL-encoding each substitution, and joins the result onto base.
func (rk RouteKey) URL(base string, params map[string]any) (string, error) {
	path := rk.PathTemplate
	for name, v := range params {
		placeholder := "{" + name + "}"
		if !strings.Contains(path, placeholder) {
			continue
		}
		path = strings.ReplaceAll(path, placeholder, url.PathEscape(fmt.Sprint(v)))
	}
	if strings.Contains(path, "{") {
		return "", fmt.Errorf("route key: unresolved placeholder in %q", path)
	}
	return base + path, nil
}

// routeSlotKey is the key under which a route's local limiter is stored in
// RateLimiter.routes: equality/hashing is on (method, route_key, credential)
// per spec section 3.
type routeSlotKey struct {
	Method     string
	RouteKey   string
	Credential string
}

func (rk RouteKey) slotKey(credential string) routeSlotKey {
	return routeSlotKey{Method: rk.Method, RouteKey: rk.String(), Credential: credential}
}
