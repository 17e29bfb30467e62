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
	"net/url"
	"time"

	"github.com/veteran-software/discord-api-wrapper/v10/logging"
)

// DispatchFunc receives pipeline-observed events, currently only RateLimited.
// It is invoked in its own goroutine so a slow observer never blocks the
// pipeline (spec.md section 9, "Event observer").
type DispatchFunc func(event RateLimitedEvent)

// RateLimitedEvent mirrors the rate_limited observable event: (limit,
// remaining, reset_after, bucket_id, scope).
type RateLimitedEvent struct {
	Limit      int
	Remaining  int
	ResetAfter time.Duration
	BucketID   string
	Scope      string
}

// Configuration holds the pipeline's tunables. Built via functional options
// the way the teacher's builder-style Set.../With... methods read.
type Configuration struct {
	defaultMaxPerSecondV int
	timeOffsetV          time.Duration
	defaultAuth          string
	proxy                *url.URL
	proxyAuth            *url.Userinfo
	dispatch             DispatchFunc
	apiVersion           int
}

// Option configures a Configuration.
type Option func(*Configuration)

// NewConfiguration builds a Configuration with the documented defaults
// (default_max_per_second = 50, time_offset = 0, API version 10) and
// applies opts on top.
func NewConfiguration(opts ...Option) Configuration {
	cfg := Configuration{
		defaultMaxPerSecondV: 50,
		apiVersion:           10,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDefaultMaxPerSecond overrides the per-credential global cap.
func WithDefaultMaxPerSecond(n int) Option {
	return func(c *Configuration) { c.defaultMaxPerSecondV = n }
}

// WithTimeOffset sets the constant lag compensation added to every
// server-reported interval.
func WithTimeOffset(d time.Duration) Option {
	return func(c *Configuration) { c.timeOffsetV = d }
}

// WithDefaultAuth sets the fallback credential used when a call does not
// override one.
func WithDefaultAuth(token string) Option {
	return func(c *Configuration) { c.defaultAuth = token }
}

// WithProxy configures an outbound proxy and its credentials.
func WithProxy(proxy *url.URL, auth *url.Userinfo) Option {
	return func(c *Configuration) {
		c.proxy = proxy
		c.proxyAuth = auth
	}
}

// WithDispatch installs the observer callback for RateLimitedEvent.
func WithDispatch(fn DispatchFunc) Option {
	return func(c *Configuration) { c.dispatch = fn }
}

func (c Configuration) defaultMaxPerSecond() int {
	if c.defaultMaxPerSecondV <= 0 {
		return 50
	}
	return c.defaultMaxPerSecondV
}

func (c Configuration) timeOffset() time.Duration { return c.timeOffsetV }

// SetAPIVersion swaps the base API version at runtime. Only 9 and 10 are
// accepted; 9 is accepted but logs a warning since 10 is current.
func (c *Configuration) SetAPIVersion(version int) error {
	switch version {
	case 10:
		c.apiVersion = version
		return nil
	case 9:
		c.apiVersion = version
		logging.Warnln(logging.Discord, logging.FuncName(), "API version 9 is deprecated; prefer 10")
		return nil
	default:
		return &ValueError{Message: "unsupported API version: must be 9 or 10"}
	}
}

func (c Configuration) APIVersion() int { return c.apiVersion }

func (c Configuration) dispatchEvent(event RateLimitedEvent) {
	if c.dispatch == nil {
		return
	}
	go c.dispatch(event)
}
