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

package utilities

import (
	"net/http"
	"time"

	"github.com/gojek/heimdall/v7"
	"github.com/gojek/heimdall/v7/httpclient"
)

var (
	initialTimeout        = 500 * time.Millisecond
	maxTimeout            = 25 * time.Second
	exponentFactor        = 2.0
	maximumJitterInterval = 2 * time.Millisecond
	retryCount            = 2
)

// NewTransport builds the heimdall-backed HTTP client used as the transport
// underneath RequestEngine. Its exponential-backoff retries absorb
// connection-level failures (DNS hiccups, resets) before a response ever
// reaches the bucket-aware rate limiter, which runs its own, complementary
// retry loop on top of this.
func NewTransport() *httpclient.Client {
	backoff := heimdall.NewExponentialBackoff(initialTimeout, maxTimeout, exponentFactor, maximumJitterInterval)
	retrier := heimdall.NewRetrier(backoff)

	return httpclient.NewClient(
		httpclient.WithRetrier(retrier),
		httpclient.WithRetryCount(retryCount),
	)
}

// Doer is satisfied by both *httpclient.Client and *http.Client, so tests
// can swap in a plain http.Client pointed at an httptest server.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

