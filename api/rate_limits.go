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
	"sync"
)

// RateLimiter is the central state machine of the pipeline. It owns three
// indexes: per-credential global limiters, per-(method, route-key,
// credential) local limiters, and a canonical table of local limiters keyed
// by server-assigned bucket id. Every index access here is short and
// non-blocking; Limiter.acquire is where any actual waiting happens,
// outside this lock.
type RateLimiter struct {
	mu sync.Mutex

	globals map[string]*limiter       // credential ("" = none) -> global limiter
	routes  map[routeSlotKey]*limiter // (method, route_key, credential) -> local limiter
	buckets map[string]*limiter       // bucket id -> canonical local limiter

	cfg Configuration
}

// NewRatelimiter returns a new RateLimiter configured from cfg.
//
//goland:noinspection SpellCheckingInspection
func NewRatelimiter(cfg Configuration) *RateLimiter {
	return &RateLimiter{
		globals: make(map[string]*limiter),
		routes:  make(map[routeSlotKey]*limiter),
		buckets: make(map[string]*limiter),
		cfg:     cfg,
	}
}

// globalLimiter looks up or lazily creates the global limiter for credential.
func (r *RateLimiter) globalLimiter(credential string) *limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.globals[credential]; ok {
		return l
	}

	l := newLimiter(true, r.cfg.defaultMaxPerSecond(), r.cfg.timeOffset())
	r.globals[credential] = l
	return l
}

// routeLimiter looks up or lazily creates the local limiter for key.
func (r *RateLimiter) routeLimiter(key routeSlotKey) *limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.routes[key]; ok {
		return l
	}

	l := newLimiter(false, 1, r.cfg.timeOffset())
	r.routes[key] = l
	return l
}

// setRouteLimiter rebinds key to l, used when a slot is migrated or rebound
// to a canonical limiter discovered via X-RateLimit-Bucket.
func (r *RateLimiter) setRouteLimiter(key routeSlotKey, l *limiter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[key] = l
}

// canonicalLimiter returns the registered canonical owner of bucketID, if any.
func (r *RateLimiter) canonicalLimiter(bucketID string) (*limiter, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.buckets[bucketID]
	return l, ok
}

// rebind implements retry-loop step 5 (IncorrectBucket recovery): consult
// the canonical table for headerBucket. If a canonical limiter already owns
// it, rebind key to that limiter. Otherwise mint a fresh limiter, bind it at
// key, and return it for the caller to replay the update against.
func (r *RateLimiter) rebind(key routeSlotKey, headerBucket string) *limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if canonical, ok := r.buckets[headerBucket]; ok {
		r.routes[key] = canonical
		return canonical
	}

	fresh := newLimiter(false, 1, r.cfg.timeOffset())
	r.routes[key] = fresh
	return fresh
}

// reconcile implements retry-loop step 6. Called after a successful local
// update once l's bucket id is known. If another limiter already owns that
// bucket id canonically, key is rebound to it and l is demoted (waking its
// waiters); the caller must replay the update against the returned limiter.
// Otherwise l itself is registered as canonical and returned unchanged.
func (r *RateLimiter) reconcile(key routeSlotKey, l *limiter, bucketID string) *limiter {
	r.mu.Lock()
	canonical, ok := r.buckets[bucketID]
	if !ok {
		r.buckets[bucketID] = l
		r.mu.Unlock()
		l.markCanonical(bucketID)
		return l
	}
	if canonical == l {
		r.mu.Unlock()
		return l
	}

	r.routes[key] = canonical
	r.mu.Unlock()

	l.migrateTo(bucketID)
	return canonical
}
