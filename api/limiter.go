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
	"strconv"
	"sync"
	"time"
)

// limiterState is a tagged variant of a route slot's lifecycle, so illegal
// combinations (e.g. both canonical and demoted) are unrepresentable.
type limiterState int

const (
	stateFresh limiterState = iota
	stateBound
	stateCanonical
	stateDemoted
	stateDenied
)

// limiter is a single token-bucket-like gate with a reset timer and a
// resettable ready latch. It backs both flavors described by spec: a local
// (per-route) limiter and the global (per-credential) limiter, toggled by
// isGlobal.
//
// Go schedules goroutines preemptively, so unlike the cooperative original
// this type guards every field with a mutex and treats the "check remaining,
// clear the gate" step as one critical section (see the REDESIGN FLAGS
// section of SPEC_FULL.md).
type limiter struct {
	mu sync.Mutex

	isGlobal bool

	state       limiterState
	bucketID    string
	migratingTo string

	limit       int
	remaining   int
	resetAfter  time.Duration
	resetAt     time.Time
	firstUpdate bool
	timeOffset  time.Duration

	readyOpen bool
	readyCh   chan struct{}

	resetCancel context.CancelFunc
	resetArmed  time.Duration // the `after` duration the in-flight reset task was armed with
}

func newLimiter(isGlobal bool, initialLimit int, timeOffset time.Duration) *limiter {
	return &limiter{
		isGlobal:   isGlobal,
		limit:      initialLimit,
		remaining:  initialLimit,
		timeOffset: timeOffset,
		readyOpen:  true,
		readyCh:    make(chan struct{}),
	}
}

// openLocked sets the ready latch, waking every current waiter.
func (l *limiter) openLocked() {
	if !l.readyOpen {
		l.readyOpen = true
		close(l.readyCh)
	}
}

// clearLocked clears the ready latch. Later waiters block on a fresh
// channel; this never affects goroutines already past their receive.
func (l *limiter) clearLocked() {
	if l.readyOpen {
		l.readyOpen = false
		l.readyCh = make(chan struct{})
	}
}

// armResetLocked (re)arms the reset task for `after` from now. Per spec,
// arming is pessimistic: a non-increasing duration leaves an already-armed
// task alone, and a larger one cancels and restarts it. The comparison is
// against the duration the in-flight task was armed with, not a deadline
// recomputed from time.Now() - two calls with the very same `after` issued
// moments apart would otherwise always look "larger" than the first and
// needlessly cancel+restart the timer from scratch every time.
func (l *limiter) armResetLocked(after time.Duration) {
	if l.resetCancel != nil {
		if after <= l.resetArmed {
			return
		}
		l.resetCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.resetCancel = cancel
	l.resetArmed = after
	go l.runResetTask(ctx, after)
}

func (l *limiter) runResetTask(ctx context.Context, after time.Duration) {
	t := time.NewTimer(after)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return
	case <-t.C:
	}

	l.mu.Lock()
	l.remaining = l.limit
	l.resetCancel = nil
	l.resetArmed = 0
	l.openLocked()
	l.mu.Unlock()
}

func (l *limiter) cancelResetLocked() {
	if l.resetCancel != nil {
		l.resetCancel()
		l.resetCancel = nil
		l.resetArmed = 0
	}
}

// acquire suspends until a token is available, decrementing remaining on
// success. It returns *deniedError if the slot was permanently denied by a
// 404, or *migratingError if the limiter has been demoted toward another
// bucket.
func (l *limiter) acquire(ctx context.Context) error {
	for {
		l.mu.Lock()

		if l.isGlobal && l.resetCancel == nil {
			// A global limiter's reset window is wall-clock, not
			// response-driven: the first acquisition starts the clock.
			l.armResetLocked(time.Second + l.timeOffset)
		}

		switch l.state {
		case stateDenied:
			l.mu.Unlock()
			return &deniedError{}
		case stateDemoted:
			bucketID := l.migratingTo
			l.mu.Unlock()
			return &migratingError{bucketID: bucketID}
		}

		if l.remaining > 0 {
			l.remaining--
			l.mu.Unlock()
			return nil
		}

		// remaining == 0: the single atomic "I am the requestor who will
		// exhaust the bucket" step - clear the gate and make sure a reset
		// is in flight, then wait on it outside the lock.
		if l.readyOpen {
			l.clearLocked()
		}
		l.armResetLocked(l.resetAfter)
		wait := l.readyCh
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-wait:
		}
		// loop: another waiter may have already consumed the token.
	}
}

// migrateTo marks this limiter deprecated toward bucketID and wakes every
// waiter so they observe the migrating signal and retry against the
// canonical limiter instead.
func (l *limiter) migrateTo(bucketID string) {
	l.mu.Lock()
	l.state = stateDemoted
	l.migratingTo = bucketID
	l.cancelResetLocked()
	l.openLocked()
	l.mu.Unlock()
}

// markCanonical records this limiter as the canonical owner of bucketID.
func (l *limiter) markCanonical(bucketID string) {
	l.mu.Lock()
	l.bucketID = bucketID
	l.state = stateCanonical
	l.mu.Unlock()
}

// update folds response headers (and the status code, for 404 denial) into
// limiter state. For a local limiter it implements the header fold rules of
// spec section 4.1. A global limiter never mutates through update: its
// scope-429 behavior is applyGlobal429, called directly by the engine.
func (l *limiter) update(headers http.Header, status int) error {
	isGlobalHeader := headers.Get("X-RateLimit-Global") == "true"

	if l.isGlobal {
		// The global limiter's limit is configured, not discovered, and its
		// only documented scope-429 behavior lives in applyGlobal429; the
		// generic per-route fold below (X-RateLimit-Limit included) never
		// applies to it, even when X-RateLimit-Global: true is present.
		return nil
	} else if isGlobalHeader {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if status == http.StatusNotFound && !l.isGlobal {
		l.state = stateDenied
	}

	if hb := headers.Get("X-RateLimit-Bucket"); hb != "" && !l.isGlobal {
		switch {
		case l.bucketID == "":
			l.bucketID = hb
			if l.state == stateFresh {
				l.state = stateBound
			}
		case l.bucketID != hb:
			return &incorrectBucketError{headerBucket: hb}
		}
	}

	if lim := headers.Get("X-RateLimit-Limit"); lim != "" {
		if v, err := strconv.Atoi(lim); err == nil {
			l.limit = v
		}
	}

	if rem := headers.Get("X-RateLimit-Remaining"); rem != "" {
		if v, err := strconv.Atoi(rem); err == nil {
			if !l.firstUpdate {
				l.remaining = v
			} else if v < l.remaining {
				// pessimistic minimum: guard against reordered responses,
				// and never let a merged/migrated count go negative.
				l.remaining = v
			}
			if l.remaining < 0 {
				l.remaining = 0
			}
		}
	}

	if rs := headers.Get("X-RateLimit-Reset"); rs != "" {
		if f, err := strconv.ParseFloat(rs, 64); err == nil {
			l.resetAt = time.Unix(0, int64(f*float64(time.Second)))
		}
	}

	if ra := headers.Get("X-RateLimit-Reset-After"); ra != "" {
		if f, err := strconv.ParseFloat(ra, 64); err == nil {
			after := time.Duration(f*float64(time.Second)) + l.timeOffset
			if after > l.resetAfter {
				l.resetAfter = after
				l.armResetLocked(after)
			}
		}
	}

	l.firstUpdate = true

	if l.remaining > 0 {
		l.openLocked()
	}

	return nil
}

// applyGlobal429 folds a 429 response whose scope is "global": remaining
// drops to zero and the reset window is whatever retry_after the server
// reported (preferring the JSON body over the Retry-After header is the
// caller's job), plus the configured time offset.
func (l *limiter) applyGlobal429(retryAfter time.Duration) {
	l.mu.Lock()
	l.remaining = 0
	after := retryAfter + l.timeOffset
	l.resetAfter = after
	l.clearLocked()
	l.armResetLocked(after)
	l.mu.Unlock()
}

// snapshot is a read-only copy used by tests and the rate_limited event.
type snapshot struct {
	Limit      int
	Remaining  int
	ResetAfter time.Duration
	BucketID   string
}

func (l *limiter) snapshot() snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return snapshot{Limit: l.limit, Remaining: l.remaining, ResetAfter: l.resetAfter, BucketID: l.bucketID}
}
