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
	"sync"
	"testing"
	"time"
)

func TestNewRatelimiter(t *testing.T) {
	r := NewRatelimiter(NewConfiguration())
	if r.globals == nil || r.routes == nil || r.buckets == nil {
		t.Fatalf("NewRatelimiter() left an index nil: %+v", r)
	}
}

// TestLimiter_AcquireRespectsLimit is property 1: within one reset window,
// the count of successful acquire() returns is <= limit.
func TestLimiter_AcquireRespectsLimit(t *testing.T) {
	l := newLimiter(false, 3, 0)

	for i := 0; i < 3; i++ {
		if err := l.acquire(context.Background()); err != nil {
			t.Fatalf("acquire %d: %v", i, err)
		}
	}

	if l.snapshot().Remaining != 0 {
		t.Fatalf("remaining = %d, want 0", l.snapshot().Remaining)
	}
}

// TestLimiter_RemainingBounds is property 3: remaining is always in [0, limit].
func TestLimiter_RemainingBounds(t *testing.T) {
	l := newLimiter(false, 2, 0)
	headers := http.Header{}
	headers.Set("X-RateLimit-Remaining", "-5")

	if err := l.update(headers, http.StatusOK); err != nil {
		t.Fatalf("update: %v", err)
	}

	if got := l.snapshot().Remaining; got < 0 {
		t.Fatalf("remaining = %d, want >= 0", got)
	}
}

// TestLimiter_ResetAfterMonotonic is property 4: reset_after only grows
// between resets of a given limiter.
func TestLimiter_ResetAfterMonotonic(t *testing.T) {
	l := newLimiter(false, 1, 0)

	h1 := http.Header{}
	h1.Set("X-RateLimit-Reset-After", "2.0")
	if err := l.update(h1, http.StatusOK); err != nil {
		t.Fatalf("update 1: %v", err)
	}
	if got := l.snapshot().ResetAfter; got != 2*time.Second {
		t.Fatalf("resetAfter = %v, want 2s", got)
	}

	h2 := http.Header{}
	h2.Set("X-RateLimit-Reset-After", "1.0")
	if err := l.update(h2, http.StatusOK); err != nil {
		t.Fatalf("update 2: %v", err)
	}
	if got := l.snapshot().ResetAfter; got != 2*time.Second {
		t.Fatalf("resetAfter regressed to %v after a smaller observation", got)
	}

	h3 := http.Header{}
	h3.Set("X-RateLimit-Reset-After", "3.5")
	if err := l.update(h3, http.StatusOK); err != nil {
		t.Fatalf("update 3: %v", err)
	}
	if got := l.snapshot().ResetAfter; got != 3500*time.Millisecond {
		t.Fatalf("resetAfter = %v, want 3.5s", got)
	}
}

// TestLimiter_ArmResetIdempotentSameDuration: two arms with the same
// duration, issued at different wall-clock moments (e.g. by two waiters
// both observing remaining==0 a little apart), must not restart the
// in-flight reset task - only a strictly larger duration may do that.
func TestLimiter_ArmResetIdempotentSameDuration(t *testing.T) {
	l := newLimiter(false, 1, 0)
	l.remaining = 0

	l.mu.Lock()
	l.armResetLocked(150 * time.Millisecond)
	l.mu.Unlock()

	time.Sleep(100 * time.Millisecond)

	l.mu.Lock()
	l.armResetLocked(150 * time.Millisecond) // same duration, arriving 100ms later
	l.mu.Unlock()

	// If the second call had restarted the timer, remaining would still be
	// 0 at the 200ms mark (it would need until ~250ms from the first arm).
	time.Sleep(100 * time.Millisecond)
	if got := l.snapshot().Remaining; got != 1 {
		t.Fatalf("remaining = %d at ~200ms, want 1 (re-arming with a non-increasing duration must not restart the reset task)", got)
	}
}

// TestLimiter_DenyAfter404 is property 6: a 404 on a route makes every
// subsequent acquire() fail with deniedError until the slot is rebound.
func TestLimiter_DenyAfter404(t *testing.T) {
	l := newLimiter(false, 1, 0)

	if err := l.update(http.Header{}, http.StatusNotFound); err != nil {
		t.Fatalf("update: %v", err)
	}

	err := l.acquire(context.Background())
	if err == nil {
		t.Fatal("acquire() after 404 succeeded, want deniedError")
	}
	if _, ok := err.(*deniedError); !ok {
		t.Fatalf("acquire() error = %T, want *deniedError", err)
	}
}

// TestLimiter_UpdateIdempotent: applying the same headers twice leaves
// state unchanged after the first application.
func TestLimiter_UpdateIdempotent(t *testing.T) {
	l := newLimiter(false, 5, 0)
	headers := http.Header{}
	headers.Set("X-RateLimit-Bucket", "abc")
	headers.Set("X-RateLimit-Limit", "5")
	headers.Set("X-RateLimit-Remaining", "3")
	headers.Set("X-RateLimit-Reset-After", "1.0")

	if err := l.update(headers, http.StatusOK); err != nil {
		t.Fatalf("first update: %v", err)
	}
	first := l.snapshot()

	if err := l.update(headers, http.StatusOK); err != nil {
		t.Fatalf("second update: %v", err)
	}
	second := l.snapshot()

	if first != second {
		t.Fatalf("update not idempotent: %+v != %+v", first, second)
	}
}

// TestLimiter_IncorrectBucket: a bucket id that disagrees with an already
// bound one fails with incorrectBucketError rather than silently adopting it.
func TestLimiter_IncorrectBucket(t *testing.T) {
	l := newLimiter(false, 1, 0)
	h1 := http.Header{}
	h1.Set("X-RateLimit-Bucket", "abc")
	if err := l.update(h1, http.StatusOK); err != nil {
		t.Fatalf("first update: %v", err)
	}

	h2 := http.Header{}
	h2.Set("X-RateLimit-Bucket", "xyz")
	err := l.update(h2, http.StatusOK)
	if err == nil {
		t.Fatal("update() with a different bucket id succeeded, want incorrectBucketError")
	}
	if _, ok := err.(*incorrectBucketError); !ok {
		t.Fatalf("update() error = %T, want *incorrectBucketError", err)
	}
}

// TestLimiter_MigrateTo: a demoted limiter wakes its waiters and rejects
// new acquisitions with migratingError.
func TestLimiter_MigrateTo(t *testing.T) {
	l := newLimiter(false, 1, 0)
	// Long enough that the reset task can't fire before migrateTo does, so
	// the waiter's wakeup is unambiguously caused by the migration.
	l.resetAfter = 10 * time.Second
	if err := l.acquire(context.Background()); err != nil {
		t.Fatalf("initial acquire: %v", err)
	}

	var wg sync.WaitGroup
	errCh := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		errCh <- l.acquire(context.Background())
	}()

	// give the waiter time to block on the gate
	time.Sleep(20 * time.Millisecond)
	l.migrateTo("canonical-bucket")
	wg.Wait()

	err := <-errCh
	mig, ok := err.(*migratingError)
	if !ok {
		t.Fatalf("waiter error = %T, want *migratingError", err)
	}
	if mig.bucketID != "canonical-bucket" {
		t.Fatalf("migratingError bucket = %q, want canonical-bucket", mig.bucketID)
	}
}

// TestRateLimiter_CanonicalUniqueness is property 5: at most one non-demoted
// limiter owns a given bucket id, and TestRateLimiter_MigrationSharesLimiter
// is the round-trip: two route keys that resolve to the same bucket end up
// sharing the same limiter object.
func TestRateLimiter_CanonicalUniqueness(t *testing.T) {
	r := NewRatelimiter(NewConfiguration())

	rkA := RouteKey{Method: http.MethodPost, PathTemplate: "/channels/{channel_id}/messages", ChannelID: "111"}
	rkB := RouteKey{Method: http.MethodPost, PathTemplate: "/channels/{channel_id}/messages", ChannelID: "222"}

	keyA := rkA.slotKey("")
	keyB := rkB.slotKey("")

	limA := r.routeLimiter(keyA)
	limB := r.routeLimiter(keyB)
	if limA == limB {
		t.Fatal("distinct route keys were given the same limiter before any bucket discovery")
	}

	hdr := http.Header{}
	hdr.Set("X-RateLimit-Bucket", "shared")
	if err := limA.update(hdr, http.StatusOK); err != nil {
		t.Fatalf("update A: %v", err)
	}
	limA = r.reconcile(keyA, limA, "shared")

	if err := limB.update(hdr, http.StatusOK); err != nil {
		t.Fatalf("update B: %v", err)
	}
	limB = r.reconcile(keyB, limB, "shared")

	if limA != limB {
		t.Fatal("two route keys sharing a bucket id did not converge on one limiter")
	}

	canonical, ok := r.canonicalLimiter("shared")
	if !ok || canonical != limA {
		t.Fatalf("canonical table does not point at the surviving limiter")
	}
}

// TestRateLimiter_GlobalCapPerSecond is property 2: successful global
// acquisitions for a credential are bounded to the configured per-second cap.
func TestRateLimiter_GlobalCapPerSecond(t *testing.T) {
	g := newLimiter(true, 3, 0)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := g.acquire(context.Background()); err != nil {
			t.Fatalf("acquire %d: %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed > 200*time.Millisecond {
		t.Fatalf("first 3 acquisitions took %v, want near-instant", elapsed)
	}

	done := make(chan struct{})
	go func() {
		_ = g.acquire(context.Background())
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("4th global acquisition completed before the 1-second window elapsed")
	case <-time.After(300 * time.Millisecond):
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("4th global acquisition never completed after the reset window")
	}
}

// TestRateLimiter_MigrationSharesLimiter is the round-trip named in the
// design: two RouteKeys that converge on the same bucket id end up sharing
// one limiter object, the one the first key registered as canonical.
func TestRateLimiter_MigrationSharesLimiter(t *testing.T) {
	r := NewRatelimiter(NewConfiguration())

	rkA := RouteKey{Method: http.MethodDelete, PathTemplate: "/channels/{channel_id}/messages/{message_id}", ChannelID: "1"}
	rkB := RouteKey{Method: http.MethodDelete, PathTemplate: "/channels/{channel_id}/messages/{message_id}", ChannelID: "2"}
	keyA, keyB := rkA.slotKey(""), rkB.slotKey("")

	limA := r.routeLimiter(keyA)
	limB := r.routeLimiter(keyB)
	if limA == limB {
		t.Fatal("distinct route keys shared a limiter before any bucket discovery")
	}

	hdr := http.Header{}
	hdr.Set("X-RateLimit-Bucket", "migrated")
	_ = limA.update(hdr, http.StatusOK)
	limA = r.reconcile(keyA, limA, "migrated")
	_ = limB.update(hdr, http.StatusOK)
	limB = r.reconcile(keyB, limB, "migrated")

	if limA != limB {
		t.Fatal("route keys converging on the same bucket id did not end up sharing a limiter")
	}
}

// TestLimiter_FirstResponseOmitsHeaders is a boundary case: a response with
// no rate-limit headers at all leaves a fresh limiter at limit=1, remaining=1,
// with no reset task armed.
func TestLimiter_FirstResponseOmitsHeaders(t *testing.T) {
	l := newLimiter(false, 1, 0)
	if err := l.update(http.Header{}, http.StatusOK); err != nil {
		t.Fatalf("update: %v", err)
	}

	snap := l.snapshot()
	if snap.Limit != 1 || snap.Remaining != 1 {
		t.Fatalf("snapshot = %+v, want limit=1 remaining=1", snap)
	}
	if l.resetCancel != nil {
		t.Fatal("reset task armed despite no reset_after header ever being observed")
	}
}

// TestLimiter_RemainingOutOfOrder is a boundary case: an older response
// reporting a larger remaining than what's already recorded must not
// overwrite the smaller, already-observed value.
func TestLimiter_RemainingOutOfOrder(t *testing.T) {
	l := newLimiter(false, 10, 0)

	h1 := http.Header{}
	h1.Set("X-RateLimit-Remaining", "2")
	if err := l.update(h1, http.StatusOK); err != nil {
		t.Fatalf("update 1: %v", err)
	}

	h2 := http.Header{}
	h2.Set("X-RateLimit-Remaining", "8")
	if err := l.update(h2, http.StatusOK); err != nil {
		t.Fatalf("update 2: %v", err)
	}

	if got := l.snapshot().Remaining; got != 2 {
		t.Fatalf("remaining = %d, want 2 (the smaller, already-observed value preserved)", got)
	}
}

// TestLimiter_Global429RetryAfter is a boundary case: a global 429 with
// retry_after=3.2 sets the global limiter's reset_after to 3.2s plus the
// configured time offset and clears the ready latch.
func TestLimiter_Global429RetryAfter(t *testing.T) {
	l := newLimiter(true, 50, 250*time.Millisecond)
	l.applyGlobal429(3200 * time.Millisecond)

	snap := l.snapshot()
	if snap.Remaining != 0 {
		t.Fatalf("remaining = %d, want 0", snap.Remaining)
	}
	if want := 3200*time.Millisecond + 250*time.Millisecond; snap.ResetAfter != want {
		t.Fatalf("resetAfter = %v, want %v", snap.ResetAfter, want)
	}
	if l.readyOpen {
		t.Fatal("ready latch left open after a global 429")
	}
}

// TestLimiter_GlobalUpdateIgnoresGenericFold: the global limiter's limit is
// configured, not discovered. Even when a response carries
// X-RateLimit-Global: true, update() must not let a stray X-RateLimit-Limit
// header overwrite the configured limit - only applyGlobal429 may mutate a
// global limiter.
func TestLimiter_GlobalUpdateIgnoresGenericFold(t *testing.T) {
	g := newLimiter(true, 50, 0)

	headers := http.Header{}
	headers.Set("X-RateLimit-Global", "true")
	headers.Set("X-RateLimit-Limit", "5")
	headers.Set("X-RateLimit-Remaining", "0")
	headers.Set("X-RateLimit-Reset-After", "1.0")

	if err := g.update(headers, http.StatusTooManyRequests); err != nil {
		t.Fatalf("update: %v", err)
	}

	snap := g.snapshot()
	if snap.Limit != 50 {
		t.Fatalf("limit = %d, want 50 (configured limit must not be overwritten by a generic header fold)", snap.Limit)
	}
	if snap.Remaining != 50 {
		t.Fatalf("remaining = %d, want 50 (update() must not mutate a global limiter at all)", snap.Remaining)
	}
}

func TestRouteKey_String(t *testing.T) {
	tests := []struct {
		name string
		rk   RouteKey
		want string
	}{
		{
			name: "all major params present",
			rk:   RouteKey{ChannelID: "1", GuildID: "2", PathTemplate: "/channels/{channel_id}/messages"},
			want: "1:2:/channels/{channel_id}/messages",
		},
		{
			name: "missing components render as empty, not None",
			rk:   RouteKey{PathTemplate: "/users/@me"},
			want: "::/users/@me",
		},
		{
			name: "webhook params do not contribute to the string",
			rk:   RouteKey{WebhookID: "9", WebhookToken: "tok", PathTemplate: "/webhooks/{webhook_id}/{webhook_token}"},
			want: "::/webhooks/{webhook_id}/{webhook_token}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rk.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRouteKey_URL(t *testing.T) {
	rk := RouteKey{PathTemplate: "/channels/{channel_id}/messages/{message_id}"}
	got, err := rk.URL("https://discord.com/api/v10", map[string]any{
		"channel_id": "123",
		"message_id": 456,
	})
	if err != nil {
		t.Fatalf("URL(): %v", err)
	}
	want := "https://discord.com/api/v10/channels/123/messages/456"
	if got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestEncodeReason(t *testing.T) {
	// Open question: Python quotes reasons with safe="/ ", so both "/" and
	// the literal space pass through unescaped; this pins that exact
	// behavior rather than "fixing" it to the stricter RFC 3986 reading.
	got := encodeReason("renamed channel / archived")
	want := "renamed channel / archived"
	if got != want {
		t.Errorf("encodeReason() = %q, want %q", got, want)
	}

	gotEscaped := encodeReason("100%")
	if gotEscaped != "100%25" {
		t.Errorf("encodeReason(%%) = %q, want 100%%25", gotEscaped)
	}
}
