package ratelimiter

import (
	"context"
	"sync"
)

type FakeRateLimiter struct {
	IsAllowed bool
	Keys      []string
	lock      sync.Mutex
}

func NewFakeRateLimiter(isAllowed bool) *FakeRateLimiter {
	return &FakeRateLimiter{IsAllowed: isAllowed}
}

func (r *FakeRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) Result {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Keys = append(r.Keys, key)
	if r.IsAllowed {
		return Allowed()
	}
	return NotAllowed()
}
