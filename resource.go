package main

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// FetchState is a snapshot of one cached key.
type FetchState[T any] struct {
	Data      *T
	IsLoading bool
	Err       error
}

type FetchObserver interface {
	CacheHit(resource string)
	CacheMiss(resource string)
	SharedFetch(resource string)
	UpstreamDone(resource string, err error)
}

// Resource caches the result of fetch per key for the process lifetime.
// Successful values are never revalidated. Failures are remembered until
// Reset so nothing retries on its own.
type Resource[T any] struct {
	name    string
	fetch   func(ctx context.Context, key string) (T, error)
	timeout time.Duration
	obs     FetchObserver

	group singleflight.Group

	mu      sync.Mutex
	data    map[string]T
	errs    map[string]error
	pending map[string]bool
}

func NewResource[T any](name string, timeout time.Duration, obs FetchObserver, fetch func(ctx context.Context, key string) (T, error)) *Resource[T] {
	return &Resource[T]{
		name:    name,
		fetch:   fetch,
		timeout: timeout,
		obs:     obs,
		data:    make(map[string]T),
		errs:    make(map[string]error),
		pending: make(map[string]bool),
	}
}

// Use never blocks. An empty key yields the zero state and issues nothing.
// Otherwise a missing key starts a background fetch and reports IsLoading.
func (r *Resource[T]) Use(key string) FetchState[T] {
	if key == "" {
		return FetchState[T]{}
	}

	r.mu.Lock()
	if st, ok := r.snapshotLocked(key); ok {
		r.mu.Unlock()
		r.hit()
		return st
	}
	if r.pending[key] {
		r.mu.Unlock()
		return FetchState[T]{IsLoading: true}
	}
	r.pending[key] = true
	r.mu.Unlock()

	ch := r.start(key)
	go func() {
		<-ch
		r.mu.Lock()
		delete(r.pending, key)
		r.mu.Unlock()
	}()
	return FetchState[T]{IsLoading: true}
}

// Get blocks until key is resolved or ctx is done, joining any fetch
// already in flight for the same key.
func (r *Resource[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T

	r.mu.Lock()
	if st, ok := r.snapshotLocked(key); ok {
		r.mu.Unlock()
		r.hit()
		if st.Err != nil {
			return zero, st.Err
		}
		return *st.Data, nil
	}
	r.mu.Unlock()

	select {
	case res := <-r.start(key):
		if res.Shared && r.obs != nil {
			r.obs.SharedFetch(r.name)
		}
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Reset forgets a remembered failure for key. Cached data is kept.
func (r *Resource[T]) Reset(key string) {
	r.mu.Lock()
	delete(r.errs, key)
	r.mu.Unlock()
}

func (r *Resource[T]) snapshotLocked(key string) (FetchState[T], bool) {
	if v, ok := r.data[key]; ok {
		return FetchState[T]{Data: &v}, true
	}
	if err, ok := r.errs[key]; ok {
		return FetchState[T]{Err: err}, true
	}
	return FetchState[T]{}, false
}

func (r *Resource[T]) hit() {
	if r.obs != nil {
		r.obs.CacheHit(r.name)
	}
}

// start joins or launches the single in-flight call for key. The call runs
// on its own deadline so one caller going away does not cancel it for the rest.
func (r *Resource[T]) start(key string) <-chan singleflight.Result {
	return r.group.DoChan(key, func() (any, error) {
		r.mu.Lock()
		st, ok := r.snapshotLocked(key)
		r.mu.Unlock()
		if ok {
			// resolved between the caller's check and this call
			if st.Err != nil {
				return nil, st.Err
			}
			return *st.Data, nil
		}

		if r.obs != nil {
			r.obs.CacheMiss(r.name)
		}
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		v, err := r.fetch(ctx, key)
		if r.obs != nil {
			r.obs.UpstreamDone(r.name, err)
		}

		r.mu.Lock()
		if err != nil {
			r.errs[key] = err
		} else {
			r.data[key] = v
		}
		r.mu.Unlock()

		if err != nil {
			return nil, err
		}
		return v, nil
	})
}
