package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledStore limits the bytes per second moved through an inner Store.
// Get is charged after the read, Put before the write.
type ThrottledStore struct {
	inner   Store
	limiter *rate.Limiter
}

var _ Store = (*ThrottledStore)(nil)

// NewThrottledStore wraps inner with a limit of bytesPerSec.
// bytesPerSec <= 0 disables throttling.
func NewThrottledStore(inner Store, bytesPerSec int) *ThrottledStore {
	s := &ThrottledStore{inner: inner}
	if bytesPerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
	}
	return s
}

// wait charges n bytes in burst-sized chunks; WaitN rejects n above the burst.
func (s *ThrottledStore) wait(ctx context.Context, n int) error {
	if s.limiter == nil {
		return nil
	}
	burst := s.limiter.Burst()
	for n > 0 {
		chunk := min(n, burst)
		if err := s.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// Get implements Store.
func (s *ThrottledStore) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.wait(ctx, len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

// Put implements Store.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.wait(ctx, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// Delete implements Store.
func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List implements Store.
func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}
