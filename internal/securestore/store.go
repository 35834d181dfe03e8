// Package securestore keeps JSON values in a session-scoped backend wrapped in an
// envelope that is fingerprinted and time-limited.
//
// The default codec (base64) and fingerprint (31-rolling checksum) detect accidental
// corruption and casual edits only. They are not encryption and not tamper-proof;
// configure crypto.Sealer through WithCodec when confidentiality matters.
//
// Reads never fail: a missing, expired, corrupted or undecodable entry is reported as
// absent and, unless it was missing, removed from the backend. Expiry is evaluated
// lazily on read; nothing sweeps the backend in the background.
package securestore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"steakhouse/storefront/internal/repository"
)

// Store reads and writes enveloped values in a repository.Backend.
type Store struct {
	backend     repository.Backend
	logger      *zap.Logger
	ttl         time.Duration
	now         func() time.Time
	codec       Codec
	fingerprint func(string) string
}

// New returns a Store over backend with a one-hour TTL and the base64 codec unless
// opts say otherwise. A nil logger discards output.
func New(backend repository.Backend, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{backend: backend, logger: logger}
	defaults(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL reports the configured expiry window.
func (s *Store) TTL() time.Duration { return s.ttl }

// Write replaces the envelope under key with one holding value. Every failure is
// logged; the returned error lets callers that care observe it. If serialization
// fails the previous envelope is left in place.
func (s *Store) Write(ctx context.Context, key string, value any) error {
	serialized, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("secure store write failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	payload, err := s.codec.Encode(string(serialized))
	if err != nil {
		s.logger.Error("secure store write failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	raw, err := json.Marshal(Envelope{
		Payload:     payload,
		Fingerprint: s.fingerprint(payload),
		Timestamp:   s.now().UnixMilli(),
	})
	if err != nil {
		s.logger.Error("secure store write failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	if err := s.backend.Set(ctx, key, string(raw)); err != nil {
		s.logger.Error("secure store write failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// Read decodes the value stored under key into dst and reports whether it did.
// Checks run in order: expiry, then fingerprint, then decoding. On any failure after
// the envelope was found the key is removed. dst may be partially written when
// decoding fails; use Load for a clean typed result.
func (s *Store) Read(ctx context.Context, key string, dst any) bool {
	env, ok := s.Inspect(ctx, key)
	if !ok {
		return false
	}

	age := s.now().UnixMilli() - env.Timestamp
	if age > s.ttl.Milliseconds() {
		s.logger.Warn("secure store entry expired",
			zap.String("key", key),
			zap.Duration("age", time.Duration(age)*time.Millisecond),
		)
		s.Remove(ctx, key)
		return false
	}

	if s.fingerprint(env.Payload) != env.Fingerprint {
		s.logger.Error("secure store entry tampered or corrupted", zap.String("key", key))
		s.Remove(ctx, key)
		return false
	}

	plain, err := s.codec.Decode(env.Payload)
	if err == nil && plain == "" {
		err = errEmptyPayload
	}
	if err == nil {
		err = json.Unmarshal([]byte(plain), dst)
	}
	if err != nil {
		s.logger.Error("secure store entry undecodable", zap.String("key", key), zap.Error(err))
		s.Remove(ctx, key)
		return false
	}
	return true
}

// Inspect returns the envelope exactly as stored, without expiry or integrity checks.
// An entry that is not a parseable envelope is removed and reported as absent.
func (s *Store) Inspect(ctx context.Context, key string) (Envelope, bool) {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.logger.Error("secure store backend read failed", zap.String("key", key), zap.Error(err))
		return Envelope{}, false
	}
	if !ok {
		return Envelope{}, false
	}

	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		s.logger.Error("secure store entry undecodable", zap.String("key", key), zap.Error(err))
		s.Remove(ctx, key)
		return Envelope{}, false
	}
	return env, true
}

// Remove deletes key. Removing a missing key is a no-op.
func (s *Store) Remove(ctx context.Context, key string) {
	if err := s.backend.Remove(ctx, key); err != nil {
		s.logger.Error("secure store remove failed", zap.String("key", key), zap.Error(err))
	}
}

// Load is the typed form of Read.
func Load[T any](ctx context.Context, s *Store, key string) (T, bool) {
	var v T
	if !s.Read(ctx, key, &v) {
		var zero T
		return zero, false
	}
	return v, true
}
