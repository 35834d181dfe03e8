package securestore

import (
	"time"

	"steakhouse/storefront/pkg/crypto"
)

// DefaultTTL is how long an envelope stays readable after its last write.
const DefaultTTL = time.Hour

// Codec reversibly transforms the serialized value into the stored payload.
type Codec interface {
	Encode(text string) (string, error)
	Decode(data string) (string, error)
}

// Option configures a Store in New.
type Option func(*Store)

// WithTTL sets the expiry window. Values <= 0 are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, mainly for tests. nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCodec replaces the payload codec, e.g. with a crypto.Sealer. nil is ignored.
func WithCodec(codec Codec) Option {
	return func(s *Store) {
		if codec != nil {
			s.codec = codec
		}
	}
}

// WithFingerprint replaces crypto.Checksum as the integrity function. nil is ignored.
func WithFingerprint(fn func(string) string) Option {
	return func(s *Store) {
		if fn != nil {
			s.fingerprint = fn
		}
	}
}

func defaults(s *Store) {
	s.ttl = DefaultTTL
	s.now = time.Now
	s.codec = crypto.Obfuscator{}
	s.fingerprint = crypto.Checksum
}
