package jwt

import "time"

// SetClock lets tests move the service's notion of now.
func (s *JWTService) SetClock(now func() time.Time) {
	s.now = now
}

// TTL is how long issued tokens stay valid.
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}
