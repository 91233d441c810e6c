package server

import "time"

// LimiterIdleTTL exposes the bucket eviction age.
const LimiterIdleTTL = limiterIdleTTL

// SetClockForTest replaces the limiter clock.
func (i *IPRateLimiter) SetClockForTest(now func() time.Time) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.now = now
	i.lastSweep = now()
}

// TouchForTest registers a request from ip and reports whether it was allowed.
func (i *IPRateLimiter) TouchForTest(ip string) bool { return i.getLimiter(ip).Allow() }

// LenForTest returns the number of tracked IPs.
func (i *IPRateLimiter) LenForTest() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}
