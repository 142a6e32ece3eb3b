package handler

import "time"

// cookieMaxAge converts an absolute expiry into a cookie max-age in seconds
func cookieMaxAge(expiresAt time.Time) int {
	remaining := time.Until(expiresAt)
	if remaining <= 0 {
		return -1
	}
	return int(remaining.Seconds())
}
