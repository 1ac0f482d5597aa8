package utils

import (
	"regexp"
	"testing"
	"time"
)

func TestFallbackBookingCode(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 5, 9, 0, time.UTC)
	if got, want := FallbackBookingCode(now), "TRV-20260831140509"; got != want {
		t.Errorf("FallbackBookingCode = %s, want %s", got, want)
	}
}

func TestFallbackBookingCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^TRV-\d{14}$`)
	if code := FallbackBookingCode(time.Now()); !pattern.MatchString(code) {
		t.Errorf("code %s does not match TRV-<timestamp> format", code)
	}
}
