package utils

import (
	"testing"
	"time"
)

func TestLocalClock_LocalizesToZone(t *testing.T) {
	clock, err := NewLocalClock("Asia/Dhaka")
	if err != nil {
		t.Fatalf("NewLocalClock failed: %v", err)
	}

	now := clock.Now()
	if now.Location().String() != "Asia/Dhaka" {
		t.Errorf("expected Asia/Dhaka location, got %s", now.Location())
	}
	if time.Since(now) > time.Minute {
		t.Errorf("clock is not tracking wall time: %v", now)
	}
}

func TestNewLocalClock_UnknownZone(t *testing.T) {
	if _, err := NewLocalClock("Mars/Olympus_Mons"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}
