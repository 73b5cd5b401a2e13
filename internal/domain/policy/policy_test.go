package policy

import (
	"testing"
	"time"
)

func TestToleranceDays(t *testing.T) {
	cfg := Default()

	if got := ToleranceDays(cfg, false); got != 2 {
		t.Errorf("non-recidivist tolerance = %d, want 2", got)
	}
	if got := ToleranceDays(cfg, true); got != 0 {
		t.Errorf("recidivist tolerance = %d, want 0", got)
	}

	cfg.DefaultToleranceDays = 5
	if got := ToleranceDays(cfg, false); got != 5 {
		t.Errorf("configured tolerance = %d, want 5", got)
	}
}

func TestCompensationDeferral(t *testing.T) {
	cfg := Default()
	morning := time.Date(2024, time.June, 4, 9, 30, 0, 0, time.UTC)
	afternoon := time.Date(2024, time.June, 4, 12, 0, 0, 0, time.UTC)

	t.Run("applies before cutoff on first overdue day with zero tolerance", func(t *testing.T) {
		if !CompensationDeferral(cfg, 0, 1, morning) {
			t.Error("expected deferral")
		}
	})

	t.Run("expires at the cutoff hour", func(t *testing.T) {
		if CompensationDeferral(cfg, 0, 1, afternoon) {
			t.Error("expected no deferral at cutoff")
		}
	})

	t.Run("never applies with positive tolerance", func(t *testing.T) {
		if CompensationDeferral(cfg, 2, 1, morning) {
			t.Error("expected no deferral when tolerance > 0")
		}
	})

	t.Run("never applies past the first overdue day", func(t *testing.T) {
		if CompensationDeferral(cfg, 0, 2, morning) {
			t.Error("expected no deferral on day two")
		}
	})
}

func TestWithinBlockWindow(t *testing.T) {
	cfg := Default()

	cases := []struct {
		hour int
		want bool
	}{
		{5, false},
		{6, true},
		{12, true},
		{17, true},
		{18, false},
		{23, false},
	}
	for _, c := range cases {
		now := time.Date(2024, time.June, 4, c.hour, 0, 0, 0, time.UTC)
		if got := WithinBlockWindow(cfg, now); got != c.want {
			t.Errorf("WithinBlockWindow at %02d:00 = %v, want %v", c.hour, got, c.want)
		}
	}
}

func TestLocationFallback(t *testing.T) {
	cfg := Default()
	cfg.Timezone = "Not/AZone"
	if got := cfg.Location(); got != time.UTC {
		t.Errorf("expected UTC fallback, got %v", got)
	}
}
