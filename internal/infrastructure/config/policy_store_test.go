package config

import (
	"testing"

	"frota_cobranca/internal/domain/policy"
)

func TestViperPolicyStore_Load(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := NewViperPolicyStore().Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg != policy.Default() {
			t.Fatalf("expected documented defaults, got %+v", cfg)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("BLOCK_WINDOW_START_HOUR", "8")
		t.Setenv("DEFAULT_TOLERANCE_DAYS", "3")
		t.Setenv("COLLECTION_TIMEZONE", "UTC")

		cfg, err := NewViperPolicyStore().Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BlockWindowStartHour != 8 || cfg.DefaultToleranceDays != 3 || cfg.Timezone != "UTC" {
			t.Fatalf("overrides not applied: %+v", cfg)
		}
		if cfg.BlockWindowEndHour != policy.DefaultBlockWindowEndHour {
			t.Fatalf("untouched values must keep defaults: %+v", cfg)
		}
	})

	t.Run("inverted window rejected", func(t *testing.T) {
		t.Setenv("BLOCK_WINDOW_START_HOUR", "20")
		t.Setenv("BLOCK_WINDOW_END_HOUR", "6")

		if _, err := NewViperPolicyStore().Load(); err == nil {
			t.Fatalf("expected validation error")
		}
	})

	t.Run("negative tolerance rejected", func(t *testing.T) {
		t.Setenv("DEFAULT_TOLERANCE_DAYS", "-1")

		if _, err := NewViperPolicyStore().Load(); err == nil {
			t.Fatalf("expected validation error")
		}
	})
}
