package config

import (
	"fmt"
	"log"

	"frota_cobranca/internal/domain/policy"
	"frota_cobranca/internal/usecase/interfaces"

	"github.com/spf13/viper"
)

// ViperPolicyStore resolves the collection policy from the environment with
// documented defaults. Load reads the environment on every call, so a batch
// run always sees the current values; nothing is cached between runs.
type ViperPolicyStore struct{}

var _ interfaces.IPolicyStore = (*ViperPolicyStore)(nil)

func NewViperPolicyStore() *ViperPolicyStore {
	return &ViperPolicyStore{}
}

func (s *ViperPolicyStore) Load() (policy.Config, error) {
	v := viper.New()
	v.SetDefault("BLOCK_WINDOW_START_HOUR", policy.DefaultBlockWindowStartHour)
	v.SetDefault("BLOCK_WINDOW_END_HOUR", policy.DefaultBlockWindowEndHour)
	v.SetDefault("COMPENSATION_CUTOFF_HOUR", policy.DefaultCompensationCutoffHour)
	v.SetDefault("RECIDIVISM_WINDOW_DAYS", policy.DefaultRecidivismWindowDays)
	v.SetDefault("DEFAULT_TOLERANCE_DAYS", policy.DefaultToleranceDays)
	v.SetDefault("COLLECTION_TIMEZONE", policy.DefaultTimezone)
	v.AutomaticEnv()

	var cfg policy.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return policy.Config{}, err
	}
	if err := validate(cfg); err != nil {
		return policy.Config{}, err
	}

	log.Printf("[policy][config] loaded window=%02d-%02d cutoff=%d recidivism_days=%d tolerance=%d tz=%s",
		cfg.BlockWindowStartHour, cfg.BlockWindowEndHour, cfg.CompensationCutoffHour,
		cfg.RecidivismWindowDays, cfg.DefaultToleranceDays, cfg.Timezone)
	return cfg, nil
}

func validate(cfg policy.Config) error {
	if cfg.BlockWindowStartHour < 0 || cfg.BlockWindowStartHour > 23 ||
		cfg.BlockWindowEndHour < 1 || cfg.BlockWindowEndHour > 24 {
		return fmt.Errorf("block window hours out of range: %d-%d", cfg.BlockWindowStartHour, cfg.BlockWindowEndHour)
	}
	if cfg.BlockWindowStartHour >= cfg.BlockWindowEndHour {
		return fmt.Errorf("block window start %d must precede end %d", cfg.BlockWindowStartHour, cfg.BlockWindowEndHour)
	}
	if cfg.CompensationCutoffHour < 0 || cfg.CompensationCutoffHour > 23 {
		return fmt.Errorf("compensation cutoff hour out of range: %d", cfg.CompensationCutoffHour)
	}
	if cfg.RecidivismWindowDays <= 0 {
		return fmt.Errorf("recidivism window must be positive, got %d", cfg.RecidivismWindowDays)
	}
	if cfg.DefaultToleranceDays < 0 {
		return fmt.Errorf("tolerance days must not be negative, got %d", cfg.DefaultToleranceDays)
	}
	if cfg.Timezone == "" {
		return fmt.Errorf("collection timezone must not be empty")
	}
	return nil
}
