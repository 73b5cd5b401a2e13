package policy

import "time"

// Defaults for every tunable collection parameter. The configuration store
// falls back to these when a parameter is unset.
const (
	DefaultBlockWindowStartHour   = 6
	DefaultBlockWindowEndHour     = 18
	DefaultCompensationCutoffHour = 12
	DefaultRecidivismWindowDays   = 28
	DefaultToleranceDays          = 2
	DefaultTimezone               = "America/Sao_Paulo"
)

// Config is the policy value object resolved once per batch run and passed
// explicitly into the classifier, the tolerance rules and the decision
// engine. There are no hidden configuration reads inside the rules.
type Config struct {
	BlockWindowStartHour   int    `mapstructure:"BLOCK_WINDOW_START_HOUR"`
	BlockWindowEndHour     int    `mapstructure:"BLOCK_WINDOW_END_HOUR"`
	CompensationCutoffHour int    `mapstructure:"COMPENSATION_CUTOFF_HOUR"`
	RecidivismWindowDays   int    `mapstructure:"RECIDIVISM_WINDOW_DAYS"`
	DefaultToleranceDays   int    `mapstructure:"DEFAULT_TOLERANCE_DAYS"`
	Timezone               string `mapstructure:"COLLECTION_TIMEZONE"`
}

// Default returns a Config with every parameter at its documented default.
func Default() Config {
	return Config{
		BlockWindowStartHour:   DefaultBlockWindowStartHour,
		BlockWindowEndHour:     DefaultBlockWindowEndHour,
		CompensationCutoffHour: DefaultCompensationCutoffHour,
		RecidivismWindowDays:   DefaultRecidivismWindowDays,
		DefaultToleranceDays:   DefaultToleranceDays,
		Timezone:               DefaultTimezone,
	}
}

// Location resolves the configured timezone, falling back to UTC when the
// name cannot be loaded.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ToleranceDays maps the recidivism class to the allowed grace period:
// recidivists get none, everyone else the configured default.
func ToleranceDays(cfg Config, recidivist bool) int {
	if recidivist {
		return 0
	}
	return cfg.DefaultToleranceDays
}

// CompensationDeferral reports whether the bank-compensation window defers a
// block this evaluation: it applies only to a recidivist exactly one business
// day past due, and only while the local time has not reached the cutoff
// hour. Recomputed from the clock every cycle; nothing is persisted.
func CompensationDeferral(cfg Config, toleranceDays, daysOverdue int, now time.Time) bool {
	if toleranceDays != 0 || daysOverdue != 1 {
		return false
	}
	return now.Hour() < cfg.CompensationCutoffHour
}

// WithinBlockWindow reports whether the block pass may run at all: the local
// hour must fall inside [start, end). Outside the window the whole pass is a
// logged no-op.
func WithinBlockWindow(cfg Config, now time.Time) bool {
	h := now.Hour()
	return h >= cfg.BlockWindowStartHour && h < cfg.BlockWindowEndHour
}
