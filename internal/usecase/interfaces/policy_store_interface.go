package interfaces

import "frota_cobranca/internal/domain/policy"

// IPolicyStore resolves the policy configuration. Each batch run loads one
// Config value and passes it explicitly through the rules; nothing caches it
// across runs.
type IPolicyStore interface {
	Load() (policy.Config, error)
}
