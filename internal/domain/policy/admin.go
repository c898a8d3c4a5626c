// Package policy contains authorization decisions for the storefront.
package policy

import (
	"strings"

	"streesilk/internal/domain/entity"
	"streesilk/internal/domain/service"
)

// IsAdmin is the single admin decision point: a caller is an administrator
// when their email is on the configured allow-list, or their synced profile
// carries the persisted admin flag. The two inputs are a union; neither one
// can revoke the other.
func IsAdmin(identity *service.Identity, profile *entity.User, allowlist []string) bool {
	if identity == nil {
		return false
	}

	if profile != nil && profile.IsAdmin {
		return true
	}

	email := strings.TrimSpace(identity.Email)
	if email == "" {
		return false
	}
	for _, allowed := range allowlist {
		if strings.EqualFold(strings.TrimSpace(allowed), email) {
			return true
		}
	}

	return false
}
