package policy

import (
	"testing"

	"streesilk/internal/domain/entity"
	"streesilk/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	allowlist := []string{"owner@streesilk.in", " staff@streesilk.in "}

	tests := []struct {
		name     string
		identity *service.Identity
		profile  *entity.User
		want     bool
	}{
		{
			name:     "nil identity is never admin",
			identity: nil,
			profile:  &entity.User{IsAdmin: true},
			want:     false,
		},
		{
			name:     "allowlisted email",
			identity: &service.Identity{SubjectID: "u1", Email: "owner@streesilk.in"},
			want:     true,
		},
		{
			name:     "allowlist match is case-insensitive and trimmed",
			identity: &service.Identity{SubjectID: "u1", Email: "Staff@StreeSilk.in"},
			want:     true,
		},
		{
			name:     "persisted flag without allowlist membership",
			identity: &service.Identity{SubjectID: "u2", Email: "someone@example.com"},
			profile:  &entity.User{OwnerID: "u2", IsAdmin: true},
			want:     true,
		},
		{
			name:     "profile without flag and email off the list",
			identity: &service.Identity{SubjectID: "u3", Email: "shopper@example.com"},
			profile:  &entity.User{OwnerID: "u3"},
			want:     false,
		},
		{
			name:     "empty email never matches the list",
			identity: &service.Identity{SubjectID: "u4"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAdmin(tt.identity, tt.profile, allowlist))
		})
	}
}
