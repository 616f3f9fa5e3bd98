package navigation

import (
	"testing"

	"swifttrack-dashboard/internal/domain/record"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		identity *record.Identity
		want     string
	}{
		{name: "no session", identity: nil, want: ViewLogin},
		{name: "supplier", identity: &record.Identity{UserID: "S1", Role: "supplier"}, want: "supplier"},
		{name: "driver", identity: &record.Identity{UserID: "D001", Role: "driver"}, want: "driver"},
		{name: "verbatim", identity: &record.Identity{UserID: "X", Role: "Auditor"}, want: "Auditor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.identity))
		})
	}
}

func TestKnown(t *testing.T) {
	for _, role := range record.Roles() {
		assert.True(t, Known(role), role)
	}
	assert.False(t, Known(ViewLogin))
	assert.False(t, Known("Auditor"))
}
