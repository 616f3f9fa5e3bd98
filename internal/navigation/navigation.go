// Package navigation decides which view is mounted for a session.
package navigation

import (
	"slices"

	"swifttrack-dashboard/internal/domain/record"
)

// ViewLogin is mounted whenever there is no session.
const ViewLogin = "login"

// Resolve maps no session to the login view and any session to its role,
// verbatim. Roles without a dashboard still resolve to their own name.
func Resolve(identity *record.Identity) string {
	if identity == nil {
		return ViewLogin
	}
	return identity.Role
}

// Known reports whether a dashboard exists for the view name.
func Known(view string) bool {
	return slices.Contains(record.Roles(), view)
}
