// Package pages holds the view-models of the portal pages. Each page owns its
// state, reads from an injected fixture catalog and reports to the user only
// through a notify.Notifier. Pages do not lock; callers serialise access.
package pages

import (
	"errors"
	"slices"
)

// Registered page routes.
const (
	PathHome           = "/"
	PathHealthData     = "/health-data"
	PathAnalysis       = "/analysis"
	PathFamilyCare     = "/family-care"
	PathRehabilitation = "/rehabilitation"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// Paths lists every page route in navigation order.
func Paths() []string {
	return []string{PathHome, PathHealthData, PathAnalysis, PathFamilyCare, PathRehabilitation}
}

// IsPagePath reports whether p is a registered page route.
func IsPagePath(p string) bool {
	return slices.Contains(Paths(), p)
}
