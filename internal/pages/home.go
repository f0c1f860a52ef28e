package pages

import (
	"slices"

	"health-portal-server/internal/fixtures"
	"health-portal-server/internal/models"
)

// FeatureLink is a home card together with whether its path resolves to a
// registered page.
type FeatureLink struct {
	models.Feature
	Routable bool `json:"routable"`
}

// HomeView is the home page payload.
type HomeView struct {
	Features []FeatureLink `json:"features"`
}

// Home is the navigation page.
type Home struct {
	features []models.Feature
}

// NewHome creates the home page from the catalog.
func NewHome(c *fixtures.Catalog) *Home {
	return &Home{features: slices.Clone(c.Features)}
}

// View returns the feature cards. Links are reported as found, including ones
// that point at unregistered routes.
func (h *Home) View() HomeView {
	links := make([]FeatureLink, 0, len(h.features))
	for _, f := range h.features {
		links = append(links, FeatureLink{Feature: f, Routable: IsPagePath(f.Path)})
	}
	return HomeView{Features: links}
}

// UnroutableLinks returns the features whose path is not a registered page.
func UnroutableLinks(c *fixtures.Catalog) []models.Feature {
	var out []models.Feature
	for _, f := range c.Features {
		if !IsPagePath(f.Path) {
			out = append(out, f)
		}
	}
	return out
}
