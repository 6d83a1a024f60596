// Package division holds the static registry of University of Iceland
// academic divisions whose exam schedules are published in Ugla.
package division

// Division is a top-level academic unit with its own exam listing.
type Division struct {
	// Name is the Icelandic display name of the division.
	Name string `json:"name"`

	// ID is the upstream numeric identifier used in Ugla URLs.
	ID int `json:"id"`

	// Slug is the URL-safe identifier, unique across the registry.
	Slug string `json:"slug"`
}

// registry order matches the order divisions are listed in Ugla.
var registry = []Division{
	{Name: "Félagsvísindasvið", ID: 1, Slug: "felagsvisindasvid"},
	{Name: "Heilbrigðisvísindasvið", ID: 2, Slug: "heilbrigdisvisindasvid"},
	{Name: "Hugvísindasvið", ID: 3, Slug: "hugvisindasvid"},
	{Name: "Menntavísindasvið", ID: 4, Slug: "menntavisindasvid"},
	{Name: "Verkfræði- og náttúruvísindasvið", ID: 5, Slug: "verkfraedi-og-natturuvisindasvid"},
}

// All returns every known division in registry order.
func All() []Division {
	out := make([]Division, len(registry))
	copy(out, registry)
	return out
}

// FindBySlug looks up a division by its slug. The registry is small and
// static, a linear scan is sufficient.
func FindBySlug(slug string) (Division, bool) {
	for _, d := range registry {
		if d.Slug == slug {
			return d, true
		}
	}
	return Division{}, false
}
