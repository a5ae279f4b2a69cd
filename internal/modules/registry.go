package modules

import (
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Module is one documentation module: the short identifier used in routes
// and CLI arguments, the human-readable label, and the branch locator used
// to build remote URLs.
type Module struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Locator     string `json:"locator"`
}

// known is the fixed table of recognized module identifiers. Locators are
// branch names on the remote repository and do not always match the display
// label: compound identifiers keep their hyphen but capitalize each segment.
var known = map[string]Module{
	"javascript":       {ID: "javascript", DisplayName: "JavaScript", Locator: "JavaScript"},
	"typescript":       {ID: "typescript", DisplayName: "TypeScript", Locator: "TypeScript"},
	"react":            {ID: "react", DisplayName: "React", Locator: "React"},
	"github":           {ID: "github", DisplayName: "GitHub", Locator: "GitHub"},
	"dsa":              {ID: "dsa", DisplayName: "DSA", Locator: "DSA"},
	"tailwind":         {ID: "tailwind", DisplayName: "Tailwind", Locator: "Tailwind"},
	"networking-linux": {ID: "networking-linux", DisplayName: "Networking & Linux", Locator: "Networking-Linux"},
	"node-express":     {ID: "node-express", DisplayName: "Node & Express", Locator: "Node-Express"},
	"sql":              {ID: "sql", DisplayName: "SQL", Locator: "SQL"},
}

// Resolve maps an identifier to its module entry. Unknown identifiers are
// used verbatim as both display name and locator, so resolution never fails.
func Resolve(id string) Module {
	if m, ok := known[id]; ok {
		return m
	}
	return Module{ID: id, DisplayName: id, Locator: id}
}

// Known reports whether the identifier is in the fixed table.
func Known(id string) bool {
	_, ok := known[id]
	return ok
}

// All returns the known modules sorted by identifier.
func All() []Module {
	mods := make([]Module, 0, len(known))
	for _, m := range known {
		mods = append(mods, m)
	}
	sort.Slice(mods, func(i, j int) bool { return mods[i].ID < mods[j].ID })
	return mods
}

// Match returns the known modules whose identifier matches the given glob
// pattern, sorted by identifier. An empty pattern matches everything.
func Match(pattern string) ([]Module, error) {
	if pattern == "" {
		return All(), nil
	}
	var mods []Module
	for _, m := range All() {
		ok, err := doublestar.Match(pattern, m.ID)
		if err != nil {
			return nil, err
		}
		if ok {
			mods = append(mods, m)
		}
	}
	return mods, nil
}
