// Package landmark holds the fixed Buffalo landmark catalog and the random
// selection used to pick the three locations for a generation request.
package landmark

import (
	"math/rand"
)

// Landmark is a single catalog entry. The catalog is defined at process start
// and never mutated.
type Landmark struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// BaseFacts is short anchor text to reduce "generic city" drift.
	BaseFacts string `json:"baseFacts"`
}

var catalog = []Landmark{
	{
		ID:   "canalside",
		Name: "Canalside (Buffalo Waterfront)",
		BaseFacts: "Buffalo, NY waterfront at Lake Erie/Buffalo River. Brick-and-steel Great Lakes " +
			"industrial heritage, open promenades, public gathering spaces.",
	},
	{
		ID:   "cityhall",
		Name: "Buffalo City Hall",
		BaseFacts: "Iconic Art Deco civic tower in downtown Buffalo. Limestone/stone facade, clock tower, " +
			"grand civic plaza feel, Great Lakes city atmosphere.",
	},
	{
		ID:   "keybank",
		Name: "KeyBank Center",
		BaseFacts: "Arena on Buffalo's waterfront near Canalside/Lake Erie. Sports energy, event plaza, " +
			"modern arena form integrated with waterfront context.",
	},
	{
		ID:   "niagarasq",
		Name: "Niagara Square",
		BaseFacts: "Major civic square in Buffalo with radial streets, monument centerpiece, " +
			"classic downtown civic space.",
	},
	{
		ID:   "akg",
		Name: "Buffalo AKG Art Museum",
		BaseFacts: "Major art museum campus in Buffalo with modern + historic architecture, " +
			"cultural institution setting.",
	},
	{
		ID:   "delawarepark",
		Name: "Delaware Park / Hoyt Lake",
		BaseFacts: "Large park landscape in Buffalo, tree-lined paths, lake setting, Olmsted park heritage, " +
			"seasonal weather.",
	},
	{
		ID:   "peacebridge",
		Name: "Peace Bridge",
		BaseFacts: "Buffalo-Fort Erie border bridge over the Niagara River, steel bridge infrastructure " +
			"and river context.",
	},
	{
		ID:   "electric_tower",
		Name: "Electric Tower",
		BaseFacts: "Historic downtown Buffalo building with distinctive illuminated tower character " +
			"and early-20th-century architectural identity.",
	},
}

// Catalog returns a copy of the full catalog.
func Catalog() []Landmark {
	out := make([]Landmark, len(catalog))
	copy(out, catalog)
	return out
}

// Size returns the number of catalog entries.
func Size() int {
	return len(catalog)
}

// PickRandom returns n distinct landmarks in random order. n is capped at the
// catalog size.
func PickRandom(n int) []Landmark {
	return pick(n, func(arr []Landmark) {
		rand.Shuffle(len(arr), func(i, j int) {
			arr[i], arr[j] = arr[j], arr[i]
		})
	})
}

// PickRandomSeeded behaves like [PickRandom] but shuffles with a PRNG seeded
// from seed, so the same seed always yields the same selection. Used for
// reproducible runs and tests.
func PickRandomSeeded(n int, seed int64) []Landmark {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // reproducibility is the point, not security
	return pick(n, func(arr []Landmark) {
		rng.Shuffle(len(arr), func(i, j int) {
			arr[i], arr[j] = arr[j], arr[i]
		})
	})
}

func pick(n int, shuffle func([]Landmark)) []Landmark {
	arr := Catalog()
	shuffle(arr)
	if n > len(arr) {
		n = len(arr)
	}
	if n < 0 {
		n = 0
	}
	return arr[:n]
}
