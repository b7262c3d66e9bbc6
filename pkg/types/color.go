package types

// Color is the canonical catalog color representation. Legacy rows stored
// bare names or JSON-encoded strings; the products repository normalizes
// everything down to this shape at its read boundary.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}
