package products

import (
	"encoding/json"
	"strings"

	"github.com/lib/pq"
	"github.com/medinathreads/medina-backend/pkg/types"
)

// fallbackHex is used when a stored color name has no known hex value.
const fallbackHex = "#ffffff"

// colorMetadata maps the catalog's known color names to their display hex
// values. Kept server-side so bare-name rows can round-trip back to full
// {name, hex} pairs without a schema migration.
var colorMetadata = map[string]string{
	"Black":      "#000000",
	"White":      "#ffffff",
	"Navy Blue":  "#1e3a8a",
	"Light Blue": "#38bdf8",
	"Red":        "#dc2626",
	"Burgundy":   "#7c2d12",
	"Pink":       "#ec4899",
	"Rose":       "#f43f5e",
	"Green":      "#059669",
	"Lime":       "#65a30d",
	"Yellow":     "#eab308",
	"Orange":     "#f97316",
	"Purple":     "#7c3aed",
	"Violet":     "#8b5cf6",
	"Gray":       "#6b7280",
	"Charcoal":   "#374151",
	"Brown":      "#92400e",
	"Tan":        "#d2b48c",
	"Beige":      "#f5f5dc",
	"Cream":      "#fffdd0",
	"Olive":      "#84cc16",
	"Maroon":     "#800000",
	"Gold":       "#ffd700",
	"Silver":     "#c0c0c0",
	"Coral":      "#ff6f61",
	"Lavender":   "#b57edc",
	"Mint Green": "#98ff98",
	"Rust":       "#b7410e",
	"Taupe":      "#8b7d7b",
}

// DecodeStoredColors normalizes every element of a stored colors column.
// The column accumulated three encodings over the catalog's history:
//
//  1. bare color names ("Black")
//  2. JSON-encoded objects (`{"name":"Black","hex":"#000000"}`)
//  3. double-encoded JSON (a JSON string whose value is encoding 2)
//
// All three must decode to the same {name, hex} pair.
func DecodeStoredColors(stored pq.StringArray) []types.Color {
	colors := make([]types.Color, 0, len(stored))
	for _, raw := range stored {
		colors = append(colors, decodeStoredColor(raw))
	}
	return colors
}

func decodeStoredColor(raw string) types.Color {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return types.Color{Name: raw, Hex: fallbackHex}
	}

	if c, ok := decodeColorJSON(trimmed); ok {
		return c
	}

	// Bare color name. Known names recover their hex; unknown names keep a
	// neutral swatch.
	if hex, ok := colorMetadata[trimmed]; ok {
		return types.Color{Name: trimmed, Hex: hex}
	}
	return types.Color{Name: trimmed, Hex: fallbackHex}
}

func decodeColorJSON(raw string) (types.Color, bool) {
	if !strings.HasPrefix(raw, "{") && !strings.HasPrefix(raw, "\"") {
		return types.Color{}, false
	}

	var obj types.Color
	if err := json.Unmarshal([]byte(raw), &obj); err == nil && obj.Name != "" {
		if obj.Hex == "" {
			obj.Hex = lookupHex(obj.Name)
		}
		return obj, true
	}

	// Double-encoded: the element is a JSON string wrapping the real value.
	var inner string
	if err := json.Unmarshal([]byte(raw), &inner); err == nil {
		inner = strings.TrimSpace(inner)
		if c, ok := decodeColorJSON(inner); ok {
			return c, true
		}
		if inner != "" {
			return types.Color{Name: inner, Hex: lookupHex(inner)}, true
		}
	}

	return types.Color{}, false
}

func lookupHex(name string) string {
	if hex, ok := colorMetadata[name]; ok {
		return hex
	}
	return fallbackHex
}

// EncodeColors produces the canonical stored form: one JSON-encoded
// {name, hex} object per element. All writes go through this so the legacy
// encodings stop accumulating.
func EncodeColors(colors []types.Color) pq.StringArray {
	stored := make(pq.StringArray, 0, len(colors))
	for _, c := range colors {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		if c.Hex == "" {
			c.Hex = lookupHex(c.Name)
		}
		b, err := json.Marshal(c)
		if err != nil {
			continue
		}
		stored = append(stored, string(b))
	}
	return stored
}
