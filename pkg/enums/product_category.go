package enums

import "fmt"

// ProductCategory is the closed set of top-level catalog sections.
// Subcategories stay free-form strings validated by the storefront UI.
type ProductCategory string

const (
	ProductCategoryMen   ProductCategory = "men"
	ProductCategoryWomen ProductCategory = "women"
	ProductCategoryBoys  ProductCategory = "boys"
	ProductCategoryGirls ProductCategory = "girls"
)

var validProductCategories = []ProductCategory{
	ProductCategoryMen,
	ProductCategoryWomen,
	ProductCategoryBoys,
	ProductCategoryGirls,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
