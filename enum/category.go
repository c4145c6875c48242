package enum

// Subcategory is one leaf of the listing taxonomy. RequiresSize marks apparel
// subcategories that cannot be listed without a size.
type Subcategory struct {
	Value        string
	Label        string
	RequiresSize bool
}

// CategoryStructure holds the main taxonomy groups. Listings in these
// categories must carry a subcategory.
var CategoryStructure = map[string][]Subcategory{
	"game-day": {
		{Value: "tailgate-ticket", Label: "Tailgate Ticket"},
		{Value: "tailgate-passes", Label: "Tailgate Passes"},
		{Value: "tailgate-gear", Label: "Tailgate Gear"},
		{Value: "tailgate-essentials", Label: "Tailgate Essentials"},
	},
	"merchandise": {
		{Value: "t-shirt", Label: "T-Shirt", RequiresSize: true},
		{Value: "hoodie", Label: "Hoodie", RequiresSize: true},
		{Value: "cap", Label: "Cap"},
		{Value: "club-apparel", Label: "Club Apparel", RequiresSize: true},
		{Value: "accessories", Label: "Accessories"},
	},
	"essentials": {
		{Value: "furniture", Label: "Furniture"},
		{Value: "books", Label: "Books"},
		{Value: "electronics", Label: "Electronics"},
		{Value: "kitchen-essentials", Label: "Kitchen Essentials"},
		{Value: "miscellaneous", Label: "Miscellaneous"},
	},
	"rentals": {
		{Value: "furniture-rental", Label: "Furniture"},
		{Value: "electronics-rental", Label: "Electronics"},
		{Value: "transportation", Label: "Transportation"},
		{Value: "event-equipment", Label: "Event Equipment"},
		{Value: "other-rental", Label: "Other"},
	},
}

const CategoryFree = "free"

// ListingCategories is the full closed set, main groups plus flat legacy
// categories kept for older listings.
var ListingCategories = []string{
	"game-day", "merchandise", "essentials", "rentals",
	"furniture", "electronics", "textbooks", "clothing",
	"kitchen", "study-items", CategoryFree,
}

var SizeOptions = []string{"xs", "s", "m", "l", "xl", "xxl"}

func IsValidCategory(category string) bool {
	for _, c := range ListingCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsMainCategory reports whether category is a taxonomy group that requires a
// subcategory.
func IsMainCategory(category string) bool {
	_, ok := CategoryStructure[category]
	return ok
}

// FindSubcategory resolves a subcategory value within a main category.
func FindSubcategory(category, subcategory string) (Subcategory, bool) {
	for _, sub := range CategoryStructure[category] {
		if sub.Value == subcategory {
			return sub, true
		}
	}
	return Subcategory{}, false
}

func IsValidSize(size string) bool {
	for _, s := range SizeOptions {
		if s == size {
			return true
		}
	}
	return false
}
