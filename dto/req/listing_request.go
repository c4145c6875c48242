package req

// ListingRequest carries the create/update payload. Taxonomy and price rules
// beyond simple shape checks live in the listing usecase.
type ListingRequest struct {
	Title        string   `json:"title" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	Subcategory  string   `json:"subcategory"`
	Size         string   `json:"size"`
	Condition    string   `json:"condition" validate:"required"`
	Price        float64  `json:"price" validate:"min=0"`
	Description  string   `json:"description" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Photos       []string `json:"photos" validate:"dive,url"`
	GameDate     string   `json:"gameDate"`
	ContactEmail string   `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string   `json:"contactPhone" validate:"omitempty,max=20"`
	Publish      bool     `json:"publish"`
}

type ChangeListingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published sold"`
}

// ListingFilter captures the browse query parameters.
type ListingFilter struct {
	Category    string
	Subcategory string
	Search      string
	MinPrice    *float64
	MaxPrice    *float64
	Limit       int
}
