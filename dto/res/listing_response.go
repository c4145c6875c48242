package res

type ListingResponse struct {
	ID           string   `json:"id"`
	UserID       string   `json:"userId"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory,omitempty"`
	Size         string   `json:"size,omitempty"`
	Condition    string   `json:"condition"`
	Price        float64  `json:"price"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Photos       []string `json:"photos"`
	Status       string   `json:"status"`
	GameDate     string   `json:"gameDate,omitempty"`
	ContactEmail string   `json:"contactEmail,omitempty"`
	ContactPhone string   `json:"contactPhone,omitempty"`
	CreatedAt    string   `json:"createdAt"`
}

type FavoriteResponse struct {
	ID        string          `json:"id"`
	ListingID string          `json:"listingId"`
	Listing   ListingResponse `json:"listing"`
	CreatedAt string          `json:"createdAt"`
}
