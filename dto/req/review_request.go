package req

type ReviewRequest struct {
	ReviewedUserID string `json:"reviewedUserId" validate:"required"`
	ListingID      string `json:"listingId"`
	Rating         int    `json:"rating" validate:"required,min=1,max=5"`
	Comment        string `json:"comment" validate:"max=500"`
}
