package entity

// Review is write-once; there is no edit or delete path. Several reviews
// between the same pair of users may accumulate.
type Review struct {
	BaseEntity
	ReviewerID     string  `json:"reviewerId" gorm:"type:varchar(255);not null"`
	ReviewedUserID string  `json:"reviewedUserId" gorm:"type:varchar(255);not null;index"`
	ListingID      *string `json:"listingId,omitempty" gorm:"type:varchar(255)"`
	Rating         int     `json:"rating" gorm:"not null"`
	Comment        string  `json:"comment,omitempty" gorm:"type:varchar(500)"`

	Reviewer     User     `json:"-" gorm:"foreignKey:ReviewerID;references:ID"`
	ReviewedUser User     `json:"-" gorm:"foreignKey:ReviewedUserID;references:ID"`
	Listing      *Listing `json:"-" gorm:"foreignKey:ListingID;references:ID"`
}
