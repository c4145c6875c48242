package entity

type Favorite struct {
	BaseEntity
	UserID    string `json:"userId" gorm:"type:varchar(255);not null;uniqueIndex:idx_favorite_user_listing"`
	ListingID string `json:"listingId" gorm:"type:varchar(255);not null;uniqueIndex:idx_favorite_user_listing"`

	User    User    `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Listing Listing `json:"-" gorm:"foreignKey:ListingID;references:ID;constraint:OnDelete:CASCADE;"`
}
