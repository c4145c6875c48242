package entity

import (
	"time"

	"campus-trade-api/enum"
)

type Listing struct {
	BaseEntity
	UserID       string                `json:"userId" gorm:"type:varchar(255);not null;index"`
	Title        string                `json:"title" gorm:"type:varchar(80);not null"`
	Slug         string                `json:"slug" gorm:"type:varchar(120);unique"`
	Category     string                `json:"category" gorm:"type:varchar(30);not null;index"`
	Subcategory  string                `json:"subcategory,omitempty" gorm:"type:varchar(30)"`
	Size         string                `json:"size,omitempty" gorm:"type:varchar(5)"`
	Condition    enum.ListingCondition `json:"condition" gorm:"type:varchar(10)"`
	Price        float64               `json:"price" gorm:"not null"`
	Description  string                `json:"description" gorm:"type:text"`
	Location     string                `json:"location" gorm:"type:varchar(200)"`
	Photos       []string              `json:"photos" gorm:"serializer:json"`
	Status       enum.ListingStatus    `json:"status" gorm:"type:varchar(10);default:'draft';index"`
	GameDate     *time.Time            `json:"gameDate,omitempty" gorm:"null"`
	ContactEmail string                `json:"contactEmail,omitempty" gorm:"type:varchar(100)"`
	ContactPhone string                `json:"contactPhone,omitempty" gorm:"type:varchar(20)"`

	Owner User `json:"-" gorm:"foreignKey:UserID;references:ID"`
}

// PrimaryPhoto is the photo shown in list views, empty when none uploaded yet.
func (l *Listing) PrimaryPhoto() string {
	if len(l.Photos) == 0 {
		return ""
	}
	return l.Photos[0]
}
