package usecase

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"campus-trade-api/dto/req"
	"campus-trade-api/enum"
)

const (
	minTitleLength       = 10
	maxTitleLength       = 80
	minDescriptionLength = 40
	maxDescriptionLength = 1000
	maxLocationLength    = 200
	minPhotosToPublish   = 2
)

var emojiPattern = regexp.MustCompile(`[\x{1F000}-\x{1FAFF}\x{2600}-\x{27BF}\x{2B00}-\x{2BFF}\x{FE00}-\x{FE0F}]`)

// ValidateListing enforces the taxonomy and content rules shared by create
// and update. The photo minimum applies only when publishing; drafts may be
// saved incomplete.
func ValidateListing(request *req.ListingRequest, publishing bool) error {
	title := strings.TrimSpace(request.Title)
	if len(title) < minTitleLength || len(title) > maxTitleLength {
		return fmt.Errorf("title must be between %d and %d characters", minTitleLength, maxTitleLength)
	}
	if emojiPattern.MatchString(title) {
		return errors.New("title cannot contain emojis")
	}

	if !enum.IsValidCategory(request.Category) {
		return fmt.Errorf("unknown category %q", request.Category)
	}
	if !enum.ListingCondition(request.Condition).IsValid() {
		return fmt.Errorf("unknown condition %q", request.Condition)
	}

	if err := validatePrice(request.Category, request.Price); err != nil {
		return err
	}

	if len(request.Description) < minDescriptionLength || len(request.Description) > maxDescriptionLength {
		return fmt.Errorf("description must be between %d and %d characters", minDescriptionLength, maxDescriptionLength)
	}

	location := strings.TrimSpace(request.Location)
	if location == "" || len(location) > maxLocationLength {
		return fmt.Errorf("location is required and must be at most %d characters", maxLocationLength)
	}

	if enum.IsMainCategory(request.Category) {
		if request.Subcategory == "" {
			return errors.New("subcategory is required for this category")
		}
		sub, ok := enum.FindSubcategory(request.Category, request.Subcategory)
		if !ok {
			return fmt.Errorf("unknown subcategory %q for category %q", request.Subcategory, request.Category)
		}
		if sub.RequiresSize {
			if request.Size == "" {
				return errors.New("size is required for this item")
			}
			if !enum.IsValidSize(request.Size) {
				return fmt.Errorf("unknown size %q", request.Size)
			}
		}
	}

	if publishing && len(request.Photos) < minPhotosToPublish {
		return fmt.Errorf("at least %d photos are required to publish", minPhotosToPublish)
	}

	if request.GameDate != "" {
		if _, err := parseGameDate(request.GameDate); err != nil {
			return err
		}
	}

	return nil
}

// validatePrice: price is zero exactly when the category is "free", and never
// carries more than two decimal places.
func validatePrice(category string, price float64) error {
	if price < 0 {
		return errors.New("price cannot be negative")
	}
	cents := price * 100
	if math.Abs(cents-math.Round(cents)) > 1e-9 {
		return errors.New("price can have at most 2 decimal places")
	}
	if category == enum.CategoryFree {
		if price != 0 {
			return errors.New("price must be $0.00 for free items")
		}
		return nil
	}
	if price == 0 {
		return errors.New("price must be greater than $0.00 for this category")
	}
	return nil
}

func parseGameDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errors.New("invalid game date format, expected YYYY-MM-DD")
	}
	// The parsed date sits at UTC midnight of its calendar day, so build the
	// cutoff from the local calendar day in UTC too. Truncating time.Now()
	// to the UTC day would reject today's game late in the evening in
	// UTC-negative timezones.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return time.Time{}, errors.New("game date must be today or in the future")
	}
	return date, nil
}
