package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-trade-api/dto/req"
)

func validListingRequest() *req.ListingRequest {
	return &req.ListingRequest{
		Title:       "Dorm mini fridge, barely used",
		Category:    "essentials",
		Subcategory: "electronics",
		Condition:   "good",
		Price:       45.50,
		Description: strings.Repeat("Compact fridge, perfect for a dorm room. ", 2),
		Location:    "North Campus, Culver House",
		Photos: []string{
			"https://cdn.example.com/fridge-front.jpg",
			"https://cdn.example.com/fridge-open.jpg",
		},
	}
}

func TestValidateListingAcceptsCompleteListing(t *testing.T) {
	require.NoError(t, ValidateListing(validListingRequest(), true))
}

func TestValidateListingTitleRules(t *testing.T) {
	request := validListingRequest()
	request.Title = "Too short"
	assert.Error(t, ValidateListing(request, false))

	request = validListingRequest()
	request.Title = strings.Repeat("x", 81)
	assert.Error(t, ValidateListing(request, false))

	request = validListingRequest()
	request.Title = "Mini fridge \U0001F525 great deal"
	assert.Error(t, ValidateListing(request, false), "emoji in title rejected")
}

func TestValidateListingPhotoMinimumOnlyWhenPublishing(t *testing.T) {
	request := validListingRequest()
	request.Photos = request.Photos[:1]

	assert.NoError(t, ValidateListing(request, false), "drafts may be incomplete")
	assert.Error(t, ValidateListing(request, true), "publishing needs two photos")
}

func TestValidateListingPriceRules(t *testing.T) {
	request := validListingRequest()
	request.Price = 45.509
	assert.Error(t, ValidateListing(request, false), "more than two decimals")

	request = validListingRequest()
	request.Price = 0
	assert.Error(t, ValidateListing(request, false), "zero price outside the free category")

	request = validListingRequest()
	request.Category = "free"
	request.Subcategory = ""
	request.Price = 0
	assert.NoError(t, ValidateListing(request, false))

	request.Price = 5
	assert.Error(t, ValidateListing(request, false), "free items must be $0.00")
}

func TestValidateListingTaxonomyRules(t *testing.T) {
	request := validListingRequest()
	request.Category = "merchandise"
	request.Subcategory = ""
	assert.Error(t, ValidateListing(request, false), "main categories require a subcategory")

	request.Subcategory = "snowboard"
	assert.Error(t, ValidateListing(request, false), "unknown subcategory")

	request.Subcategory = "hoodie"
	request.Size = ""
	assert.Error(t, ValidateListing(request, false), "apparel requires a size")

	request.Size = "xxxl"
	assert.Error(t, ValidateListing(request, false), "unknown size")

	request.Size = "m"
	assert.NoError(t, ValidateListing(request, false))

	// Flat legacy categories carry no subcategory.
	request = validListingRequest()
	request.Category = "textbooks"
	request.Subcategory = ""
	assert.NoError(t, ValidateListing(request, false))
}

func TestValidateListingGameDate(t *testing.T) {
	request := validListingRequest()
	request.Category = "game-day"
	request.Subcategory = "tailgate-ticket"

	request.GameDate = "yesterday"
	assert.Error(t, ValidateListing(request, false))

	request.GameDate = time.Now().AddDate(0, 0, -2).Format("2006-01-02")
	assert.Error(t, ValidateListing(request, false), "past game dates rejected")

	request.GameDate = time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	assert.NoError(t, ValidateListing(request, false))
}

func TestValidateListingGameDateAcceptsTodayInAnyTimezone(t *testing.T) {
	request := validListingRequest()
	request.Category = "game-day"
	request.Subcategory = "tailgate-ticket"

	// A game later today must be listable right up to local midnight, even
	// when the local calendar day lags UTC (run with TZ=Pacific/Midway late in
	// the evening to see the UTC-truncation failure mode).
	request.GameDate = time.Now().Format("2006-01-02")
	assert.NoError(t, ValidateListing(request, false), "local today is always valid")

	_, err := parseGameDate(time.Now().Format("2006-01-02"))
	assert.NoError(t, err)
}
