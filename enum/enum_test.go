package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingStatusTransitions(t *testing.T) {
	assert.True(t, ListingStatusDraft.CanTransitionTo(ListingStatusPublished))
	assert.True(t, ListingStatusPublished.CanTransitionTo(ListingStatusSold))
	assert.True(t, ListingStatusSold.CanTransitionTo(ListingStatusPublished), "sold listings can be re-listed")

	assert.False(t, ListingStatusDraft.CanTransitionTo(ListingStatusSold))
	assert.False(t, ListingStatusPublished.CanTransitionTo(ListingStatusDraft))
	assert.False(t, ListingStatusSold.CanTransitionTo(ListingStatusDraft))
}

func TestCategoryTaxonomy(t *testing.T) {
	assert.True(t, IsValidCategory("game-day"))
	assert.True(t, IsValidCategory("textbooks"), "legacy flat categories stay valid")
	assert.True(t, IsValidCategory(CategoryFree))
	assert.False(t, IsValidCategory("vehicles"))

	assert.True(t, IsMainCategory("merchandise"))
	assert.False(t, IsMainCategory("textbooks"))
	assert.False(t, IsMainCategory(CategoryFree))

	sub, ok := FindSubcategory("merchandise", "hoodie")
	assert.True(t, ok)
	assert.True(t, sub.RequiresSize)

	sub, ok = FindSubcategory("merchandise", "cap")
	assert.True(t, ok)
	assert.False(t, sub.RequiresSize)

	_, ok = FindSubcategory("essentials", "hoodie")
	assert.False(t, ok)

	assert.True(t, IsValidSize("xl"))
	assert.False(t, IsValidSize("xxxl"))
}
