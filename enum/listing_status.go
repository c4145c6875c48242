package enum

type ListingStatus string

const (
	ListingStatusDraft     ListingStatus = "draft"
	ListingStatusPublished ListingStatus = "published"
	ListingStatusSold      ListingStatus = "sold"
)

func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusDraft, ListingStatusPublished, ListingStatusSold:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Allowed: draft->published, published->sold, sold->published (re-list).
func (s ListingStatus) CanTransitionTo(next ListingStatus) bool {
	switch s {
	case ListingStatusDraft:
		return next == ListingStatusPublished
	case ListingStatusPublished:
		return next == ListingStatusSold
	case ListingStatusSold:
		return next == ListingStatusPublished
	}
	return false
}
