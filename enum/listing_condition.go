package enum

type ListingCondition string

const (
	ConditionNew     ListingCondition = "new"
	ConditionLikeNew ListingCondition = "like-new"
	ConditionGood    ListingCondition = "good"
	ConditionFair    ListingCondition = "fair"
)

func (c ListingCondition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair:
		return true
	}
	return false
}
