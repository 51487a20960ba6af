package constants

// Tier is a reward-eligibility bracket derived from a user's percentile
// standing among all scored reports.
type Tier string

const (
	Bronze   Tier = "Bronze"
	Silver   Tier = "Silver"
	Gold     Tier = "Gold"
	Platinum Tier = "Platinum"
	Diamond  Tier = "Diamond"
)

// tierOrder is ascending: a later tier outranks an earlier one.
var tierOrder = []Tier{Bronze, Silver, Gold, Platinum, Diamond}

// Outranks reports whether t is at least as high as other.
func (t Tier) Outranks(other Tier) bool {
	return tierIndex(t) >= tierIndex(other)
}

func tierIndex(t Tier) int {
	for i, v := range tierOrder {
		if v == t {
			return i
		}
	}
	return -1
}
