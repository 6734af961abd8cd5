package domain

// ChapterTier is the chapter maturity ladder. Promotions only move
// forward: ONLINE -> HYBRID -> PHYSICAL.
type ChapterTier string

const (
	ChapterTierOnline   ChapterTier = "ONLINE"
	ChapterTierHybrid   ChapterTier = "HYBRID"
	ChapterTierPhysical ChapterTier = "PHYSICAL"
)

// Ord returns the tier's position on the ladder, -1 for unknown tiers.
func (t ChapterTier) Ord() int {
	switch t {
	case ChapterTierOnline:
		return 0
	case ChapterTierHybrid:
		return 1
	case ChapterTierPhysical:
		return 2
	}
	return -1
}

func (t ChapterTier) Valid() bool {
	return t.Ord() >= 0
}

type ChapterStatus string

const (
	ChapterStatusPending  ChapterStatus = "PENDING"
	ChapterStatusActive   ChapterStatus = "ACTIVE"
	ChapterStatusRejected ChapterStatus = "REJECTED"
)

type Chapter struct {
	ID           string        `json:"id"`
	Slug         string        `json:"slug"`
	Name         string        `json:"name"`
	Country      string        `json:"country"`
	State        string        `json:"state"`
	City         string        `json:"city"`
	Tier         ChapterTier   `json:"tier"`
	Status       ChapterStatus `json:"status"`
	MemberCount  int32         `json:"member_count"`
	ProgramFocus []string      `json:"program_focus"`
	KickoffPlan  string        `json:"kickoff_plan"`
	Verified     bool          `json:"verified"`
	Address      *string       `json:"address,omitempty"`
	CreatedBy    string        `json:"created_by"`
	CreatedOn    string        `json:"created_on"`
}
