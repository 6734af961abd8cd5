package domain

type UpgradeRequestStatus string

const (
	UpgradeRequestStatusPending  UpgradeRequestStatus = "PENDING"
	UpgradeRequestStatusApproved UpgradeRequestStatus = "APPROVED"
	UpgradeRequestStatusRejected UpgradeRequestStatus = "REJECTED"
)

// UpgradeEvidence is the self-reported eligibility snapshot attached to
// an upgrade request. It is recorded verbatim and never enforced; the
// reviewing admin is the final gate.
type UpgradeEvidence struct {
	Address                string   `json:"address"`
	EvidenceURLs           []string `json:"evidence_urls"`
	MembershipThresholdMet bool     `json:"membership_threshold_met"`
	LeadershipRolesFilled  int32    `json:"leadership_roles_filled"`
	DocumentedActivities   int32    `json:"documented_activities"`
	ReportingEnabled       bool     `json:"reporting_enabled"`
	WalletEnabled          bool     `json:"wallet_enabled"`
}

type ChapterUpgradeRequest struct {
	ID        string               `json:"id"`
	ChapterID string               `json:"chapter_id"`
	Target    ChapterTier          `json:"target_tier"`
	Status    UpgradeRequestStatus `json:"status"`
	Evidence  UpgradeEvidence      `json:"evidence"`
	DecidedBy *string              `json:"decided_by,omitempty"`
	CreatedOn string               `json:"created_on"`
}
