package domain

type AuditAction string

const (
	AuditActionApprove AuditAction = "APPROVE"
	AuditActionReject  AuditAction = "REJECT"
)

type AuditEntityType string

const (
	AuditEntityChapter AuditEntityType = "CHAPTER"
	AuditEntityUpgrade AuditEntityType = "UPGRADE"
)

// AuditLogEntry records one administrative decision. Entries are
// append-only and written in the same transaction as the state change
// they describe.
type AuditLogEntry struct {
	ID         string          `json:"id"`
	Action     AuditAction     `json:"action"`
	EntityType AuditEntityType `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	UserID     *string         `json:"user_id,omitempty"` // acting admin
	Timestamp  string          `json:"timestamp"`
}
