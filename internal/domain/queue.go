package domain

type QueueKind string

const (
	QueueKindChapters QueueKind = "chapters"
	QueueKindUpgrades QueueKind = "upgrades"
)

// QueueItem is a tagged union over the two kinds of decision-pending
// entities the admin review queue surfaces. Exactly one of Chapter and
// Upgrade is set, per Kind.
type QueueItem struct {
	Kind    QueueKind              `json:"kind"`
	Chapter *Chapter               `json:"chapter,omitempty"`
	Upgrade *ChapterUpgradeRequest `json:"upgrade,omitempty"`
}
