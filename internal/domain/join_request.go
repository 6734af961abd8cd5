package domain

type JoinRequestStatus string

const (
	JoinRequestStatusPending  JoinRequestStatus = "PENDING"
	JoinRequestStatusApproved JoinRequestStatus = "APPROVED"
	JoinRequestStatusRejected JoinRequestStatus = "REJECTED"
)

type ParticipationRole string

const (
	ParticipationRoleMember      ParticipationRole = "Member"
	ParticipationRoleVolunteer   ParticipationRole = "Volunteer"
	ParticipationRoleAmbassador  ParticipationRole = "Ambassador"
	ParticipationRoleChapterTeam ParticipationRole = "Chapter Team"
)

func (r ParticipationRole) Valid() bool {
	switch r {
	case ParticipationRoleMember, ParticipationRoleVolunteer, ParticipationRoleAmbassador, ParticipationRoleChapterTeam:
		return true
	}
	return false
}

type ChapterJoinRequest struct {
	ID                string            `json:"id"`
	ChapterID         string            `json:"chapter_id"`
	UserID            string            `json:"user_id"`
	Interests         []string          `json:"interests"`
	ParticipationRole ParticipationRole `json:"participation_role"`
	Status            JoinRequestStatus `json:"status"`
	DecidedBy         *string           `json:"decided_by,omitempty"`
	CreatedOn         string            `json:"created_on"`
}
