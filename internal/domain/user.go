package domain

type UserRole string

const (
	UserRoleMember      UserRole = "member"
	UserRoleChapterLead UserRole = "chapter_lead"
	UserRoleAdmin       UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleMember, UserRoleChapterLead, UserRoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string   `json:"id"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	Country      string   `json:"country"`
	State        string   `json:"state"`
	City         string   `json:"city"`
	PasswordHash string   `json:"-"`
	CreatedOn    string   `json:"created_on"`
}
