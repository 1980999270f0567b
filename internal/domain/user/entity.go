package user

import "time"

type Role string

const (
	RoleSeeker   Role = "seeker"
	RoleEmployer Role = "employer"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleSeeker:
		return RoleSeeker, true
	case RoleEmployer:
		return RoleEmployer, true
	default:
		return "", false
	}
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

type User struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	AccessToken       string    `json:"-"`
	Role              Role      `json:"role"`
	Age               *int      `json:"age,omitempty"`
	IsProfileComplete bool      `json:"isProfileComplete"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
