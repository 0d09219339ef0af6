package user

// Role identifies the kind of actor behind an authenticated request.
// The core trusts the role supplied by the identity layer; it performs
// no authentication itself.
type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
)

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleRecruiter
}

// Actor is the authenticated user on whose behalf a core operation runs.
type Actor struct {
	ID   string
	Role Role
}
