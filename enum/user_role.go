package enum

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAlumni  UserRole = "alumni"
	RoleStaff   UserRole = "staff"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleStaff:
		return true
	}
	return false
}
