package domain

// Department is the business unit a log entry or user belongs to.
type Department string

const (
	DepartmentSales        Department = "sales"
	DepartmentResearch     Department = "research"
	DepartmentConstruction Department = "construction"
	DepartmentConsulting   Department = "consulting"
	DepartmentMaintenance  Department = "maintenance"
	DepartmentManagement   Department = "management"
	DepartmentOther        Department = "other"
)

func (d Department) String() string { return string(d) }

func (d Department) IsValid() bool {
	switch d {
	case DepartmentSales, DepartmentResearch, DepartmentConstruction, DepartmentConsulting,
		DepartmentMaintenance, DepartmentManagement, DepartmentOther:
		return true
	}
	return false
}

// ParseDepartment maps a free-form department guess onto the enum.
// Unknown values fall back to DepartmentOther.
func ParseDepartment(s string) Department {
	d := Department(NormalizeText(s))
	if d.IsValid() {
		return d
	}
	return DepartmentOther
}

// CourseType is the operating model of a golf course.
type CourseType string

const (
	CourseTypeMember CourseType = "member"
	CourseTypePublic CourseType = "public"
)

func (t CourseType) String() string { return string(t) }

func (t CourseType) IsValid() bool {
	switch t {
	case CourseTypeMember, CourseTypePublic:
		return true
	}
	return false
}

// UserRole is the flat role enum used for authorization.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleStaff   UserRole = "staff"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleStaff:
		return true
	}
	return false
}

// IsAdmin reports whether the role may approve or reject other users.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// UserStatus is the approval state of a user profile.
type UserStatus string

const (
	UserStatusPending  UserStatus = "PENDING"
	UserStatusApproved UserStatus = "APPROVED"
	UserStatusRejected UserStatus = "REJECTED"
)

func (s UserStatus) String() string { return string(s) }

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusPending, UserStatusApproved, UserStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether an administrator may move a profile
// from s to next. APPROVED and REJECTED are terminal unless reversed
// explicitly, which is modelled as the APPROVED <-> REJECTED edges.
func (s UserStatus) CanTransitionTo(next UserStatus) bool {
	switch s {
	case UserStatusPending:
		return next == UserStatusApproved || next == UserStatusRejected
	case UserStatusApproved:
		return next == UserStatusRejected
	case UserStatusRejected:
		return next == UserStatusApproved
	}
	return false
}
