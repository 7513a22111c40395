package domain

const (
	MinAffinity = -2
	MaxAffinity = 2
)

// CareerRecord is one archived or ongoing employment of a person.
type CareerRecord struct {
	CourseID    string `json:"courseId"`
	CourseName  string `json:"courseName"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// IsOngoing reports whether the record has no end date.
func (r CareerRecord) IsOngoing() bool { return r.EndDate == "" }

// Person is a contact tracked across courses.
type Person struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Phone           string         `json:"phone"`
	CurrentRole     string         `json:"currentRole"`
	CurrentCourseID string         `json:"currentCourseId"`
	CurrentSince    string         `json:"currentStartDate"`
	Careers         []CareerRecord `json:"careers"`
	Affinity        int            `json:"affinity"`
	Notes           string         `json:"notes"`
}

// ChangesEmployment reports whether moving to role at courseID ends the
// current employment.
func (p *Person) ChangesEmployment(role, courseID string) bool {
	if p.CurrentRole == "" && p.CurrentCourseID == "" {
		return false
	}
	return p.CurrentRole != role || p.CurrentCourseID != courseID
}

// ArchiveCurrent moves the current employment into Careers, closing it on
// endDate. courseName is the denormalized name of CurrentCourseID.
// The current fields are cleared.
func (p *Person) ArchiveCurrent(courseName, endDate string) {
	if p.CurrentRole == "" && p.CurrentCourseID == "" {
		return
	}
	p.Careers = append(p.Careers, CareerRecord{
		CourseID:   p.CurrentCourseID,
		CourseName: courseName,
		Role:       p.CurrentRole,
		StartDate:  p.CurrentSince,
		EndDate:    endDate,
	})
	p.CurrentRole = ""
	p.CurrentCourseID = ""
	p.CurrentSince = ""
}
