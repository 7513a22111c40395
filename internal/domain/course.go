package domain

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Course is a golf course tracked by the business.
type Course struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Region      string     `json:"region"`
	Holes       int        `json:"holes"`
	Type        CourseType `json:"type"`
	OpenYear    string     `json:"openYear"`
	Address     string     `json:"address"`
	GrassType   string     `json:"grassType"`
	Area        string     `json:"area"`
	Description string     `json:"description"`
	Location    *GeoPoint  `json:"location"`
	Issues      []string   `json:"issues"`
}

// AddIssues appends issues that are not already present (compared with
// NormalizeText) and returns the number added.
func (c *Course) AddIssues(issues ...string) int {
	seen := make(map[string]bool, len(c.Issues))
	for _, is := range c.Issues {
		seen[NormalizeText(is)] = true
	}
	added := 0
	for _, is := range issues {
		n := NormalizeText(is)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		c.Issues = append(c.Issues, is)
		added++
	}
	return added
}

// NewCourseDetails is the best-effort description the extractor returns
// when a document mentions a course that does not exist yet.
type NewCourseDetails struct {
	Address string     `json:"address"`
	Holes   int        `json:"holes"`
	Type    CourseType `json:"type"`
}
