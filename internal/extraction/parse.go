package extraction

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

// decodeJSON decodes the first JSON array or object embedded in s. Prose
// and code fences around it are skipped, brackets inside that prose
// included: each '[' or '{' is tried in turn and trailing text after a
// complete value is ignored. An array holding only scalars is taken as
// prose (a citation like "[2]") and skipped.
func decodeJSON(s string) (any, error) {
	var firstErr error
	for i := 0; i < len(s); i++ {
		if s[i] != '[' && s[i] != '{' {
			continue
		}
		var doc any
		if err := json.NewDecoder(strings.NewReader(s[i:])).Decode(&doc); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if isRecordShaped(doc) {
			return doc, nil
		}
	}
	if firstErr != nil {
		return nil, fmt.Errorf("decode response: %w", firstErr)
	}
	return nil, errors.New("no JSON found in response")
}

func isRecordShaped(doc any) bool {
	switch v := doc.(type) {
	case map[string]any:
		return true
	case []any:
		if len(v) == 0 {
			return true
		}
		for _, item := range v {
			if _, ok := item.(map[string]any); ok {
				return true
			}
		}
	}
	return false
}

// parseRecords turns a generator response into normalized records. A
// response without a JSON array or object is a malformed-response error;
// anything inside that parses is normalized field by field.
func parseRecords(text, today string) ([]domain.ExtractedRecord, error) {
	doc, err := decodeJSON(text)
	if err != nil {
		return nil, domain.NewExtractionError(domain.CategoryMalformedResponse, err)
	}

	var items []any
	switch v := doc.(type) {
	case []any:
		items = v
	case map[string]any:
		if list, ok := v["records"].([]any); ok {
			items = list
		} else {
			items = []any{v}
		}
	}

	records := make([]domain.ExtractedRecord, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		records = append(records, normalizeRecord(m, today))
	}
	return records, nil
}

func normalizeRecord(m map[string]any, today string) domain.ExtractedRecord {
	r := domain.ExtractedRecord{
		Title:         str(m["title"]),
		Content:       str(m["content"]),
		Date:          str(m["date"]),
		Department:    domain.ParseDepartment(str(m["department"])).String(),
		CourseName:    strings.TrimSpace(str(m["courseName"])),
		Tags:          strList(m["tags"]),
		ProjectName:   str(m["projectName"]),
		ContactPerson: str(m["contactPerson"]),
		DueDate:       str(m["dueDate"]),
		KeyIssues:     strList(m["keyIssues"]),
	}
	if r.Date == "" {
		r.Date = today
	}
	if d, ok := m["newCourseDetails"].(map[string]any); ok {
		details := &domain.NewCourseDetails{
			Address: str(d["address"]),
			Holes:   num(d["holes"]),
			Type:    domain.CourseType(domain.NormalizeText(str(d["type"]))),
		}
		if !details.Type.IsValid() {
			details.Type = ""
		}
		r.NewCourseDetails = details
	}
	return r
}

func str(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

func strList(v any) []string {
	out := []string{}
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s := str(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		if s := strings.TrimSpace(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func num(v any) int {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0
		}
		return int(t)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err == nil {
			return n
		}
	}
	return 0
}
