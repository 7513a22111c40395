package extraction

import (
	"fmt"
	"strings"
)

const systemPrompt = `You extract structured work logs for a golf-course business intelligence team from documents such as meeting notes, reports, site photos and spreadsheets. You answer with JSON only.`

// buildPrompt creates the extraction instruction. existingNames are the
// canonical course names the output must reuse on a fuzzy match.
func buildPrompt(existingNames []string, today string) string {
	names := "(none yet)"
	if len(existingNames) > 0 {
		names = "- " + strings.Join(existingNames, "\n- ")
	}

	return fmt.Sprintf(`Extract every distinct work log from the attached documents.

Known golf courses:
%s

Output ONLY a JSON array. Each element must match this schema:
{
  "title": "<short title>",
  "content": "<summary of what happened, in the document's language>",
  "date": "<YYYY-MM-DD, or empty when unknown>",
  "department": "<sales|research|construction|consulting|maintenance|management|other>",
  "courseName": "<course the log is about>",
  "tags": ["<keyword>"],
  "projectName": "<optional>",
  "contactPerson": "<optional>",
  "dueDate": "<optional YYYY-MM-DD>",
  "keyIssues": ["<problem or risk found at the course>"],
  "newCourseDetails": {"address": "<address>", "holes": <number>, "type": "<member|public>"}
}

Rules:
- When a course in the document matches a known course, even partially or with different spacing or case, use the known name exactly.
- When it matches none of them, use the name from the document and fill newCourseDetails with your best guess; otherwise omit newCourseDetails.
- Today is %s; resolve relative dates against it.
- Output ONLY the JSON, no markdown, no explanations`, names, today)
}
