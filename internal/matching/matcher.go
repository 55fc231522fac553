// Package matching compares a resume's skills against a job's required skills.
package matching

import "github.com/jonathan/resume-analyzer/internal/types"

// Match computes the overlap and gap between resume and job skills.
// A nil set is treated as empty. Names are compared exactly, so "java" and "Java" differ.
// The percentage is 100 * |matched| / |job|, and exactly 0 when job is empty.
func Match(resume, job types.SkillSet) types.MatchResult {
	matched := job.Intersect(resume)
	missing := job.Difference(resume)

	percentage := 0.0
	if job.Len() > 0 {
		percentage = float64(matched.Len()) / float64(job.Len()) * 100.0
	}

	return types.NewMatchResult(matched, missing, percentage)
}
