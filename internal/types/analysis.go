package types

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is the full record of one resume-versus-job comparison
type Analysis struct {
	ID           uuid.UUID   `json:"id"`
	ResumeSkills SkillSet    `json:"resume_skills"`
	JobSkills    SkillSet    `json:"job_skills"`
	Result       MatchResult `json:"result"`
	Suggestions  []string    `json:"suggestions"`
	Report       string      `json:"report,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}
