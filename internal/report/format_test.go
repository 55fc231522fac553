package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/suggestions"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const emptyReport = "==============================\n" +
	"AI Resume Analysis Report\n" +
	"==============================\n" +
	"\n" +
	"Resume Match Score: 0.0%\n" +
	"\n" +
	"Matched Skills:\n" +
	"- None\n" +
	"\n" +
	"Missing Skills:\n" +
	"- None\n" +
	"\n" +
	"Suggestions:\n" +
	"- None\n"

func TestFormat_FullLayout(t *testing.T) {
	result := matching.Match(types.NewSkillSet("Java", "SQL"), types.NewSkillSet("Java", "Spring", "Docker"))
	advice := suggestions.Suggest(&result)

	expected := "==============================\n" +
		"AI Resume Analysis Report\n" +
		"==============================\n" +
		"\n" +
		"Resume Match Score: 33.3%\n" +
		"\n" +
		"Matched Skills:\n" +
		"- Java\n" +
		"\n" +
		"Missing Skills:\n" +
		"- Docker\n" +
		"- Spring\n" +
		"\n" +
		"Suggestions:\n" +
		"- Add hands-on experience with Docker to your resume.\n" +
		"- Add hands-on experience with Spring to your resume.\n" +
		"- Your resume needs major alignment with job requirements. Restructure to highlight required skills more prominently.\n" +
		"- Consider adding a 'Core Competencies' section to emphasize missing technical areas.\n"

	assert.Equal(t, expected, Format(&result, advice))
}

func TestFormat_NoMatchedSkills(t *testing.T) {
	result := types.NewMatchResult(types.NewSkillSet(), types.NewSkillSet("X"), 0)

	got := Format(&result, []string{})

	assert.Contains(t, got, "Matched Skills:\n- None\n\n")
	assert.Contains(t, got, "Missing Skills:\n- X\n\n")
	assert.True(t, strings.HasSuffix(got, "Suggestions:\n- None\n"))
}

func TestFormat_NilInputs(t *testing.T) {
	result := types.NewMatchResult(types.NewSkillSet("Java"), nil, 100)

	assert.Equal(t, emptyReport, Format(nil, nil))
	assert.Equal(t, emptyReport, Format(nil, []string{"ignored"}))
	assert.Equal(t, emptyReport, Format(&result, nil))
}

func TestFormat_PercentageRounding(t *testing.T) {
	tests := []struct {
		percentage float64
		line       string
	}{
		{100, "Resume Match Score: 100.0%"},
		{2.0 / 3.0 * 100, "Resume Match Score: 66.7%"},
		{49.94, "Resume Match Score: 49.9%"},
		{0, "Resume Match Score: 0.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			result := types.NewMatchResult(nil, nil, tt.percentage)
			assert.Contains(t, Format(&result, []string{}), tt.line+"\n")
		})
	}
}

func TestFormat_SectionsSorted(t *testing.T) {
	result := types.NewMatchResult(
		types.NewSkillSet("Spring", "AWS", "Java"),
		types.NewSkillSet("Redis", "Docker"),
		60,
	)

	got := Format(&result, []string{"b", "a"})
	lines := strings.Split(got, "\n")

	idx := indexOf(lines, "Matched Skills:")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, []string{"- AWS", "- Java", "- Spring"}, lines[idx+1:idx+4])

	idx = indexOf(lines, "Missing Skills:")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, []string{"- Docker", "- Redis"}, lines[idx+1:idx+3])

	idx = indexOf(lines, "Suggestions:")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, []string{"- b", "- a"}, lines[idx+1:idx+3], "suggestion order is preserved")
}

func indexOf(lines []string, target string) int {
	for i, line := range lines {
		if line == target {
			return i
		}
	}
	return -1
}
