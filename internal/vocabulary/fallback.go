package vocabulary

import "github.com/jonathan/resume-analyzer/internal/types"

const fallbackCategory = "General"

// fallbackSkills is used whenever the configured source is unavailable or unusable.
// "C#" normalizes to the same key as "C++" and is rejected by the keep-first policy.
var fallbackSkills = []string{
	"Java", "Python", "JavaScript", "TypeScript", "C++", "C#", "Go", "Rust",
	"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis",
	"Spring", "Spring Boot", "Hibernate", "React", "Angular", "Node.js", "Express",
	"HTML", "CSS", "REST", "GraphQL", "JSON", "XML",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP",
	"Git", "GitHub", "GitLab", "Maven", "Gradle",
	"JUnit", "Mockito", "Jest", "Pytest",
	"Agile", "Scrum", "TDD", "Linux", "Windows",
	"OOP", "Microservices", "Design Patterns", "SOLID",
}

// Fallback builds a Vocabulary from the built-in skill list
func Fallback() *Vocabulary {
	entries := make([]types.Skill, len(fallbackSkills))
	for i, name := range fallbackSkills {
		entries[i] = types.Skill{Name: name, Category: fallbackCategory}
	}
	return newVocabulary(entries, SourceFallback)
}
