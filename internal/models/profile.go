package models

type StudentProfile struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Branch         string   `json:"branch"`
	Year           string   `json:"year"`
	CGPA           string   `json:"cgpa"`
	Phone          string   `json:"phone"`
	Skills         []string `json:"skills"`
	ResumeUploaded bool     `json:"resumeUploaded"`
}

type PrepTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
}

type SkillPriority string

const (
	PriorityCritical   SkillPriority = "critical"
	PriorityImportant  SkillPriority = "important"
	PriorityGoodToHave SkillPriority = "good-to-have"
)

type RequiredSkill struct {
	Skill       string        `json:"skill"`
	Priority    SkillPriority `json:"priority"`
	Description string        `json:"description"`
}

type LearningResource struct {
	Title    string `json:"title"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Free     bool   `json:"free"`
	Duration string `json:"duration"`
}
