// Package types provides type definitions for structured data used throughout the job-application assistant.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Sentinel values rendered into a record when a fallback heuristic also finds
// nothing. Downstream consumers (the validator checklist, cover-letter
// formatting) treat these as "not found", never as legitimate data.
const (
	NameNotFound   = "Name not found"
	EmailNotFound  = "Email not found"
	SkillsNotFound = "Skills information not found"
)

// ResumeRecord is the structured output of a resume parse. Every field is
// always present: scalars default to "" and lists to empty slices, so JSON
// consumers never see a missing key.
type ResumeRecord struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
	Summary  string `json:"summary"`

	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Projects       []ProjectEntry    `json:"projects"`
	Certifications []string          `json:"certifications"`
	Languages      []string          `json:"languages"`

	// Dates holds every date token seen anywhere in the document. The set is
	// deduplicated but unordered; callers must not depend on its order.
	Dates        []string `json:"dates"`
	BulletPoints []string `json:"bullet_points"`

	// SkillsByCategory groups taxonomy hits by category name. Only matched
	// categories appear as keys.
	SkillsByCategory map[string][]string `json:"skills_by_category,omitempty"`

	Metadata Metadata `json:"metadata"`
}

// ExperienceEntry is one job entry built by the experience scanner.
type ExperienceEntry struct {
	Title   string `json:"title"`
	Company string `json:"company,omitempty"`
	Dates   string `json:"dates,omitempty"`
}

// EducationEntry is one education entry built by the education scanner.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
}

// ProjectEntry is one project entry built by the project scanner.
type ProjectEntry struct {
	Name         string `json:"name"`
	Technologies string `json:"technologies,omitempty"`
}

// Metadata describes a parse run. It is attached to the record but does not
// affect record identity.
type Metadata struct {
	ParsedAt        string `json:"parsed_at"`
	FilePath        string `json:"file_path"`
	FileSize        int64  `json:"file_size"`
	ConfidenceScore int    `json:"confidence_score"`
}

// NewResumeRecord returns a record with every field at its defined default.
func NewResumeRecord() *ResumeRecord {
	return &ResumeRecord{
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         []string{},
		Projects:       []ProjectEntry{},
		Certifications: []string{},
		Languages:      []string{},
		Dates:          []string{},
		BulletPoints:   []string{},
	}
}

// HasName reports whether the record carries a real extracted name.
func (r *ResumeRecord) HasName() bool {
	return r.Name != "" && r.Name != NameNotFound
}

// HasEmail reports whether the record carries a real extracted email.
func (r *ResumeRecord) HasEmail() bool {
	return r.Email != "" && r.Email != EmailNotFound
}

// HasSkills reports whether the skills list holds real taxonomy hits rather
// than the not-found sentinel.
func (r *ResumeRecord) HasSkills() bool {
	if len(r.Skills) == 0 {
		return false
	}
	return !(len(r.Skills) == 1 && r.Skills[0] == SkillsNotFound)
}
