package types

// ApplicationStatus values recorded for a submission attempt.
const (
	StatusPending   = "pending"
	StatusSubmitted = "submitted"
	StatusFailed    = "failed"
)

// PersonalInfo is the candidate data copied onto application forms.
// Validation tags gate submission: a record with sentinel or missing contact
// fields must not reach the form-filling step.
type PersonalInfo struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// JobInfo is the job metadata carried on an application record.
type JobInfo struct {
	Title    string `json:"title" validate:"required"`
	Company  string `json:"company" validate:"required"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Salary   string `json:"salary"`
	URL      string `json:"url"`
}

// ApplicationData is the structured payload prepared for form filling.
type ApplicationData struct {
	PersonalInfo PersonalInfo      `json:"personal_info"`
	Summary      string            `json:"summary"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       []string          `json:"skills"`
	JobInfo      JobInfo           `json:"job_info"`
}

// ApplicationRecord is one tracked application, persisted by the store.
type ApplicationRecord struct {
	ID             string   `json:"id,omitempty"`
	JobTitle       string   `json:"job_title"`
	Company        string   `json:"company"`
	Status         string   `json:"status"`
	AppliedDate    string   `json:"applied_date"`
	LastUpdated    string   `json:"last_updated,omitempty"`
	CoverLetter    string   `json:"cover_letter,omitempty"`
	ConfirmationID string   `json:"confirmation_id,omitempty"`
	StepsCompleted []string `json:"steps_completed,omitempty"`
	Errors         []string `json:"errors,omitempty"`
	Success        bool     `json:"success"`
}

// ApplicationStats summarizes the tracked application history.
type ApplicationStats struct {
	TotalApplications      int             `json:"total_applications"`
	ApplicationsThisMonth  int             `json:"applications_this_month"`
	ApplicationsThisWeek   int             `json:"applications_this_week"`
	SuccessfulApplications int             `json:"successful_applications"`
	FailedApplications     int             `json:"failed_applications"`
	SuccessRate            float64         `json:"success_rate"`
	TopCompanies           []FrequencyItem `json:"top_companies"`
	TopPositions           []FrequencyItem `json:"top_positions"`
}

// FrequencyItem pairs a value with how often it occurs.
type FrequencyItem struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}
