package types

// JobListing represents a single job posting returned by a search.
type JobListing struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Posted      string `json:"posted"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	URL         string `json:"url"`
}
