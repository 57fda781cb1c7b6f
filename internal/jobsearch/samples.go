package jobsearch

import "github.com/GillzV/jobassist/internal/types"

// SampleListings returns the built-in demonstration listings. Callers get a
// fresh slice each time and may mutate it freely.
func SampleListings() []types.JobListing {
	return []types.JobListing{
		{
			Title:       "Software Engineer",
			Company:     "Tech Corp",
			Location:    "San Francisco, CA",
			Type:        "Full-time",
			Posted:      "2024-01-15",
			Description: "We are looking for a talented Software Engineer to join our team. Experience with Python, JavaScript, and cloud technologies required.",
			Salary:      "$120,000 - $150,000",
			URL:         "https://example.com/job1",
		},
		{
			Title:       "Data Scientist",
			Company:     "Data Analytics Inc",
			Location:    "New York, NY",
			Type:        "Full-time",
			Posted:      "2024-01-14",
			Description: "Join our data science team to build machine learning models and analyze large datasets. Python, R, and SQL experience needed.",
			Salary:      "$130,000 - $160,000",
			URL:         "https://example.com/job2",
		},
		{
			Title:       "Frontend Developer",
			Company:     "Web Solutions",
			Location:    "Remote",
			Type:        "Full-time",
			Posted:      "2024-01-13",
			Description: "Create beautiful and responsive web applications using React, Vue.js, and modern CSS frameworks.",
			Salary:      "$90,000 - $120,000",
			URL:         "https://example.com/job3",
		},
		{
			Title:       "DevOps Engineer",
			Company:     "Cloud Systems",
			Location:    "Austin, TX",
			Type:        "Full-time",
			Posted:      "2024-01-12",
			Description: "Manage cloud infrastructure and CI/CD pipelines. Experience with AWS, Docker, and Kubernetes required.",
			Salary:      "$110,000 - $140,000",
			URL:         "https://example.com/job4",
		},
		{
			Title:       "Product Manager",
			Company:     "Innovation Labs",
			Location:    "Seattle, WA",
			Type:        "Full-time",
			Posted:      "2024-01-11",
			Description: "Lead product development from concept to launch. Strong analytical and communication skills required.",
			Salary:      "$140,000 - $180,000",
			URL:         "https://example.com/job5",
		},
	}
}
