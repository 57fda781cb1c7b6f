package store

// Settings are the user preferences persisted alongside the data files.
type Settings struct {
	AutoSave        bool   `json:"auto_save"`
	BackupEnabled   bool   `json:"backup_enabled"`
	MaxBackups      int    `json:"max_backups"`
	DefaultJobType  string `json:"default_job_type"`
	DefaultLocation string `json:"default_location"`

	CoverLetter struct {
		CustomizeAutomatically bool `json:"customize_automatically"`
		IncludeSkills          bool `json:"include_skills"`
		IncludeExperience      bool `json:"include_experience"`
	} `json:"cover_letter_templates"`

	Application struct {
		AutoFillForms             bool `json:"auto_fill_forms"`
		UploadResumeAutomatically bool `json:"upload_resume_automatically"`
		SaveCoverLetters          bool `json:"save_cover_letters"`
	} `json:"application_settings"`
}

// DefaultSettings returns the settings applied when no settings file exists.
// A saved settings file is decoded on top of these defaults, so keys absent
// from the file keep their default value.
func DefaultSettings() Settings {
	s := Settings{
		AutoSave:       true,
		BackupEnabled:  true,
		MaxBackups:     10,
		DefaultJobType: "Full-time",
	}
	s.CoverLetter.CustomizeAutomatically = true
	s.CoverLetter.IncludeSkills = true
	s.CoverLetter.IncludeExperience = true
	s.Application.AutoFillForms = true
	s.Application.UploadResumeAutomatically = true
	s.Application.SaveCoverLetters = true
	return s
}
