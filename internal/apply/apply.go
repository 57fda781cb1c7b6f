// Package apply runs the simulated job-application workflow: validate the
// candidate data, generate a cover letter, prepare the form payload, walk the
// submission steps, and record the outcome. Form filling is a simulation only;
// nothing leaves the machine and no artificial delays are introduced.
package apply

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/GillzV/jobassist/internal/coverletter"
	"github.com/GillzV/jobassist/internal/store"
	"github.com/GillzV/jobassist/internal/types"
)

// formSteps are the simulated submission steps, in order.
var formSteps = []string{
	"Loading application page",
	"Filling personal information",
	"Uploading resume",
	"Filling work experience",
	"Filling education details",
	"Adding skills",
	"Writing cover letter",
	"Submitting application",
}

// Automator drives the application workflow. FailureRate injects simulated
// per-step failures and defaults to zero, so the workflow is deterministic
// unless a caller opts in.
type Automator struct {
	store    store.Store
	validate *validator.Validate
	rng      *rand.Rand

	// FailureRate is the probability in [0, 1) that any single form step
	// fails. Zero disables simulated failures.
	FailureRate float64
}

// NewAutomator returns an automator recording outcomes to the given store.
func NewAutomator(st store.Store) *Automator {
	return &Automator{
		store:    st,
		validate: validator.New(),
		rng:      rand.New(rand.NewSource(rand.Int63())),
	}
}

// SetRand replaces the failure-simulation source, for tests.
func (a *Automator) SetRand(rng *rand.Rand) {
	a.rng = rng
}

// Validate checks that the record and job carry everything the form needs.
// Sentinel values count as missing. The returned slice is empty when the
// application may proceed.
func (a *Automator) Validate(job types.JobListing, record *types.ResumeRecord) []string {
	errs := []string{}

	if !record.HasName() {
		errs = append(errs, "Missing name")
	}
	if !record.HasEmail() {
		errs = append(errs, "Missing email")
	}
	if record.Phone == "" {
		errs = append(errs, "Missing phone")
	}
	if job.Title == "" {
		errs = append(errs, "Missing job title")
	}
	if job.Company == "" {
		errs = append(errs, "Missing company name")
	}
	if len(errs) > 0 {
		return errs
	}

	// Structural validation of the prepared payload (email shape, required
	// fields) via the struct tags.
	data := PrepareApplicationData(job, record)
	if err := a.validate.Struct(data); err != nil {
		if invalid, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range invalid {
				errs = append(errs, fmt.Sprintf("Invalid %s", fieldErr.Field()))
			}
		} else {
			errs = append(errs, err.Error())
		}
	}
	return errs
}

// Apply runs the full workflow and persists the resulting record. A failed
// validation or a simulated step failure yields a failed record, not an
// error; errors are reserved for persistence problems.
func (a *Automator) Apply(ctx context.Context, job types.JobListing, record *types.ResumeRecord) (types.ApplicationRecord, error) {
	result := types.ApplicationRecord{
		JobTitle:    job.Title,
		Company:     job.Company,
		Status:      types.StatusPending,
		AppliedDate: time.Now().Format(time.RFC3339),
	}

	if errs := a.Validate(job, record); len(errs) > 0 {
		result.Status = types.StatusFailed
		result.Errors = errs
		return result, nil
	}

	letter, err := coverletter.Generate(job, record)
	if err != nil {
		result.Status = types.StatusFailed
		result.Errors = []string{err.Error()}
		return result, nil
	}
	result.CoverLetter = letter

	steps, stepErrs := a.fillForm()
	result.StepsCompleted = steps
	if len(stepErrs) > 0 {
		result.Status = types.StatusFailed
		result.Errors = stepErrs
	} else {
		result.Status = types.StatusSubmitted
		result.Success = true
		result.ConfirmationID = uuid.NewString()
	}

	id, err := a.store.AddApplication(ctx, result)
	if err != nil {
		return result, fmt.Errorf("failed to record application: %w", err)
	}
	result.ID = id

	return result, nil
}

// fillForm walks the simulated steps. Each step can fail with probability
// FailureRate; the first failure aborts the walk.
func (a *Automator) fillForm() (completed, errs []string) {
	completed = []string{}
	for _, step := range formSteps {
		if a.FailureRate > 0 && a.rng.Float64() < a.FailureRate {
			return completed, []string{fmt.Sprintf("Error at step: %s", step)}
		}
		completed = append(completed, step)
	}
	completed = append(completed, "Application submitted successfully")
	return completed, nil
}

// History returns every recorded application.
func (a *Automator) History(ctx context.Context) ([]types.ApplicationRecord, error) {
	return a.store.Applications(ctx)
}

// Stats summarizes the recorded history.
func (a *Automator) Stats(ctx context.Context) (types.ApplicationStats, error) {
	return a.store.Stats(ctx)
}

// PrepareApplicationData builds the structured form payload from a parsed
// record and job listing. Sentinel name/email values are passed through; the
// payload is only built after validation has passed.
func PrepareApplicationData(job types.JobListing, record *types.ResumeRecord) types.ApplicationData {
	return types.ApplicationData{
		PersonalInfo: types.PersonalInfo{
			Name:     record.Name,
			Email:    record.Email,
			Phone:    record.Phone,
			LinkedIn: record.LinkedIn,
			Website:  record.Website,
		},
		Summary:    record.Summary,
		Experience: record.Experience,
		Education:  record.Education,
		Skills:     record.Skills,
		JobInfo: types.JobInfo{
			Title:    job.Title,
			Company:  job.Company,
			Location: job.Location,
			Type:     job.Type,
			Salary:   job.Salary,
			URL:      job.URL,
		},
	}
}
