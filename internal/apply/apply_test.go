package apply

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GillzV/jobassist/internal/store"
	"github.com/GillzV/jobassist/internal/types"
)

func testRecord() *types.ResumeRecord {
	r := types.NewResumeRecord()
	r.Name = "John Smith"
	r.Email = "john.smith@example.com"
	r.Phone = "(555) 123-4567"
	r.Skills = []string{"Python", "Go"}
	r.Experience = []types.ExperienceEntry{{Title: "Engineer", Company: "Acme"}}
	r.Education = []types.EducationEntry{{Degree: "BS", Institution: "State University"}}
	return r
}

func testJob() types.JobListing {
	return types.JobListing{Title: "Software Engineer", Company: "Globex", Location: "Remote"}
}

func newTestAutomator(t *testing.T) *Automator {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewAutomator(st)
}

func TestValidateComplete(t *testing.T) {
	a := newTestAutomator(t)
	assert.Empty(t, a.Validate(testJob(), testRecord()))
}

func TestValidateSentinelsRejected(t *testing.T) {
	a := newTestAutomator(t)

	record := types.NewResumeRecord()
	record.Name = types.NameNotFound
	record.Email = types.EmailNotFound

	errs := a.Validate(testJob(), record)

	assert.Contains(t, errs, "Missing name")
	assert.Contains(t, errs, "Missing email")
	assert.Contains(t, errs, "Missing phone")
}

func TestValidateJobFields(t *testing.T) {
	a := newTestAutomator(t)

	errs := a.Validate(types.JobListing{}, testRecord())

	assert.Contains(t, errs, "Missing job title")
	assert.Contains(t, errs, "Missing company name")
}

func TestValidateBadEmailShape(t *testing.T) {
	a := newTestAutomator(t)

	record := testRecord()
	record.Email = "not-an-email"

	errs := a.Validate(testJob(), record)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Email")
}

func TestApplySuccess(t *testing.T) {
	a := newTestAutomator(t)

	result, err := a.Apply(context.Background(), testJob(), testRecord())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, types.StatusSubmitted, result.Status)
	assert.Equal(t, "Software Engineer", result.JobTitle)
	assert.Equal(t, "Globex", result.Company)
	assert.NotEmpty(t, result.ID)
	assert.NotEmpty(t, result.ConfirmationID)
	assert.NotEmpty(t, result.CoverLetter)
	assert.Empty(t, result.Errors)

	// All steps plus the final confirmation line.
	require.Len(t, result.StepsCompleted, len(formSteps)+1)
	assert.Equal(t, "Application submitted successfully", result.StepsCompleted[len(result.StepsCompleted)-1])
}

func TestApplyRecordsHistory(t *testing.T) {
	a := newTestAutomator(t)
	ctx := context.Background()

	_, err := a.Apply(ctx, testJob(), testRecord())
	require.NoError(t, err)

	history, err := a.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Globex", history[0].Company)

	stats, err := a.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalApplications)
	assert.Equal(t, 1, stats.SuccessfulApplications)
}

func TestApplyValidationFailureIsNotRecorded(t *testing.T) {
	a := newTestAutomator(t)
	ctx := context.Background()

	record := types.NewResumeRecord()
	result, err := a.Apply(ctx, testJob(), record)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, types.StatusFailed, result.Status)
	assert.NotEmpty(t, result.Errors)

	history, err := a.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestApplySimulatedStepFailure(t *testing.T) {
	a := newTestAutomator(t)
	a.FailureRate = 1.0
	a.SetRand(rand.New(rand.NewSource(1)))

	result, err := a.Apply(context.Background(), testJob(), testRecord())
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, types.StatusFailed, result.Status)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Error at step: Loading application page")
	assert.Empty(t, result.StepsCompleted)
	assert.Empty(t, result.ConfirmationID)
}

func TestPrepareApplicationData(t *testing.T) {
	data := PrepareApplicationData(testJob(), testRecord())

	assert.Equal(t, "John Smith", data.PersonalInfo.Name)
	assert.Equal(t, "john.smith@example.com", data.PersonalInfo.Email)
	assert.Equal(t, "Software Engineer", data.JobInfo.Title)
	assert.Equal(t, "Globex", data.JobInfo.Company)
	assert.Equal(t, []string{"Python", "Go"}, data.Skills)
}
