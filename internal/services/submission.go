package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/nnsriram27/physpropprior-study/internal/models"
)

// fallbackSlug replaces a name whose slug collapses to nothing.
const fallbackSlug = "participant"

var slugPattern = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// buildSubmission derives the exportable payload from the working state:
// empty ledger slots are dropped, completedAt is stamped now. The same
// builder backs download, manual send, and autosave.
func buildSubmission(c *controller, now time.Time) *models.SubmissionPayload {
	responses := make([]*models.Response, 0, len(c.responses))
	for _, r := range c.responses {
		if r != nil {
			responses = append(responses, r)
		}
	}
	return &models.SubmissionPayload{
		QuestionSet:    c.questionSet,
		CompletedAt:    now,
		Participant:    models.Participant{Name: c.displayName},
		Responses:      responses,
		TotalQuestions: len(c.questions),
	}
}

func buildAutosave(c *controller, now time.Time) *models.AutosavePayload {
	payload := &models.AutosavePayload{
		SubmissionPayload: *buildSubmission(c, now),
		Autosave:          true,
		Status:            models.SubmissionInProgress,
	}
	for _, r := range payload.Responses {
		if r.Skipped {
			payload.SkippedCount++
		} else {
			payload.AnsweredCount++
		}
	}
	if c.allAnswered() {
		payload.Status = models.SubmissionCompleted
	}
	return payload
}

// DownloadFilename names the result file for a participant:
// responses_<slug>.json, with non-alphanumeric runs collapsed to single
// underscores.
func DownloadFilename(name string) string {
	return fmt.Sprintf("responses_%s.json", Slug(name))
}

// Slug reduces a participant name to a filesystem-safe token.
func Slug(name string) string {
	slug := slugPattern.ReplaceAllString(name, "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return fallbackSlug
	}
	return slug
}
