package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nnsriram27/physpropprior-study/internal/models"
	"github.com/nnsriram27/physpropprior-study/internal/packs"
	"github.com/nnsriram27/physpropprior-study/internal/store"
)

// ourMethod marks the study's own method in option metadata; a choice is a
// "success" for the plausibility datasets when this option was picked.
const ourMethod = "physpropprior"

// ResultsService stores collected submissions and aggregates them into the
// table-ready metrics the study reports.
type ResultsService struct {
	db       *gorm.DB
	sessions store.SessionStore
	fields   []packs.FieldDef
}

func NewResultsService(db *gorm.DB, sessions store.SessionStore, fields []packs.FieldDef) *ResultsService {
	return &ResultsService{db: db, sessions: sessions, fields: fields}
}

// Record stores a payload received on the collector endpoint. Autosave
// snapshots overwrite the previous snapshot for the same participant and
// question set; final submissions always insert a new row.
func (s *ResultsService) Record(payload *models.AutosavePayload, raw []byte) (*models.StoredSubmission, error) {
	name := models.NormalizeName(payload.Participant.Name)
	if name == "" {
		return nil, errors.New("payload has no participant name")
	}

	status := payload.Status
	if status == "" {
		status = models.SubmissionInProgress
		if payload.TotalQuestions > 0 && len(payload.Responses) == payload.TotalQuestions {
			status = models.SubmissionCompleted
		}
	}

	answered := payload.AnsweredCount
	if answered == 0 {
		answered = len(payload.Responses)
	}

	sub := models.StoredSubmission{
		ID:              uuid.NewString(),
		ParticipantName: name,
		QuestionSet:     payload.QuestionSet,
		Status:          status,
		Autosave:        payload.Autosave,
		AnsweredCount:   answered,
		TotalQuestions:  payload.TotalQuestions,
		Payload:         raw,
		ReceivedAt:      time.Now(),
	}

	if payload.Autosave {
		var existing models.StoredSubmission
		err := s.db.Where("participant_name = ? AND question_set = ? AND autosave = ?",
			name, payload.QuestionSet, true).First(&existing).Error
		if err == nil {
			sub.ID = existing.ID
			sub.ReceivedAt = existing.ReceivedAt
			return &sub, s.db.Save(&sub).Error
		}
	}

	return &sub, s.db.Create(&sub).Error
}

// ListSubmissions returns stored submissions, newest first.
func (s *ResultsService) ListSubmissions(includeAutosaves bool) ([]models.StoredSubmission, error) {
	q := s.db.Order("received_at DESC")
	if !includeAutosaves {
		q = q.Where("autosave = ?", false)
	}
	var subs []models.StoredSubmission
	if err := q.Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// SessionOverview summarizes one durable session record for the organizer.
type SessionOverview struct {
	Key            string    `json:"key"`
	Participant    string    `json:"participant"`
	QuestionSet    string    `json:"question_set"`
	Index          int       `json:"index"`
	AnsweredCount  int       `json:"answered_count"`
	TotalQuestions int       `json:"total_questions"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Sessions lists every session record in the durable store.
func (s *ResultsService) Sessions() ([]SessionOverview, error) {
	records, err := s.sessions.All()
	if err != nil {
		return nil, err
	}

	overview := make([]SessionOverview, 0, len(records))
	for key, rec := range records {
		overview = append(overview, SessionOverview{
			Key:            key,
			Participant:    rec.Participant.Name,
			QuestionSet:    rec.QuestionSet,
			Index:          rec.Index,
			AnsweredCount:  rec.AnsweredCount(),
			TotalQuestions: len(rec.Responses),
			UpdatedAt:      rec.UpdatedAt,
		})
	}
	return overview, nil
}

// FieldStat is the per-field success tally.
type FieldStat struct {
	Label     string   `json:"label"`
	Axis      string   `json:"axis"`
	Method    string   `json:"method"`
	Attribute string   `json:"attribute"`
	Dataset   string   `json:"dataset"`
	Success   int      `json:"success"`
	Total     int      `json:"total"`
	Pct       *float64 `json:"pct"`
}

type CellStat struct {
	Success int      `json:"success"`
	Total   int      `json:"total"`
	Pct     *float64 `json:"pct"`
}

// Summary is the aggregated study result: per-field stats plus the
// axis -> method -> attribute table.
type Summary struct {
	Submissions int                                      `json:"submissions"`
	Fields      map[string]*FieldStat                    `json:"fields"`
	Table       map[string]map[string]map[string]*CellStat `json:"table"`
}

// Summarize aggregates the completed submissions into table metrics. Field
// definitions come from the pack-sampling config; without them only the
// submission count is reported.
func (s *ResultsService) Summarize() (*Summary, error) {
	subs, err := s.ListSubmissions(false)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Submissions: len(subs),
		Fields:      make(map[string]*FieldStat),
		Table:       make(map[string]map[string]map[string]*CellStat),
	}
	fieldsByID := make(map[string]packs.FieldDef, len(s.fields))
	for _, f := range s.fields {
		fieldsByID[f.ID] = f
		summary.Fields[f.ID] = &FieldStat{
			Label:     f.Label,
			Axis:      f.Axis,
			Method:    f.Method,
			Attribute: f.Attribute,
			Dataset:   f.Dataset,
		}
	}

	for _, sub := range subs {
		var payload models.SubmissionPayload
		if err := json.Unmarshal(sub.Payload, &payload); err != nil {
			continue
		}
		for _, resp := range payload.Responses {
			fieldID := resp.FieldID
			if fieldID == "" {
				if v, ok := resp.Meta["fieldId"].(string); ok {
					fieldID = v
				}
			}
			field, ok := fieldsByID[fieldID]
			if !ok {
				continue
			}
			ds := resp.Dataset
			if ds == "" {
				ds = field.Dataset
			}
			success := evaluateResponse(resp, ds)

			stat := summary.Fields[fieldID]
			stat.Total++
			if success {
				stat.Success++
			}

			cell := summary.cell(field.Axis, field.Method, field.Attribute)
			cell.Total++
			if success {
				cell.Success++
			}
		}
	}

	for _, stat := range summary.Fields {
		stat.Pct = pct(stat.Success, stat.Total)
	}
	for _, methods := range summary.Table {
		for _, attrs := range methods {
			for _, cell := range attrs {
				cell.Pct = pct(cell.Success, cell.Total)
			}
		}
	}
	return summary, nil
}

func (s *Summary) cell(axis, method, attribute string) *CellStat {
	if s.Table[axis] == nil {
		s.Table[axis] = make(map[string]map[string]*CellStat)
	}
	if s.Table[axis][method] == nil {
		s.Table[axis][method] = make(map[string]*CellStat)
	}
	if s.Table[axis][method][attribute] == nil {
		s.Table[axis][method][attribute] = &CellStat{}
	}
	return s.Table[axis][method][attribute]
}

// evaluateResponse decides whether a choice counts as a success for its
// dataset: control fidelity wants the clip at the target level, force
// direction wants the target-role clip, and the plausibility comparisons
// want our method picked.
func evaluateResponse(resp *models.Response, ds string) bool {
	choice := resp.ChoiceValue()
	if choice == "" {
		return false
	}

	switch ds {
	case "control_fidelity":
		selected := resp.VideoA
		if choice == models.ChoiceB {
			selected = resp.VideoB
		}
		if selected == nil || resp.TargetLevel == "" {
			return false
		}
		return strings.EqualFold(selected.Level, resp.TargetLevel)

	case "force_direction":
		selected := resp.VideoA
		if choice == models.ChoiceB {
			selected = resp.VideoB
		}
		return selected != nil && selected.Role == "target"

	case "physical_plausibility", "force_baseline":
		option := resp.OptionA
		if choice == models.ChoiceB {
			option = resp.OptionB
		}
		return option != nil && option.Method == ourMethod
	}

	return false
}

func pct(success, total int) *float64 {
	if total == 0 {
		return nil
	}
	v := 100 * float64(success) / float64(total)
	return &v
}

// ExportFilename names an aggregate download for the organizer.
func ExportFilename(prefix string) string {
	return fmt.Sprintf("%s_%s.json", prefix, time.Now().Format("20060102_150405"))
}
