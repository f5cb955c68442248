package packs

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// FieldDef is one table cell (method x attribute x axis) from
// config/table_fields.json. Every participant answers the same number of
// questions per field so coverage stays balanced across the table.
type FieldDef struct {
	ID        string         `json:"id"`
	Label     string         `json:"label"`
	Axis      string         `json:"axis"`
	Method    string         `json:"method"`
	Attribute string         `json:"attribute"`
	Dataset   string         `json:"dataset"`
	Filters   map[string]any `json:"filters,omitempty"`
	Questions int            `json:"questions,omitempty"`
}

// LoadFields reads a field-definition file.
func LoadFields(path string) ([]FieldDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fields config: %w", err)
	}
	var fields []FieldDef
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parse fields config: %w", err)
	}
	return fields, nil
}

// Sampler draws per-participant question packs from the question banks. It
// operates on raw JSON question objects so bank fields it does not know
// about survive the copy into the pack.
type Sampler struct {
	DataRoot          string
	OutputDir         string
	QuestionsPerField int // 0 means use each field's own count
	rng               *rand.Rand
	cache             map[string][]map[string]any
}

func NewSampler(dataRoot, outputDir string, questionsPerField int, seed int64) *Sampler {
	return &Sampler{
		DataRoot:          dataRoot,
		OutputDir:         outputDir,
		QuestionsPerField: questionsPerField,
		rng:               rand.New(rand.NewSource(seed)),
		cache:             make(map[string][]map[string]any),
	}
}

// AutoParticipants generates prefix_01..prefix_NN ids, zero-padded to at
// least two digits.
func AutoParticipants(prefix string, count int) []string {
	width := len(fmt.Sprintf("%d", count))
	if width < 2 {
		width = 2
	}
	ids := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		ids = append(ids, fmt.Sprintf("%s_%0*d", prefix, width, i))
	}
	return ids
}

// Generate writes one pack per participant plus the manifest. Returns the
// per-participant question count.
func (s *Sampler) Generate(fields []FieldDef, participants []string) (int, error) {
	if len(fields) == 0 {
		return 0, fmt.Errorf("no fields defined")
	}
	if len(participants) == 0 {
		return 0, fmt.Errorf("no participants given")
	}

	pools, err := s.buildPools(fields)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(s.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	packNames := make([]string, 0, len(participants))
	total := 0
	for _, pid := range participants {
		pack, err := s.assemblePack(fields, pools)
		if err != nil {
			return 0, err
		}
		total = len(pack)
		if err := writeJSON(filepath.Join(s.OutputDir, pid+".json"), pack); err != nil {
			return 0, err
		}
		packNames = append(packNames, "packs/"+pid)
	}

	manifest := map[string]any{"packs": packNames}
	if err := writeJSON(filepath.Join(s.OutputDir, "manifest.json"), manifest); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Sampler) buildPools(fields []FieldDef) (map[string][]map[string]any, error) {
	pools := make(map[string][]map[string]any, len(fields))
	for _, field := range fields {
		bank, err := s.loadBank(field.Dataset)
		if err != nil {
			return nil, err
		}
		var candidates []map[string]any
		for _, q := range bank {
			if matchesFilters(q, field.Filters) {
				candidates = append(candidates, q)
			}
		}
		want := s.sampleSize(field)
		if len(candidates) < want {
			return nil, fmt.Errorf("not enough questions for field %q (wanted %d, found %d)",
				field.ID, want, len(candidates))
		}
		pools[field.ID] = candidates
	}
	return pools, nil
}

func (s *Sampler) assemblePack(fields []FieldDef, pools map[string][]map[string]any) ([]map[string]any, error) {
	var pack []map[string]any
	for _, field := range fields {
		candidates := pools[field.ID]
		for _, idx := range s.rng.Perm(len(candidates))[:s.sampleSize(field)] {
			q, err := copyQuestion(candidates[idx], field)
			if err != nil {
				return nil, err
			}
			pack = append(pack, q)
		}
	}
	s.rng.Shuffle(len(pack), func(i, j int) {
		pack[i], pack[j] = pack[j], pack[i]
	})
	return pack, nil
}

func (s *Sampler) sampleSize(field FieldDef) int {
	if s.QuestionsPerField > 0 {
		return s.QuestionsPerField
	}
	if field.Questions > 0 {
		return field.Questions
	}
	return 2
}

func (s *Sampler) loadBank(dataset string) ([]map[string]any, error) {
	if bank, ok := s.cache[dataset]; ok {
		return bank, nil
	}
	path := filepath.Join(s.DataRoot, dataset+"_questions.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset %q missing at %s", dataset, path)
	}
	var bank []map[string]any
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("parse dataset %q: %w", dataset, err)
	}
	s.cache[dataset] = bank
	return bank, nil
}

// matchesFilters checks a question against a field's filters. Dotted keys
// walk nested objects; a plain key misses on the question fall back to the
// question's meta block. List-valued filters match any element.
func matchesFilters(question map[string]any, filters map[string]any) bool {
	for key, expected := range filters {
		var actual any
		if strings.Contains(key, ".") {
			actual = getNested(question, key)
		} else {
			actual = question[key]
		}
		if actual == nil {
			if meta, ok := question["meta"].(map[string]any); ok {
				actual = meta[key]
			}
		}
		if list, ok := expected.([]any); ok {
			found := false
			for _, want := range list {
				if actual == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
			continue
		}
		if actual != expected {
			return false
		}
	}
	return true
}

func getNested(data map[string]any, dottedKey string) any {
	var value any = data
	for _, part := range strings.Split(dottedKey, ".") {
		m, ok := value.(map[string]any)
		if !ok {
			return nil
		}
		value, ok = m[part]
		if !ok {
			return nil
		}
	}
	return value
}

// copyQuestion deep-copies a question and tags it with its field.
func copyQuestion(question map[string]any, field FieldDef) (map[string]any, error) {
	raw, err := json.Marshal(question)
	if err != nil {
		return nil, fmt.Errorf("copy question: %w", err)
	}
	var cp map[string]any
	if err := json.Unmarshal(raw, &cp); err != nil {
		return nil, fmt.Errorf("copy question: %w", err)
	}

	cp["field"] = map[string]any{
		"id":        field.ID,
		"label":     field.Label,
		"axis":      field.Axis,
		"method":    field.Method,
		"attribute": field.Attribute,
	}
	cp["fieldId"] = field.ID
	cp["fieldLabel"] = field.Label
	cp["dataset"] = field.Dataset

	meta, _ := cp["meta"].(map[string]any)
	if meta == nil {
		meta = make(map[string]any)
	}
	if _, ok := meta["fieldId"]; !ok {
		meta["fieldId"] = field.ID
	}
	cp["meta"] = meta
	return cp, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
