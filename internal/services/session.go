package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/nnsriram27/physpropprior-study/internal/dataset"
	"github.com/nnsriram27/physpropprior-study/internal/models"
	"github.com/nnsriram27/physpropprior-study/internal/packs"
	"github.com/nnsriram27/physpropprior-study/internal/remote"
	"github.com/nnsriram27/physpropprior-study/internal/store"
	"github.com/nnsriram27/physpropprior-study/internal/ws"
)

var (
	ErrNameRequired = errors.New("enter your name to begin")
	ErrNoSession    = errors.New("no active session for participant")
	ErrNoEndpoint   = errors.New("no response endpoint configured")
)

// SessionOptions tunes the session layer; zero values get defaults.
type SessionOptions struct {
	DefaultQuestionSet string
	ResponseEndpoint   string
	AutosaveDelay      time.Duration
	NavCooldown        time.Duration
	SyncTimeout        time.Duration
}

// SessionService owns the working copies of participant sessions. The
// durable store remains the source of truth across restarts; in-memory
// controllers are reconciled into it on every (debounced) mutation.
type SessionService struct {
	store    store.SessionStore
	loader   dataset.Loader
	manifest func() []string
	remote   *remote.Client
	hub      *ws.Hub
	autosave *autosaveScheduler
	opts     SessionOptions

	mu          sync.Mutex
	controllers map[string]*controller
	ctrlLocks   map[string]*sync.Mutex
}

func NewSessionService(st store.SessionStore, loader dataset.Loader, manifest func() []string, syncClient *remote.Client, hub *ws.Hub, opts SessionOptions) *SessionService {
	if opts.DefaultQuestionSet == "" {
		opts.DefaultQuestionSet = packs.DefaultQuestionSet
	}
	if opts.AutosaveDelay <= 0 {
		opts.AutosaveDelay = 800 * time.Millisecond
	}
	if opts.NavCooldown <= 0 {
		opts.NavCooldown = 250 * time.Millisecond
	}
	if opts.SyncTimeout <= 0 {
		opts.SyncTimeout = 30 * time.Second
	}
	return &SessionService{
		store:       st,
		loader:      loader,
		manifest:    manifest,
		remote:      syncClient,
		hub:         hub,
		autosave:    newAutosaveScheduler(opts.AutosaveDelay),
		opts:        opts,
		controllers: make(map[string]*controller),
		ctrlLocks:   make(map[string]*sync.Mutex),
	}
}

// StartParams mirrors the startup parameters of the survey page.
type StartParams struct {
	Name         string
	QuestionSet  string
	AssignmentID string
	WorkerID     string
	HitID        string
	TurkSubmitTo string
}

// Start resumes the session stored under the normalized name, or creates a
// fresh one. An explicit question set wins for new sessions; otherwise pack
// assignment picks one from the manifest.
func (s *SessionService) Start(ctx context.Context, params StartParams) (*SessionState, error) {
	display := strings.TrimSpace(params.Name)
	key := models.NormalizeName(params.Name)
	if key == "" {
		return nil, ErrNameRequired
	}

	mode := ModeLocal
	if params.AssignmentID != "" {
		mode = ModeMTurk
	}
	assignment := Assignment{
		AssignmentID: params.AssignmentID,
		WorkerID:     params.WorkerID,
		HitID:        params.HitID,
		TurkSubmitTo: params.TurkSubmitTo,
	}

	lock := s.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now()
	if ctrl := s.controller(key); ctrl != nil {
		ctrl.lastSeen = now
		if params.AssignmentID != "" {
			ctrl.mode = mode
			ctrl.assignment = assignment
		}
		if ctrl.loadErr != nil {
			// A failed load is only retried on an explicit re-entry.
			token := ctrl.beginLoad(ctrl.questionSet)
			questions, loadErr := s.loader.Load(ctx, ctrl.questionSet)
			ctrl.applyQuestions(token, questions, loadErr)
		}
		return ctrl.state(), nil
	}

	ctrl := &controller{
		displayName: display,
		normalized:  key,
		mode:        mode,
		assignment:  assignment,
		lastSeen:    now,
	}

	record, found, err := s.store.Get(key)
	if err != nil {
		// Degrade to a fresh in-memory session; resume is lost but the
		// participant can still work and download.
		log.Printf("sessions: store lookup for %q failed: %v", key, err)
		found = false
	}

	questionSet := params.QuestionSet
	if found {
		questionSet = record.QuestionSet
		if record.Participant.Name != "" {
			ctrl.displayName = record.Participant.Name
		}
		ctrl.responses = record.Responses
	} else if questionSet == "" {
		questionSet = packs.PickPackForName(key, s.manifest(), s.opts.DefaultQuestionSet)
	}

	token := ctrl.beginLoad(questionSet)
	questions, loadErr := s.loader.Load(ctx, questionSet)
	if ctrl.applyQuestions(token, questions, loadErr) && loadErr == nil {
		if found {
			ctrl.index = ctrl.resumeIndex(record.Index)
		} else {
			ctrl.index = 0
		}
	}
	if loadErr != nil {
		log.Printf("sessions: load question set %q: %v", questionSet, loadErr)
	}

	s.putController(key, ctrl)
	if !found && loadErr == nil {
		s.scheduleAutosave(key)
	}
	return ctrl.state(), nil
}

// State reports the current session state without mutating it.
func (s *SessionService) State(name string) (*SessionState, error) {
	ctrl, lock, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	lock.Lock()
	defer lock.Unlock()
	ctrl.lastSeen = time.Now()
	return ctrl.state(), nil
}

// Answer records (or overwrites) the choice for the current question.
func (s *SessionService) Answer(name, choice string) (*SessionState, error) {
	return s.mutate(name, func(ctrl *controller, now time.Time) error {
		return ctrl.answer(choice, false, now)
	})
}

// Skip marks the current question as explicitly skipped.
func (s *SessionService) Skip(name string) (*SessionState, error) {
	return s.mutate(name, func(ctrl *controller, now time.Time) error {
		return ctrl.answer("", true, now)
	})
}

// Next advances to the following question; gated on an answered current
// slot, and silently dropped inside the navigation cooldown.
func (s *SessionService) Next(name string) (*SessionState, error) {
	return s.mutate(name, func(ctrl *controller, now time.Time) error {
		return ctrl.next(s.opts.NavCooldown, now)
	})
}

// Back returns to the previous question; never requires an answer.
func (s *SessionService) Back(name string) (*SessionState, error) {
	return s.mutate(name, func(ctrl *controller, now time.Time) error {
		return ctrl.back(s.opts.NavCooldown, now)
	})
}

// Download builds the result bundle and its filename.
func (s *SessionService) Download(name string) (*models.SubmissionPayload, string, error) {
	ctrl, lock, err := s.lookup(name)
	if err != nil {
		return nil, "", err
	}
	lock.Lock()
	defer lock.Unlock()
	payload := buildSubmission(ctrl, time.Now())
	return payload, DownloadFilename(ctrl.displayName), nil
}

// Send delivers the current submission payload to the response endpoint and
// surfaces the failure, unlike autosave which only logs it.
func (s *SessionService) Send(ctx context.Context, name string) error {
	ctrl, lock, err := s.lookup(name)
	if err != nil {
		return err
	}
	if s.opts.ResponseEndpoint == "" {
		return ErrNoEndpoint
	}

	lock.Lock()
	payload := buildSubmission(ctrl, time.Now())
	key := ctrl.normalized
	lock.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.opts.SyncTimeout)
	defer cancel()
	return s.remote.Post(ctx, key, s.opts.ResponseEndpoint, payload)
}

// Flush persists any pending autosave for name right away.
func (s *SessionService) Flush(name string) {
	s.autosave.Flush(models.NormalizeName(name))
}

// EvictIdle persists and drops controllers idle past ttl. Their durable
// records stay; the next Start rebuilds from the store.
func (s *SessionService) EvictIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	var idle []string
	for key, ctrl := range s.controllers {
		if ctrl.lastSeen.Before(cutoff) {
			idle = append(idle, key)
		}
	}
	s.mu.Unlock()

	for _, key := range idle {
		s.autosave.Cancel(key)
		s.persist(key)
		s.mu.Lock()
		delete(s.controllers, key)
		s.mu.Unlock()
	}
	return len(idle)
}

// Shutdown flushes every live controller to the store.
func (s *SessionService) Shutdown() {
	s.mu.Lock()
	keys := make([]string, 0, len(s.controllers))
	for key := range s.controllers {
		keys = append(keys, key)
	}
	s.mu.Unlock()

	for _, key := range keys {
		s.autosave.Cancel(key)
		s.persist(key)
	}
}

func (s *SessionService) mutate(name string, fn func(*controller, time.Time) error) (*SessionState, error) {
	ctrl, lock, err := s.lookup(name)
	if err != nil {
		return nil, err
	}

	lock.Lock()
	now := time.Now()
	ctrl.lastSeen = now
	mErr := fn(ctrl, now)
	st := ctrl.state()
	lock.Unlock()

	if mErr != nil {
		return nil, mErr
	}
	s.scheduleAutosave(ctrl.normalized)
	return st, nil
}

func (s *SessionService) scheduleAutosave(key string) {
	s.autosave.Schedule(key, func() { s.persist(key) })
}

// persist writes the durable record, notifies the progress feed, and kicks
// off the best-effort remote sync.
func (s *SessionService) persist(key string) {
	ctrl := s.controller(key)
	if ctrl == nil {
		return
	}

	lock := s.lockFor(key)
	lock.Lock()
	now := time.Now()
	rec := ctrl.record(now)
	payload := buildAutosave(ctrl, now)
	lock.Unlock()

	if err := s.store.Put(key, rec); err != nil {
		log.Printf("sessions: persist %q failed, progress kept in memory: %v", key, err)
	}

	if s.hub != nil {
		s.hub.Broadcast(ws.Event{
			Type: "session_progress",
			Data: progressEvent{
				Participant:    rec.Participant.Name,
				QuestionSet:    rec.QuestionSet,
				Index:          rec.Index,
				AnsweredCount:  rec.AnsweredCount(),
				TotalQuestions: payload.TotalQuestions,
				Status:         payload.Status,
			},
		})
	}

	if s.opts.ResponseEndpoint != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), s.opts.SyncTimeout)
			defer cancel()
			if err := s.remote.Post(ctx, key, s.opts.ResponseEndpoint, payload); err != nil {
				// Local storage is the source of truth; sync is best-effort.
				log.Printf("sessions: autosave sync for %q failed: %v", key, err)
			}
		}()
	}
}

type progressEvent struct {
	Participant    string `json:"participant"`
	QuestionSet    string `json:"question_set"`
	Index          int    `json:"index"`
	AnsweredCount  int    `json:"answered_count"`
	TotalQuestions int    `json:"total_questions"`
	Status         string `json:"status"`
}

func (s *SessionService) lookup(name string) (*controller, *sync.Mutex, error) {
	key := models.NormalizeName(name)
	if key == "" {
		return nil, nil, ErrNameRequired
	}
	ctrl := s.controller(key)
	if ctrl == nil {
		return nil, nil, ErrNoSession
	}
	return ctrl, s.lockFor(key), nil
}

func (s *SessionService) controller(key string) *controller {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controllers[key]
}

func (s *SessionService) putController(key string, ctrl *controller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controllers[key] = ctrl
}

// lockFor returns the per-participant lock; one lock per key serializes all
// transitions for that participant.
func (s *SessionService) lockFor(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if lock, ok := s.ctrlLocks[key]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	s.ctrlLocks[key] = lock
	return lock
}
