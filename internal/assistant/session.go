package assistant

import (
	"sync"

	"github.com/google/uuid"

	"github.com/FACorreiaa/finchat/internal/dialog"
	"github.com/FACorreiaa/finchat/internal/model"
)

// Session is the only mutable per-conversation resource: the dialog state
// plus at most one draft pending confirmation. A session is owned by
// exactly one conversation; the mutex rejects re-entrant turns against a
// state that is mid-transition rather than queueing them.
type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	dialog  dialog.State
	pending *pendingDraft
}

// pendingDraft holds exactly one of the three confirmable payloads.
type pendingDraft struct {
	tx   *model.DraftTransaction
	cat  *model.DraftCategory
	tmpl *Template
}

// NewSession creates an idle session.
func NewSession() *Session {
	return &Session{ID: uuid.New()}
}

// reset clears dialog state and any pending draft. Callers hold s.mu.
func (s *Session) reset() {
	s.dialog = dialog.Reset()
	s.pending = nil
}

// Step exposes the current dialog step for bindings that want to disable
// input mid-flow. Safe for concurrent use.
func (s *Session) Step() dialog.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialog.Step
}
