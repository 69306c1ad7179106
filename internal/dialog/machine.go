// Package dialog implements the slot-filling state machine that collects
// a transaction draft across conversational turns. Transitions are pure:
// (State, utterance) -> (State, Result), so the machine can sit behind an
// HTTP handler, a CLI loop or any other binding without changes.
package dialog

import (
	"strings"
	"time"

	"github.com/FACorreiaa/finchat/internal/model"
	"github.com/FACorreiaa/finchat/internal/nlp"
)

// Step is the slot currently being collected.
type Step int

const (
	StepNone Step = iota
	StepNeedType
	StepNeedAmount
	StepNeedCategory
	StepNeedNote
)

func (s Step) String() string {
	switch s {
	case StepNeedType:
		return "need_type"
	case StepNeedAmount:
		return "need_amount"
	case StepNeedCategory:
		return "need_category"
	case StepNeedNote:
		return "need_note"
	default:
		return "none"
	}
}

// Partial accumulates slot values while the flow is in progress.
type Partial struct {
	Type      model.TxType
	HasType   bool
	Amount    int64
	HasAmount bool
	Category  string
	// NoteHint is a weak prior derived at the amount step by stripping the
	// matched amount substring; an explicit note later overrides it.
	NoteHint string
	// Original is the utterance that supplied the amount, kept for edit
	// round-trips on the finished draft.
	Original string
}

// State is the dialog position of one chat session. The zero value is the
// idle state.
type State struct {
	Step    Step
	Partial Partial
}

// Result is the machine's answer for a single turn. Draft is non-nil only
// on the terminal transition; Reprompt marks turns where the step did not
// advance.
type Result struct {
	Prompt   string
	Reprompt bool
	Draft    *model.DraftTransaction
}

// Prompt texts. Every re-prompt is a terminal response for its turn; the
// user may loop on a step indefinitely.
const (
	askType        = "Bạn muốn ghi chi tiêu hay thu nhập?"
	repromptType   = "Mình chưa rõ loại giao dịch. Nhập \"chi tiêu\" hoặc \"thu nhập\" nhé."
	askAmount      = "Số tiền là bao nhiêu? (ví dụ: 50k, 1.5tr)"
	repromptAmount = "Mình chưa nhận ra số tiền. Bạn nhập lại giúp mình nhé (ví dụ: 120k)."
	askCategory    = "Giao dịch này thuộc danh mục nào?"
	repromptCat    = "Tên danh mục không được để trống. Bạn nhập lại nhé."
	askNote        = "Bạn muốn ghi chú gì thêm không? (gửi tin trống để bỏ qua)"
)

// Begin starts a slot-filling flow. When the triggering intent already
// fixed the transaction type, the flow opens directly at the amount step.
func Begin(tp *model.TxType) (State, Result) {
	if tp != nil {
		return State{
			Step:    StepNeedAmount,
			Partial: Partial{Type: *tp, HasType: true},
		}, Result{Prompt: askAmount}
	}
	return State{Step: StepNeedType}, Result{Prompt: askType}
}

// Reset returns the idle state, discarding any partial accumulator.
func Reset() State {
	return State{}
}

// Advance consumes one utterance. The hint carries the classifier's
// add_income/add_expense reading of the same turn and is only consulted
// at the type step when marker inference fails.
func Advance(st State, utterance string, hint *model.TxType) (State, Result) {
	switch st.Step {
	case StepNeedType:
		return advanceType(st, utterance, hint)
	case StepNeedAmount:
		return advanceAmount(st, utterance)
	case StepNeedCategory:
		return advanceCategory(st, utterance)
	case StepNeedNote:
		return advanceNote(st, utterance)
	default:
		// Idle machines have no step to advance; open a fresh flow.
		return Begin(nil)
	}
}

func advanceType(st State, utterance string, hint *model.TxType) (State, Result) {
	tp, ok := nlp.InferType(utterance)
	if !ok && hint != nil {
		tp, ok = *hint, true
	}
	if !ok {
		return st, Result{Prompt: repromptType, Reprompt: true}
	}
	st.Partial.Type = tp
	st.Partial.HasType = true
	st.Step = StepNeedAmount
	return st, Result{Prompt: askAmount}
}

func advanceAmount(st State, utterance string) (State, Result) {
	m, ok := nlp.FindAmount(utterance)
	if !ok || m.Value <= 0 {
		return st, Result{Prompt: repromptAmount, Reprompt: true}
	}
	st.Partial.Amount = m.Value
	st.Partial.HasAmount = true
	st.Partial.NoteHint = strings.TrimSpace(utterance[:m.Start] + utterance[m.End:])
	st.Partial.Original = strings.TrimSpace(utterance)
	st.Step = StepNeedCategory
	return st, Result{Prompt: askCategory}
}

func advanceCategory(st State, utterance string) (State, Result) {
	name := strings.TrimSpace(utterance)
	if name == "" {
		return st, Result{Prompt: repromptCat, Reprompt: true}
	}
	st.Partial.Category = name
	st.Step = StepNeedNote
	return st, Result{Prompt: askNote}
}

func advanceNote(st State, utterance string) (State, Result) {
	note := strings.TrimSpace(utterance)
	if note == "" {
		note = st.Partial.NoteHint
	}
	if note == "" {
		note = model.DefaultNote
	}

	draft := &model.DraftTransaction{
		Type:         st.Partial.Type,
		Amount:       st.Partial.Amount,
		Note:         note,
		Date:         time.Now(),
		CategoryName: st.Partial.Category,
		OriginalText: st.Partial.Original,
	}
	return Reset(), Result{Draft: draft}
}
