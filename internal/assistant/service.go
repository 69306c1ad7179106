package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/FACorreiaa/finchat/internal/dialog"
	"github.com/FACorreiaa/finchat/internal/intent"
	"github.com/FACorreiaa/finchat/internal/model"
	"github.com/FACorreiaa/finchat/internal/nlp"
	"github.com/FACorreiaa/finchat/pkg/metrics"
)

// ErrBusy is returned for re-entrant calls against a session whose turn is
// still being processed. The UI serializes input, but the core enforces
// exclusivity as a correctness safeguard.
var ErrBusy = errors.New("session is already processing a message")

// TransactionCreator is the boundary contract of the external transaction
// service. A non-nil error carries a human-readable message that is
// surfaced to the user verbatim.
type TransactionCreator interface {
	CreateTransaction(ctx context.Context, draft model.DraftTransaction) error
}

// CategoryCreator is the boundary contract of the external category
// service.
type CategoryCreator interface {
	CreateCategory(ctx context.Context, draft model.DraftCategory) error
}

// BudgetSetter applies a percentage budget split via the external budget
// service.
type BudgetSetter interface {
	SetBudgetSplit(ctx context.Context, split BudgetSplit) error
}

// Service handles one utterance per call and owns no conversation state
// itself; all per-conversation state lives in the Session.
type Service struct {
	classifier   *intent.Classifier
	transactions TransactionCreator
	categories   CategoryCreator
	budgets      BudgetSetter
	logger       *slog.Logger
}

// NewService wires the assistant. The creator dependencies may be nil in
// bindings that only want parsing (the confirmation step then reports the
// capability as unavailable).
func NewService(classifier *intent.Classifier, tx TransactionCreator, cat CategoryCreator, budgets BudgetSetter, logger *slog.Logger) *Service {
	return &Service{
		classifier:   classifier,
		transactions: tx,
		categories:   cat,
		budgets:      budgets,
		logger:       logger,
	}
}

// HandleMessage processes one user utterance for a session and returns
// the response payload for that turn. Re-entrant calls against the same
// session fail with ErrBusy instead of corrupting mid-transition state.
func (s *Service) HandleMessage(ctx context.Context, sess *Session, text string) (Response, error) {
	if !sess.mu.TryLock() {
		return Response{}, ErrBusy
	}
	defer sess.mu.Unlock()

	resp := s.handleLocked(ctx, sess, text)
	metrics.ObserveTurn(string(resp.Kind))
	return resp, nil
}

func (s *Service) handleLocked(ctx context.Context, sess *Session, text string) Response {
	trimmed := strings.TrimSpace(text)
	normalized := nlp.Normalize(trimmed)

	// Cancellation wins over every other reading while a flow or a
	// confirmation is open.
	if (sess.pending != nil || sess.dialog.Step != dialog.StepNone) && inPhraseSet(normalized, cancelPhrases) {
		sess.reset()
		return Response{Kind: KindReply, Text: cancelledText, Chips: rootChips}
	}

	if sess.pending != nil {
		return s.resolvePending(ctx, sess, normalized)
	}

	if sess.dialog.Step != dialog.StepNone {
		return s.advanceDialog(sess, trimmed)
	}

	if trimmed == "" {
		return Response{Kind: KindReply, Text: fallbackText, Chips: rootChips}
	}

	if tmpl := matchTemplate(normalized); tmpl != nil {
		sess.pending = &pendingDraft{tmpl: tmpl}
		return Response{
			Kind:     KindDraft,
			Text:     templateSummary(tmpl) + " " + confirmQuestion,
			Chips:    confirmChips,
			Template: tmpl,
		}
	}

	if inPhraseSet(normalized, startFlowPhrases) {
		st, res := dialog.Begin(nil)
		sess.dialog = st
		return Response{Kind: KindReply, Text: res.Prompt}
	}

	if parsed, ok := nlp.ParseNaturalInput(trimmed); ok {
		return s.acceptParsed(sess, parsed)
	}

	return s.routeIntent(sess, trimmed)
}

// acceptParsed turns a one-shot parse into a pending confirmation.
func (s *Service) acceptParsed(sess *Session, parsed *nlp.ParseResult) Response {
	switch parsed.Kind {
	case nlp.ParseCategory:
		sess.pending = &pendingDraft{cat: parsed.Category}
		return Response{
			Kind:     KindDraft,
			Text:     fmt.Sprintf("Tạo danh mục %q (%s). %s", parsed.Category.Name, typeLabel(parsed.Category.Type), confirmQuestion),
			Chips:    confirmChips,
			Category: parsed.Category,
		}
	default:
		sess.pending = &pendingDraft{tx: parsed.Transaction}
		return Response{
			Kind:        KindDraft,
			Text:        transactionSummary(parsed.Transaction) + " " + confirmQuestion,
			Chips:       confirmChips,
			Transaction: parsed.Transaction,
		}
	}
}

// advanceDialog feeds the utterance into the slot-filling machine,
// augmenting type inference with the classifier's reading of the turn.
func (s *Service) advanceDialog(sess *Session, trimmed string) Response {
	var hint *model.TxType
	if sess.dialog.Step == dialog.StepNeedType {
		switch s.classifier.Detect(trimmed).Name {
		case intent.AddExpense:
			tp := model.TypeExpense
			hint = &tp
		case intent.AddIncome:
			tp := model.TypeIncome
			hint = &tp
		}
	}

	st, res := dialog.Advance(sess.dialog, trimmed, hint)
	sess.dialog = st

	if res.Draft != nil {
		sess.pending = &pendingDraft{tx: res.Draft}
		return Response{
			Kind:        KindDraft,
			Text:        transactionSummary(res.Draft) + " " + confirmQuestion,
			Chips:       confirmChips,
			Transaction: res.Draft,
		}
	}
	if res.Reprompt {
		return Response{Kind: KindReprompt, Text: res.Prompt}
	}
	return Response{Kind: KindReply, Text: res.Prompt}
}

// routeIntent handles utterances with no direct draft: classification
// drives either a dialog entry or a canned reply.
func (s *Service) routeIntent(sess *Session, trimmed string) Response {
	result := s.classifier.Detect(trimmed)
	metrics.ObserveIntent(string(result.Name))
	s.logger.Debug("classified utterance", "intent", result.Name, "score", result.Score)

	switch result.Name {
	case intent.AddExpense:
		tp := model.TypeExpense
		st, res := dialog.Begin(&tp)
		sess.dialog = st
		return Response{Kind: KindReply, Text: res.Prompt}
	case intent.AddIncome:
		tp := model.TypeIncome
		st, res := dialog.Begin(&tp)
		sess.dialog = st
		return Response{Kind: KindReply, Text: res.Prompt}
	case intent.CreateCategory:
		// The one-shot parser already failed to find a name; point the
		// user at the phrase instead of opening a nameless draft.
		return Response{Kind: KindReply, Text: categoryHintText, Chips: []string{"Tạo danh mục Du lịch"}}
	case intent.Report:
		return Response{Kind: KindReply, Text: reportText, Chips: []string{"Thêm chi tiêu", "Thêm thu nhập"}}
	case intent.JoinChallenge:
		return Response{Kind: KindReply, Text: challengeText, Chips: []string{"Xem báo cáo", "Trợ giúp"}}
	case intent.Help:
		return Response{Kind: KindReply, Text: helpText, Chips: rootChips}
	default:
		return Response{Kind: KindReply, Text: fallbackText, Chips: intent.SuggestCommands(trimmed, 4)}
	}
}

// resolvePending settles a draft awaiting confirmation. The session state
// is reset before the external create call begins, so a downstream
// failure never requires rolling parser state back; the user re-enters
// the request from scratch.
func (s *Service) resolvePending(ctx context.Context, sess *Session, normalized string) Response {
	switch {
	case inPhraseSet(normalized, affirmPhrases):
		pending := sess.pending
		sess.reset()
		return s.dispatch(ctx, pending)
	case inPhraseSet(normalized, negativePhrases):
		sess.reset()
		return Response{Kind: KindReply, Text: dismissedText, Chips: rootChips}
	default:
		return Response{Kind: KindReprompt, Text: confirmQuestion + " (có/không)", Chips: confirmChips}
	}
}

// dispatch hands a confirmed draft to the owning external service. Errors
// are surfaced verbatim; no retry is attempted.
func (s *Service) dispatch(ctx context.Context, pending *pendingDraft) Response {
	switch {
	case pending.tx != nil:
		if s.transactions == nil {
			return Response{Kind: KindReply, Text: "Chưa kết nối được dịch vụ giao dịch."}
		}
		if err := s.transactions.CreateTransaction(ctx, *pending.tx); err != nil {
			s.logger.Warn("transaction create failed", "error", err)
			metrics.ObserveDraft("transaction", "error")
			return Response{Kind: KindReply, Text: err.Error(), Chips: rootChips}
		}
		metrics.ObserveDraft("transaction", "created")
		return Response{
			Kind:  KindReply,
			Text:  fmt.Sprintf("Đã ghi %s %s.", typeLabel(pending.tx.Type), formatVND(pending.tx.Amount)),
			Chips: rootChips,
		}
	case pending.cat != nil:
		if s.categories == nil {
			return Response{Kind: KindReply, Text: "Chưa kết nối được dịch vụ danh mục."}
		}
		if err := s.categories.CreateCategory(ctx, *pending.cat); err != nil {
			s.logger.Warn("category create failed", "error", err)
			metrics.ObserveDraft("category", "error")
			return Response{Kind: KindReply, Text: err.Error(), Chips: rootChips}
		}
		metrics.ObserveDraft("category", "created")
		return Response{
			Kind:  KindReply,
			Text:  fmt.Sprintf("Đã tạo danh mục %q.", pending.cat.Name),
			Chips: rootChips,
		}
	case pending.tmpl != nil:
		return s.applyTemplate(ctx, pending.tmpl)
	default:
		return Response{Kind: KindReply, Text: fallbackText, Chips: rootChips}
	}
}

func (s *Service) applyTemplate(ctx context.Context, tmpl *Template) Response {
	switch tmpl.Kind {
	case TemplateCategorySet:
		if s.categories == nil {
			return Response{Kind: KindReply, Text: "Chưa kết nối được dịch vụ danh mục."}
		}
		created := 0
		for _, name := range tmpl.Categories {
			draft := model.DraftCategory{Name: name, Type: model.TypeExpense, OriginalText: tmpl.Title}
			if err := s.categories.CreateCategory(ctx, draft); err != nil {
				s.logger.Warn("template category create failed", "category", name, "error", err)
				metrics.ObserveDraft("template", "error")
				return Response{Kind: KindReply, Text: err.Error(), Chips: rootChips}
			}
			created++
		}
		metrics.ObserveDraft("template", "created")
		return Response{
			Kind:  KindReply,
			Text:  fmt.Sprintf("Đã tạo %d danh mục chuẩn.", created),
			Chips: rootChips,
		}
	case TemplateBudgetSplit:
		if s.budgets == nil {
			return Response{Kind: KindReply, Text: "Chưa kết nối được dịch vụ ngân sách."}
		}
		if err := s.budgets.SetBudgetSplit(ctx, *tmpl.Split); err != nil {
			s.logger.Warn("budget split failed", "error", err)
			metrics.ObserveDraft("template", "error")
			return Response{Kind: KindReply, Text: err.Error(), Chips: rootChips}
		}
		metrics.ObserveDraft("template", "created")
		return Response{
			Kind:  KindReply,
			Text:  "Đã áp dụng ngân sách 50/30/20.",
			Chips: rootChips,
		}
	default:
		return Response{Kind: KindReply, Text: fallbackText, Chips: rootChips}
	}
}

func transactionSummary(d *model.DraftTransaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ghi %s %s", typeLabel(d.Type), formatVND(d.Amount))
	if d.CategoryName != "" {
		fmt.Fprintf(&b, " vào danh mục %q", d.CategoryName)
	}
	if d.Note != "" && d.Note != model.DefaultNote {
		fmt.Fprintf(&b, " (ghi chú: %s)", d.Note)
	}
	b.WriteString(".")
	return b.String()
}

func templateSummary(t *Template) string {
	switch t.Kind {
	case TemplateCategorySet:
		return fmt.Sprintf("Tạo %d danh mục chuẩn (%s...).", len(t.Categories), strings.Join(t.Categories[:3], ", "))
	case TemplateBudgetSplit:
		return fmt.Sprintf("Áp dụng ngân sách %d/%d/%d cho nhu cầu/mong muốn/tiết kiệm.", t.Split.Needs, t.Split.Wants, t.Split.Savings)
	default:
		return t.Title
	}
}
