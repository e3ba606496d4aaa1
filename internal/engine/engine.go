// Package engine implements the dialogue state machine: given the current
// ConversationState and one user message it produces a response, mutates the
// state per the transition table, and performs the order-store side effects
// reached at terminal decisions.
package engine

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/NishaManivannan/Bakery-chatbot/internal/catalog"
	"github.com/NishaManivannan/Bakery-chatbot/internal/logging"
	"github.com/NishaManivannan/Bakery-chatbot/internal/match"
	"github.com/NishaManivannan/Bakery-chatbot/pkg/domain"
	"github.com/NishaManivannan/Bakery-chatbot/pkg/ports"
)

// DefaultSessionTimeout is how long a session may sit idle before the next
// message transparently resets it.
const DefaultSessionTimeout = 300 * time.Second

// Engine drives one conversation turn at a time. It is stateless between
// calls; all per-session data lives in the ConversationState the caller
// passes in. Safe for concurrent use across sessions.
type Engine struct {
	catalog *catalog.Catalog
	orders  ports.OrderStore
	matcher *match.Matcher

	timeout time.Duration
	now     func() time.Time
	log     *slog.Logger
	metrics *Metrics
}

// Option is a functional option for configuring an Engine.
type Option func(*Engine)

// WithSessionTimeout overrides the idle timeout. Default: 300 s.
func WithSessionTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the logger. Default: no-op.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithMatcher swaps the text matcher.
func WithMatcher(m *match.Matcher) Option {
	return func(e *Engine) { e.matcher = m }
}

// WithMetrics attaches turn/order counters.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New creates an Engine over the given catalog and order store.
func New(cat *catalog.Catalog, orders ports.OrderStore, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		orders:  orders,
		matcher: match.New(),
		timeout: DefaultSessionTimeout,
		now:     time.Now,
		log:     logging.NewNop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Step handles one incoming message as a single atomic turn: apply the idle
// timeout, honor the global "home" reset, then dispatch on the current stage.
// The state is mutated in place; the caller persists it afterwards. Every
// code path yields a textual response.
func (e *Engine) Step(ctx context.Context, st *domain.ConversationState, message string) domain.Result {
	msg := strings.TrimSpace(message)
	now := e.now()

	if !st.LastActiveAt.IsZero() && now.Sub(st.LastActiveAt) > e.timeout {
		e.log.Debug("session timed out, resetting", "idle", now.Sub(st.LastActiveAt))
		st.Reset(now)
	}
	st.LastActiveAt = now

	if strings.Contains(strings.ToLower(msg), "home") {
		st.Reset(now)
		return e.observe(st, domain.Result{Text: promptWelcomeBack})
	}

	var res domain.Result
	switch st.Stage {
	case domain.StageWelcome:
		res = e.handleWelcome(st)
	case domain.StageGetAction:
		res = e.handleGetAction(st, msg)
	case domain.StageCancelName:
		res = e.handleCancelName(st, msg)
	case domain.StageCancelPhone:
		res = e.handleCancelPhone(ctx, st, msg)
	case domain.StageGetName:
		res = e.handleGetName(st, msg)
	case domain.StageGetPhone:
		res = e.handleGetPhone(st, msg)
	case domain.StageCategory:
		res = e.handleCategory(st, msg)
	case domain.StageFlavor:
		res = e.handleFlavor(st, msg)
	case domain.StageTopping:
		res = e.handleTopping(st, msg)
	case domain.StageCustomize:
		res = e.handleCustomize(st, msg)
	case domain.StageConfirm:
		res = e.handleConfirm(ctx, st, msg)
	default:
		// Unroutable stage: respond without corrupting state.
		e.log.Error("unroutable stage", "stage", st.Stage)
		res = domain.Result{Text: promptFallback}
	}
	return e.observe(st, res)
}

func (e *Engine) observe(st *domain.ConversationState, res domain.Result) domain.Result {
	if e.metrics != nil {
		e.metrics.observe(st.Stage, res.Effect)
	}
	return res
}
