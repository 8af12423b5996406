package agent

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/chatbot"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/snapshot"
)

// summaryThreshold: sessions shorter than this many total messages are
// considered noise and never submitted.
const summaryThreshold = 3

// SummarySubmitter receives the close-time summary. Submission is
// fire-and-forget; errors are logged and swallowed.
type SummarySubmitter interface {
	SubmitSummary(sessionID string, summary chatbot.Summary) error
}

// SnapshotStore is the cross-visit persistence the engine uses to
// personalize return visits. Both methods are best-effort.
type SnapshotStore interface {
	Save(key string, snap snapshot.Snapshot) error
	Load(key string) (*snapshot.Snapshot, error)
}

// TurnResult is what one user turn produces.
type TurnResult struct {
	Reply         string
	TypingDelay   time.Duration
	Stage         chatbot.Stage
	Qualification chatbot.Qualification
	AugmentUsed   bool
}

// Engine owns all live chat sessions. Each session's state is mutated
// only under its own lock; the engine map lock is never held across a turn.
type Engine struct {
	responder *chatbot.Responder
	augmenter *llm.Augmenter   // optional
	submitter SummarySubmitter // optional
	snapshots SnapshotStore    // optional

	typingDelay func(reply string) time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

type Option func(*Engine)

// WithTypingDelay overrides the simulated typing delay calculation.
// Tests pass a zero delay so bot messages append synchronously.
func WithTypingDelay(fn func(reply string) time.Duration) Option {
	return func(e *Engine) { e.typingDelay = fn }
}

func WithAugmenter(a *llm.Augmenter) Option {
	return func(e *Engine) { e.augmenter = a }
}

func WithSnapshotStore(s SnapshotStore) Option {
	return func(e *Engine) { e.snapshots = s }
}

func NewEngine(responder *chatbot.Responder, submitter SummarySubmitter, opts ...Option) *Engine {
	e := &Engine{
		responder:   responder,
		submitter:   submitter,
		typingDelay: defaultTypingDelay,
		sessions:    make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// defaultTypingDelay scales with reply length so long answers don't pop
// in instantly, capped so nobody waits around.
func defaultTypingDelay(reply string) time.Duration {
	d := 400*time.Millisecond + time.Duration(len(reply))*15*time.Millisecond
	if d > 2500*time.Millisecond {
		d = 2500 * time.Millisecond
	}
	return d
}

// Session is one visitor's live conversation.
type Session struct {
	ID string

	mu           sync.Mutex
	state        *chatbot.ConversationState
	messages     []chatbot.Message
	fallbacks    int
	visitCount   int
	lastActive   time.Time
	closed       bool
	pendingTimer *time.Timer
}

// session returns the live session, creating it (and pulling in any
// prior-visit snapshot) on first contact.
func (e *Engine) session(id string) *Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	if s, ok := e.sessions[id]; ok {
		return s
	}

	s := &Session{
		ID:         id,
		state:      chatbot.NewConversationState(),
		visitCount: 1,
		lastActive: time.Now(),
	}

	if e.snapshots != nil {
		if snap, err := e.snapshots.Load(id); err != nil {
			log.Printf("⚠️ Failed to load snapshot for %s: %v", id, err)
		} else if snap != nil {
			s.state.Contact = s.state.Contact.Merge(snap.ContactInfo)
			s.visitCount = snap.VisitCount + 1
		}
	}

	e.sessions[id] = s
	return s
}

// HandleMessage runs one turn: classify, respond, optionally augment,
// and schedule the bot message behind the simulated typing delay.
// The rule-based reply is always computed; augmentation only ever
// replaces its text, never its state transition.
func (e *Engine) HandleMessage(ctx context.Context, sessionID, text string) TurnResult {
	s := e.session(sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActive = time.Now()
	if s.closed {
		// a closed session that speaks again starts over
		s.closed = false
		s.state = chatbot.NewConversationState()
		s.messages = nil
		s.fallbacks = 0
	}

	s.messages = append(s.messages, chatbot.NewMessage(text, chatbot.SenderUser))

	reply, next := e.responder.Respond(text, s.state)
	augmentUsed := false

	if e.augmenter != nil && e.augmenter.ShouldAugment(text, s.state, s.fallbacks) {
		if enriched, ok := e.augmenter.Augment(ctx, text, s.state, recentMessages(s.messages, 6)); ok {
			reply = enriched
			augmentUsed = true
		} else {
			s.fallbacks++
		}
	}

	s.state = next
	delay := e.typingDelay(reply)
	e.scheduleBotMessage(s, reply, delay)

	return TurnResult{
		Reply:         reply,
		TypingDelay:   delay,
		Stage:         next.Stage,
		Qualification: next.Qualification(),
		AugmentUsed:   augmentUsed,
	}
}

// scheduleBotMessage appends the bot turn after the typing delay. If
// the session closes before the timer fires the append is discarded —
// no transcript update lands after close. Caller holds s.mu.
func (e *Engine) scheduleBotMessage(s *Session, reply string, delay time.Duration) {
	if delay <= 0 {
		s.messages = append(s.messages, chatbot.NewMessage(reply, chatbot.SenderBot))
		return
	}

	s.pendingTimer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		s.messages = append(s.messages, chatbot.NewMessage(reply, chatbot.SenderBot))
	})
}

// CloseSession ends a session: cancels any pending typing timer, emits
// the summary (threshold-gated, fire-and-forget), and writes the
// cross-visit snapshot. Closing twice is a no-op.
func (e *Engine) CloseSession(sessionID string) {
	e.mu.Lock()
	s, ok := e.sessions[sessionID]
	if ok {
		delete(e.sessions, sessionID)
	}
	e.mu.Unlock()
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e.closeLocked(s)
}

func (e *Engine) closeLocked(s *Session) {
	if s.closed {
		return
	}
	s.closed = true

	if s.pendingTimer != nil {
		s.pendingTimer.Stop()
		s.pendingTimer = nil
	}

	if e.submitter != nil && len(s.messages) >= summaryThreshold {
		summary := chatbot.BuildSummary(s.state, s.messages, time.Now())
		go func() {
			if err := e.submitter.SubmitSummary(s.ID, summary); err != nil {
				log.Printf("⚠️ Failed to submit chat summary for %s: %v", s.ID, err)
			}
		}()
	}

	if e.snapshots != nil {
		snap := snapshot.Snapshot{
			ContactInfo:       s.state.Contact,
			ServicesDiscussed: s.state.ServicesDiscussed,
			PainPoints:        s.state.PainPoints,
			ConversationStage: s.state.Stage,
			LastVisit:         time.Now().UTC(),
			VisitCount:        s.visitCount,
		}
		if err := e.snapshots.Save(s.ID, snap); err != nil {
			log.Printf("⚠️ Failed to save snapshot for %s: %v", s.ID, err)
		}
	}
}

// EvictIdle closes every session idle for longer than maxIdle.
// Eviction goes through the same close path, so summaries still honour
// the message threshold.
func (e *Engine) EvictIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	e.mu.Lock()
	var stale []*Session
	for id, s := range e.sessions {
		s.mu.Lock()
		idle := s.lastActive.Before(cutoff)
		s.mu.Unlock()
		if idle {
			stale = append(stale, s)
			delete(e.sessions, id)
		}
	}
	e.mu.Unlock()

	for _, s := range stale {
		s.mu.Lock()
		e.closeLocked(s)
		s.mu.Unlock()
	}
	return len(stale)
}

// ActiveSessions reports how many sessions are live.
func (e *Engine) ActiveSessions() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.sessions)
}

// SessionState exposes a copy of the session state, mainly for the
// context-persistence endpoints.
func (e *Engine) SessionState(sessionID string) (*chatbot.ConversationState, bool) {
	e.mu.Lock()
	s, ok := e.sessions[sessionID]
	e.mu.Unlock()
	if !ok {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone(), true
}

func recentMessages(msgs []chatbot.Message, n int) []chatbot.Message {
	if len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}
