package agent

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/chatbot"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/snapshot"
)

type mockSubmitter struct {
	mu        sync.Mutex
	summaries []chatbot.Summary
	err       error
}

func (m *mockSubmitter) SubmitSummary(sessionID string, s chatbot.Summary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries = append(m.summaries, s)
	return m.err
}

func (m *mockSubmitter) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.summaries)
}

type memSnapshots struct {
	mu    sync.Mutex
	items map[string]snapshot.Snapshot
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{items: map[string]snapshot.Snapshot{}}
}

func (m *memSnapshots) Save(key string, snap snapshot.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = snap
	return nil
}

func (m *memSnapshots) Load(key string) (*snapshot.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if snap, ok := m.items[key]; ok {
		return &snap, nil
	}
	return nil, nil
}

func noDelay(string) time.Duration { return 0 }

func newTestEngine(sub SummarySubmitter, opts ...Option) *Engine {
	responder := chatbot.NewResponder(chatbot.DefaultConfig(), rand.New(rand.NewSource(1)))
	opts = append([]Option{WithTypingDelay(noDelay)}, opts...)
	return NewEngine(responder, sub, opts...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never met")
}

func TestHandleMessageReturnsReplyEveryTurn(t *testing.T) {
	e := newTestEngine(nil)

	for _, msg := range []string{"hi", "", "???", "no thanks"} {
		res := e.HandleMessage(context.Background(), "s1", msg)
		assert.NotEmpty(t, res.Reply, "no reply for %q", msg)
	}
}

func TestCloseBelowThresholdSkipsSummary(t *testing.T) {
	sub := &mockSubmitter{}
	e := newTestEngine(sub)

	// one turn = 2 messages, below the threshold of 3
	e.HandleMessage(context.Background(), "s1", "hi")
	e.CloseSession("s1")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, sub.count())
}

func TestCloseAtThresholdSubmitsExactlyOnce(t *testing.T) {
	sub := &mockSubmitter{}
	e := newTestEngine(sub)

	e.HandleMessage(context.Background(), "s1", "hi")
	e.HandleMessage(context.Background(), "s1", "we need marketing help")
	e.CloseSession("s1")
	e.CloseSession("s1") // second close is a no-op

	waitFor(t, func() bool { return sub.count() == 1 })
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, sub.count())

	s := sub.summaries[0]
	assert.Equal(t, chatbot.QualWarm, s.LeadQualification)
	assert.Contains(t, s.ServicesDiscussed, "Digital Marketing")
}

func TestSubmitterErrorIsSwallowed(t *testing.T) {
	sub := &mockSubmitter{err: errors.New("backend down")}
	e := newTestEngine(sub)

	e.HandleMessage(context.Background(), "s1", "hi")
	e.HandleMessage(context.Background(), "s1", "tell me about marketing")
	assert.NotPanics(t, func() { e.CloseSession("s1") })
	waitFor(t, func() bool { return sub.count() == 1 })
}

func TestPendingTypingTimerDiscardedOnClose(t *testing.T) {
	sub := &mockSubmitter{}
	responder := chatbot.NewResponder(chatbot.DefaultConfig(), rand.New(rand.NewSource(1)))
	e := NewEngine(responder, sub, WithTypingDelay(func(string) time.Duration {
		return 200 * time.Millisecond
	}))

	e.HandleMessage(context.Background(), "s1", "hi")
	time.Sleep(300 * time.Millisecond) // first bot message lands

	e.HandleMessage(context.Background(), "s1", "we need automation")
	// close before the second bot message lands; its append must be discarded
	e.CloseSession("s1")
	time.Sleep(400 * time.Millisecond)

	waitFor(t, func() bool { return sub.count() == 1 })
	assert.Contains(t, sub.summaries[0].ChatSummary, "3 messages",
		"the bot reply pending at close must not join the transcript")
}

func TestSnapshotSavedOnCloseAndLoadedOnReturn(t *testing.T) {
	snaps := newMemSnapshots()
	e := newTestEngine(nil, WithSnapshotStore(snaps))

	e.HandleMessage(context.Background(), "visitor-7", "I'm interested")
	e.HandleMessage(context.Background(), "visitor-7", "John Smith")
	e.HandleMessage(context.Background(), "visitor-7", "john@acme.com")
	e.CloseSession("visitor-7")

	saved, err := snaps.Load("visitor-7")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "john@acme.com", saved.ContactInfo.Email)
	assert.Equal(t, 1, saved.VisitCount)

	// return visit: contact info carries over, visit count increments
	e.HandleMessage(context.Background(), "visitor-7", "hello again")
	st, ok := e.SessionState("visitor-7")
	require.True(t, ok)
	assert.Equal(t, "john@acme.com", st.Contact.Email)

	e.CloseSession("visitor-7")
	saved, err = snaps.Load("visitor-7")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 2, saved.VisitCount)
}

func TestAugmenterFailureFallsBackToRuleReply(t *testing.T) {
	failing := llm.NewAugmenter(
		failingProvider{},
		llm.AugmentPolicy{Enabled: true, FallbackThreshold: 2, Timeout: time.Second},
	)
	e := newTestEngine(nil, WithAugmenter(failing))

	res := e.HandleMessage(context.Background(), "s1", "chatbot versus live chat, which works better?")
	assert.False(t, res.AugmentUsed)
	assert.NotEmpty(t, res.Reply, "rule-based reply must stand when augmentation fails")
}

func TestEngineWorksWithAugmentationFullyDisabled(t *testing.T) {
	e := newTestEngine(nil) // no augmenter at all

	res := e.HandleMessage(context.Background(), "s1", "compare your plans versus hiring in-house?")
	assert.False(t, res.AugmentUsed)
	assert.NotEmpty(t, res.Reply)
}

func TestEvictIdleClosesThroughThresholdPath(t *testing.T) {
	sub := &mockSubmitter{}
	e := newTestEngine(sub)

	e.HandleMessage(context.Background(), "short", "hi")
	e.HandleMessage(context.Background(), "long", "hi")
	e.HandleMessage(context.Background(), "long", "we need automation help")

	evicted := e.EvictIdle(0)
	assert.Equal(t, 2, evicted)
	assert.Equal(t, 0, e.ActiveSessions())

	// only the session that met the threshold produced a summary
	waitFor(t, func() bool { return sub.count() == 1 })
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, sub.count())
}

type failingProvider struct{}

func (failingProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return "", errors.New("unreachable")
}

func (failingProvider) GetProviderName() string { return "failing" }
