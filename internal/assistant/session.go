package assistant

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/resty-service/internal/domain"
)

var (
	ErrEmptyMessage     = errors.New("message is empty")
	ErrAwaitingResponse = errors.New("a response is still pending")
	ErrSessionClosed    = errors.New("chat session closed")
)

// Transcript is where chat messages are appended.
type Transcript interface {
	AddChatMessage(msg domain.ChatMessage)
}

// Config tunes reply timing.
type Config struct {
	// Delay simulates latency before a reply is produced.
	Delay time.Duration
	// Timeout bounds a single provider call; zero disables it.
	Timeout time.Duration
}

// Assistant turns user messages into transcript entries and delayed replies.
type Assistant struct {
	transcript Transcript
	provider   ResponseProvider
	cfg        Config
	logger     *zap.Logger
	now        func() time.Time

	idMu    sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Option customises an Assistant.
type Option func(*Assistant)

// WithClock overrides the time source used for timestamps and ids.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) { a.now = now }
}

// New builds an Assistant appending to transcript.
func New(transcript Transcript, provider ResponseProvider, cfg Config, logger *zap.Logger, opts ...Option) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Assistant{
		transcript: transcript,
		provider:   provider,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Assistant) nextID(t time.Time) string {
	a.idMu.Lock()
	defer a.idMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), a.entropy).String()
}

func (a *Assistant) message(role domain.ChatRole, content string) domain.ChatMessage {
	now := a.now()
	return domain.ChatMessage{
		ID:        a.nextID(now),
		Role:      role,
		Content:   content,
		Timestamp: now,
	}
}

// reply asks the provider for an answer and degrades any failure to the
// fallback message.
func (a *Assistant) reply(ctx context.Context, text string) domain.ChatMessage {
	category := Classify(text)

	callCtx := ctx
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	content, err := a.safeRespond(callCtx, category, text)
	if err != nil {
		a.logger.Warn("assistant reply failed", zap.String("category", string(category)), zap.Error(err))
		return a.message(domain.ChatRoleAssistant, FallbackReply)
	}

	msg := a.message(domain.ChatRoleAssistant, content)
	msg.Metadata = &domain.ChatMetadata{Type: &category}
	return msg
}

func (a *Assistant) safeRespond(ctx context.Context, category domain.MessageCategory, text string) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("response provider panic: %v", r)
		}
	}()
	return a.provider.Respond(ctx, category, text)
}

// Session is one chat client's conversation state. At most one reply is
// pending at a time; closing the session cancels it. Messages are appended
// while the session lock is held, so transcript listeners must not call back
// into the session.
type Session struct {
	ID        string
	assistant *Assistant

	mu       sync.Mutex
	awaiting bool
	closed   bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewSession starts a session with the given id.
func (a *Assistant) NewSession(id string) *Session {
	return &Session{ID: id, assistant: a}
}

// Awaiting reports whether a reply is pending.
func (s *Session) Awaiting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.awaiting
}

// Submit appends the user's message and schedules the reply. It returns the
// appended user message.
func (s *Session) Submit(text string) (domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChatMessage{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ChatMessage{}, ErrSessionClosed
	}
	if s.awaiting {
		return domain.ChatMessage{}, ErrAwaitingResponse
	}

	msg := s.assistant.message(domain.ChatRoleUser, text)
	s.assistant.transcript.AddChatMessage(msg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.awaiting = true
	s.cancel = cancel
	s.done = done

	go s.respond(ctx, text, done)
	return msg, nil
}

func (s *Session) respond(ctx context.Context, text string, done chan struct{}) {
	defer close(done)
	defer s.finish()

	timer := time.NewTimer(s.assistant.cfg.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	msg := s.assistant.reply(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	s.assistant.transcript.AddChatMessage(msg)
}

func (s *Session) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awaiting = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Wait blocks until the pending reply, if any, has been appended or dropped.
func (s *Session) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Close cancels a pending reply and rejects further submissions. It returns
// once the pending reply has been dropped.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	done := s.done
	s.mu.Unlock()

	if done != nil {
		<-done
	}
}
