package intro

import (
	"errors"
	"sync"
	"time"
)

const (
	DefaultInterval = 500 * time.Millisecond
	DefaultSettle   = time.Second
)

// ErrAlreadyStarted is returned when Start is called more than once.
var ErrAlreadyStarted = errors.New("intro: sequencer already started")

// Frame is a greeting together with its position in the sequence.
type Frame struct {
	Index int
	Total int
	Greeting
}

// Last reports whether f is the final frame.
func (f Frame) Last() bool {
	return f.Index == f.Total-1
}

// Scheduler runs fn after d. The returned func cancels the pending run.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithInterval sets the time each frame stays on screen.
func WithInterval(d time.Duration) Option {
	return func(s *Sequencer) { s.interval = d }
}

// WithSettle sets the pause between the final frame and completion.
func WithSettle(d time.Duration) Option {
	return func(s *Sequencer) { s.settle = d }
}

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(sch Scheduler) Option {
	return func(s *Sequencer) { s.sched = sch }
}

// Sequencer advances through a fixed list of greetings at a fixed pace and
// reports completion once. It cannot be restarted.
//
// Callbacks run on the scheduler's goroutine with the sequencer locked, so
// they must not call back into the sequencer; hand the work off instead.
type Sequencer struct {
	frames   []Greeting
	interval time.Duration
	settle   time.Duration
	sched    Scheduler

	mu         sync.Mutex
	started    bool
	stopped    bool
	done       bool
	index      int
	cancel     func()
	onFrame    func(Frame)
	onComplete func()
}

// New creates a sequencer over frames.
func New(frames []Greeting, opts ...Option) *Sequencer {
	s := &Sequencer{
		frames:   append([]Greeting(nil), frames...),
		interval: DefaultInterval,
		settle:   DefaultSettle,
		sched:    timeScheduler{},
		index:    -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start shows the first frame immediately and schedules the rest.
// onComplete runs exactly once, after the final frame has been shown for
// the settle delay, unless Stop is called first.
func (s *Sequencer) Start(onFrame func(Frame), onComplete func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true
	s.onFrame = onFrame
	s.onComplete = onComplete

	if s.stopped {
		return nil
	}
	if len(s.frames) == 0 {
		s.cancel = s.sched.AfterFunc(s.settle, s.finish)
		return nil
	}
	s.show(0)
	return nil
}

// Stop cancels any pending work. No callback runs after Stop returns.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Done reports whether the completion callback has run.
func (s *Sequencer) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Current returns the frame on display, if any.
func (s *Sequencer) Current() (Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index < 0 {
		return Frame{}, false
	}
	return s.frame(s.index), true
}

func (s *Sequencer) frame(i int) Frame {
	return Frame{Index: i, Total: len(s.frames), Greeting: s.frames[i]}
}

// show displays frame i and schedules the next step. Caller holds mu.
func (s *Sequencer) show(i int) {
	s.index = i
	if s.onFrame != nil {
		s.onFrame(s.frame(i))
	}
	if i == len(s.frames)-1 {
		s.cancel = s.sched.AfterFunc(s.settle, s.finish)
		return
	}
	s.cancel = s.sched.AfterFunc(s.interval, s.advance)
}

func (s *Sequencer) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.done {
		return
	}
	s.show(s.index + 1)
}

func (s *Sequencer) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.done {
		return
	}
	s.done = true
	s.cancel = nil
	if s.onComplete != nil {
		s.onComplete()
	}
}
