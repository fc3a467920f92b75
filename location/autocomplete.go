package location

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/R3Claimers/InsiderJobs/models"
)

// Autocomplete defaults.
const (
	DefaultQuietPeriod  = 300 * time.Millisecond
	DefaultFetchTimeout = 10 * time.Second
)

// Fetcher loads suggestions for a settled query. A non-nil error covers both
// transport failures and responses that did not report success.
type Fetcher interface {
	FetchLocations(ctx context.Context, query string) ([]models.CitySuggestion, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, query string) ([]models.CitySuggestion, error)

// FetchLocations calls f.
func (f FetcherFunc) FetchLocations(ctx context.Context, query string) ([]models.CitySuggestion, error) {
	return f(ctx, query)
}

// AutocompleteOption configures an Autocomplete.
type AutocompleteOption func(*Autocomplete)

// WithQuietPeriod sets how long typing must pause before a fetch is issued.
func WithQuietPeriod(d time.Duration) AutocompleteOption {
	return func(a *Autocomplete) {
		if d > 0 {
			a.quiet = d
		}
	}
}

// WithFetchTimeout bounds each fetch.
func WithFetchTimeout(d time.Duration) AutocompleteOption {
	return func(a *Autocomplete) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithOnUpdate registers a listener called with a snapshot after every state change.
func WithOnUpdate(fn func(State)) AutocompleteOption {
	return func(a *Autocomplete) {
		a.onUpdate = fn
	}
}

// Autocomplete drives a Session with a debounce timer and a Fetcher. It is
// safe for concurrent use; listeners are called without the lock held.
type Autocomplete struct {
	mu       sync.Mutex
	session  *Session
	fetcher  Fetcher
	onChange func(string)
	onUpdate func(State)
	quiet    time.Duration
	timeout  time.Duration

	timer    *time.Timer
	timerSeq uint64
	closed   bool
	ctx      context.Context
	cancel   context.CancelFunc
	inflight sync.WaitGroup
}

// NewAutocomplete creates a session driver. onChange receives every value the
// input takes, typed or selected.
func NewAutocomplete(initial string, fetcher Fetcher, onChange func(string), opts ...AutocompleteOption) *Autocomplete {
	ctx, cancel := context.WithCancel(context.Background())
	a := &Autocomplete{
		session:  NewSession(initial),
		fetcher:  fetcher,
		onChange: onChange,
		quiet:    DefaultQuietPeriod,
		timeout:  DefaultFetchTimeout,
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Type handles a keystroke that left the input holding text.
func (a *Autocomplete) Type(text string) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.session.Keystroke(text)
	a.scheduleLocked()
	st := a.session.Snapshot()
	a.mu.Unlock()

	a.notifyChange(text)
	a.notifyUpdate(st)
}

// Select handles a click on a suggestion.
func (a *Autocomplete) Select(c models.CitySuggestion) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	changed := a.session.Select(c)
	if changed {
		// The query changed, so a debounce cycle runs and consumes the
		// suppress flag.
		a.scheduleLocked()
	}
	st := a.session.Snapshot()
	a.mu.Unlock()

	if changed {
		a.notifyChange(c.Display)
	}
	a.notifyUpdate(st)
}

// OutsideClick handles a pointer press outside the component.
func (a *Autocomplete) OutsideClick() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.session.OutsideClick()
	st := a.session.Snapshot()
	a.mu.Unlock()

	a.notifyUpdate(st)
}

// State returns a snapshot of the session.
func (a *Autocomplete) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Snapshot()
}

// Close stops the pending timer, cancels any in-flight fetch and waits for it.
// The session state is discarded.
func (a *Autocomplete) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.cancel()
	a.mu.Unlock()

	a.inflight.Wait()
}

func (a *Autocomplete) scheduleLocked() {
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timerSeq++
	seq := a.timerSeq
	a.timer = time.AfterFunc(a.quiet, func() { a.fire(seq) })
}

// fire runs on the timer goroutine once the quiet period elapsed. A timer
// that fired while being replaced finds a newer seq and does nothing.
func (a *Autocomplete) fire(seq uint64) {
	a.mu.Lock()
	if a.closed || seq != a.timerSeq {
		a.mu.Unlock()
		return
	}
	ticket, ok := a.session.BeginFetch()
	st := a.session.Snapshot()
	if ok {
		a.inflight.Add(1)
	}
	a.mu.Unlock()

	a.notifyUpdate(st)
	if !ok {
		return
	}
	defer a.inflight.Done()

	ctx, cancel := context.WithTimeout(a.ctx, a.timeout)
	cities, err := a.fetcher.FetchLocations(ctx, ticket.Query)
	cancel()

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	if err != nil {
		log.Printf("[Autocomplete] Error fetching locations for %q: %v", ticket.Query, err)
		a.session.FetchFailed(ticket)
	} else if !a.session.FetchSucceeded(ticket, cities) {
		log.Printf("[Autocomplete] Discarding stale response for %q", ticket.Query)
	}
	st = a.session.Snapshot()
	a.mu.Unlock()

	a.notifyUpdate(st)
}

func (a *Autocomplete) notifyChange(text string) {
	if a.onChange != nil {
		a.onChange(text)
	}
}

func (a *Autocomplete) notifyUpdate(st State) {
	if a.onUpdate != nil {
		a.onUpdate(st)
	}
}
