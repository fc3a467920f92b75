package location

import "github.com/R3Claimers/InsiderJobs/models"

// State is the observable state of one autocomplete session.
type State struct {
	Query             string
	Suggestions       []models.CitySuggestion
	IsOpen            bool
	IsLoading         bool
	SuppressNextFetch bool
}

// FetchTicket identifies one issued fetch. Results are applied only while
// the ticket is the latest one issued and its query is still current.
type FetchTicket struct {
	Generation uint64
	Query      string
}

// Session is the autocomplete state machine. Its transitions are plain
// methods with no I/O or timers; Autocomplete drives it.
type Session struct {
	state      State
	generation uint64
}

// NewSession starts a session with an initial input value.
func NewSession(initial string) *Session {
	return &Session{state: State{Query: initial}}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	st := s.state
	if st.Suggestions != nil {
		st.Suggestions = append([]models.CitySuggestion(nil), st.Suggestions...)
	}
	return st
}

// Keystroke records user typing. The panel opens once the text is searchable.
func (s *Session) Keystroke(text string) {
	s.state.Query = text
	s.state.IsOpen = IsSearchable(text)
}

// BeginFetch runs when the quiet period elapses and decides whether the
// settled query is fetched.
func (s *Session) BeginFetch() (FetchTicket, bool) {
	if s.state.SuppressNextFetch {
		s.state.SuppressNextFetch = false
		return FetchTicket{}, false
	}

	if !IsSearchable(s.state.Query) {
		s.state.Suggestions = nil
		s.state.IsOpen = false
		return FetchTicket{}, false
	}

	s.generation++
	s.state.IsLoading = true
	s.state.IsOpen = true
	return FetchTicket{Generation: s.generation, Query: s.state.Query}, true
}

// FetchSucceeded applies a successful response. It reports whether the
// suggestions were replaced.
func (s *Session) FetchSucceeded(t FetchTicket, cities []models.CitySuggestion) bool {
	if !s.settle(t) {
		return false
	}
	if cities == nil {
		cities = []models.CitySuggestion{}
	}
	s.state.Suggestions = cities
	return true
}

// FetchFailed settles a failed fetch. Prior suggestions are kept.
func (s *Session) FetchFailed(t FetchTicket) {
	s.settle(t)
}

// settle clears the loading flag for the latest ticket and reports whether
// its query is still the current one.
func (s *Session) settle(t FetchTicket) bool {
	if t.Generation != s.generation {
		return false
	}
	s.state.IsLoading = false
	return t.Query == s.state.Query
}

// Select picks a suggestion. It reports whether the query changed, in which
// case the caller must notify its change listener with the display label.
func (s *Session) Select(c models.CitySuggestion) bool {
	if c.Display == s.state.Query {
		s.state.IsOpen = false
		return false
	}

	// The flag has to be set before the query changes so the fetch scheduled
	// by the change is skipped.
	s.state.SuppressNextFetch = true
	s.state.Query = c.Display
	s.state.Suggestions = nil
	s.state.IsOpen = false

	// Responses still in flight belong to the replaced query.
	s.generation++
	s.state.IsLoading = false
	return true
}

// OutsideClick hides the panel without touching query or suggestions.
func (s *Session) OutsideClick() {
	s.state.IsOpen = false
}
