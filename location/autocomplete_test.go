package location

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R3Claimers/InsiderJobs/models"
)

const testQuiet = 30 * time.Millisecond

type recordingFetcher struct {
	mu      sync.Mutex
	queries []string
	result  []models.CitySuggestion
	err     error
}

func (f *recordingFetcher) FetchLocations(ctx context.Context, query string) ([]models.CitySuggestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.result, f.err
}

func (f *recordingFetcher) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

type changeLog struct {
	mu     sync.Mutex
	values []string
}

func (c *changeLog) record(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = append(c.values, v)
}

func (c *changeLog) Values() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.values...)
}

func TestAutocompleteDebounce(t *testing.T) {
	fetcher := &recordingFetcher{result: []models.CitySuggestion{NewCitySuggestion("Barcelona", "Catalonia", "Spain")}}
	changes := &changeLog{}
	a := NewAutocomplete("", fetcher, changes.record, WithQuietPeriod(testQuiet))
	defer a.Close()

	a.Type("b")
	a.Type("ba")
	a.Type("bar")

	assert.Equal(t, []string{"b", "ba", "bar"}, changes.Values(), "every keystroke is reported immediately")

	require.Eventually(t, func() bool {
		st := a.State()
		return len(st.Suggestions) == 1 && !st.IsLoading
	}, time.Second, 5*time.Millisecond)

	time.Sleep(3 * testQuiet)
	assert.Equal(t, []string{"bar"}, fetcher.Queries())
	assert.True(t, a.State().IsOpen)
}

func TestAutocompleteShortQueryNeverFetches(t *testing.T) {
	fetcher := &recordingFetcher{}
	a := NewAutocomplete("", fetcher, nil, WithQuietPeriod(testQuiet))
	defer a.Close()

	a.Type("b")
	time.Sleep(4 * testQuiet)

	assert.Empty(t, fetcher.Queries())
	assert.False(t, a.State().IsOpen)
}

func TestAutocompleteFetchFailureKeepsSuggestions(t *testing.T) {
	berlin := NewCitySuggestion("Berlin", "Land Berlin", "Germany")
	fetcher := &recordingFetcher{result: []models.CitySuggestion{berlin}}
	a := NewAutocomplete("", fetcher, nil, WithQuietPeriod(testQuiet))
	defer a.Close()

	a.Type("Ber")
	require.Eventually(t, func() bool { return len(a.State().Suggestions) == 1 }, time.Second, 5*time.Millisecond)

	fetcher.mu.Lock()
	fetcher.err = errors.New("network down")
	fetcher.mu.Unlock()

	a.Type("Berl")
	require.Eventually(t, func() bool { return len(fetcher.Queries()) == 2 && !a.State().IsLoading }, time.Second, 5*time.Millisecond)

	assert.Equal(t, []models.CitySuggestion{berlin}, a.State().Suggestions)
}

func TestAutocompleteSelectSuppressesRefetch(t *testing.T) {
	fetcher := &recordingFetcher{result: []models.CitySuggestion{springfield}}
	changes := &changeLog{}
	a := NewAutocomplete("", fetcher, changes.record, WithQuietPeriod(testQuiet))
	defer a.Close()

	a.Type("Spr")
	require.Eventually(t, func() bool { return len(a.State().Suggestions) == 1 }, time.Second, 5*time.Millisecond)

	a.Select(springfield)
	time.Sleep(4 * testQuiet)

	assert.Equal(t, []string{"Spr"}, fetcher.Queries(), "selection must not trigger a fetch")
	assert.Equal(t, []string{"Spr", "Springfield, Illinois"}, changes.Values())

	st := a.State()
	assert.Equal(t, "Springfield, Illinois", st.Query)
	assert.False(t, st.SuppressNextFetch, "flag is consumed by the next debounce cycle")
	assert.False(t, st.IsOpen)

	// selecting again only closes the panel
	a.Select(springfield)
	time.Sleep(4 * testQuiet)
	assert.Len(t, fetcher.Queries(), 1)
	assert.Len(t, changes.Values(), 2)
}

func TestAutocompleteOutsideClickAndUpdates(t *testing.T) {
	var mu sync.Mutex
	var updates []State
	fetcher := &recordingFetcher{result: []models.CitySuggestion{springfield}}
	a := NewAutocomplete("", fetcher, nil,
		WithQuietPeriod(testQuiet),
		WithOnUpdate(func(st State) {
			mu.Lock()
			updates = append(updates, st)
			mu.Unlock()
		}),
	)
	defer a.Close()

	a.Type("Spr")
	require.Eventually(t, func() bool { return len(a.State().Suggestions) == 1 }, time.Second, 5*time.Millisecond)

	a.OutsideClick()
	st := a.State()
	assert.False(t, st.IsOpen)
	assert.Equal(t, "Spr", st.Query)
	assert.Len(t, st.Suggestions, 1)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, updates)
	assert.False(t, updates[len(updates)-1].IsOpen)
}

func TestAutocompleteCloseCancelsPendingFetch(t *testing.T) {
	fetcher := &recordingFetcher{}
	a := NewAutocomplete("", fetcher, nil, WithQuietPeriod(testQuiet))

	a.Type("Paris")
	a.Close()
	a.Type("London")
	time.Sleep(4 * testQuiet)

	assert.Empty(t, fetcher.Queries())
}

func TestAutocompleteCloseWaitsForInflightFetch(t *testing.T) {
	started := make(chan struct{})
	var finished bool
	fetcher := FetcherFunc(func(ctx context.Context, query string) ([]models.CitySuggestion, error) {
		close(started)
		<-ctx.Done()
		finished = true
		return nil, ctx.Err()
	})
	a := NewAutocomplete("", fetcher, nil, WithQuietPeriod(testQuiet))

	a.Type("Paris")
	<-started
	a.Close()
	assert.True(t, finished)
}
