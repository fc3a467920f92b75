// Command locate is a terminal client for the city autocomplete. Each input
// line is treated as the new content of the location field; after the quiet
// period the suggestions are printed. ":N" picks suggestion N, ":x" closes the
// dropdown and ":q" quits.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/R3Claimers/InsiderJobs/apiclient"
	"github.com/R3Claimers/InsiderJobs/location"
	"github.com/R3Claimers/InsiderJobs/utils"
)

const (
	defaultBaseURL = "http://localhost:5000"
	defaultTimeout = 10 * time.Second
)

func main() {
	var (
		baseURL = flag.String("url", defaultBaseURL, "Base URL of the InsiderJobs API")
		quiet   = flag.Duration("quiet", location.DefaultQuietPeriod, "Quiet period before a lookup is issued")
		timeout = flag.Duration("timeout", defaultTimeout, "Lookup timeout")
		initial = flag.String("value", "", "Initial value of the location field")
	)
	flag.Parse()

	client := &apiclient.LocationsClient{
		BaseURL:    *baseURL,
		HTTPClient: utils.NewHTTPClient(*timeout, "insiderjobs-locate/1.0"),
	}

	ac := location.NewAutocomplete(*initial, client,
		func(v string) { fmt.Printf("value: %q\n", v) },
		location.WithQuietPeriod(*quiet),
		location.WithFetchTimeout(*timeout),
		location.WithOnUpdate(printState),
	)
	defer ac.Close()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == ":q":
			return
		case line == ":x":
			ac.OutsideClick()
		case strings.HasPrefix(line, ":"):
			n, err := strconv.Atoi(strings.TrimPrefix(line, ":"))
			suggestions := ac.State().Suggestions
			if err != nil || n < 1 || n > len(suggestions) {
				fmt.Fprintf(os.Stderr, "no suggestion %s\n", strings.TrimPrefix(line, ":"))
				continue
			}
			ac.Select(suggestions[n-1])
		default:
			ac.Type(line)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
}

func printState(st location.State) {
	switch {
	case st.IsLoading:
		fmt.Println("loading...")
	case st.IsOpen:
		for i, c := range st.Suggestions {
			fmt.Printf("  %d. %s (%s)\n", i+1, c.Display, c.Country)
		}
	}
}
