// backend/internal/domain/scraper.go
package domain

// Card is the raw extraction of a single listing card. The Has* flags tell
// a missing element apart from one that is present with empty text.
type Card struct {
	Title       string
	HasTitle    bool
	Deadline    string
	HasDeadline bool
	Link        string
	HasLink     bool
}

type OutcomeKind int

const (
	OutcomeMatched OutcomeKind = iota
	OutcomeEmptyMatch
	OutcomeTransportFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMatched:
		return "matched"
	case OutcomeEmptyMatch:
		return "empty_match"
	case OutcomeTransportFailure:
		return "transport_failure"
	}
	return "unknown"
}

// Outcome is the result of one collection attempt against a site.
// Cards is only set for OutcomeMatched and Err only for OutcomeTransportFailure.
type Outcome struct {
	Kind  OutcomeKind
	URL   string
	Cards []Card
	Err   error
}

func Matched(url string, cards []Card) Outcome {
	if len(cards) == 0 {
		return EmptyMatch(url)
	}
	return Outcome{Kind: OutcomeMatched, URL: url, Cards: cards}
}

func EmptyMatch(url string) Outcome {
	return Outcome{Kind: OutcomeEmptyMatch, URL: url}
}

func TransportFailure(url string, err error) Outcome {
	return Outcome{Kind: OutcomeTransportFailure, URL: url, Err: err}
}
