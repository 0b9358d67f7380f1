package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchedWithoutCardsIsEmptyMatch(t *testing.T) {
	require.Equal(t, OutcomeEmptyMatch, Matched("https://example.org", nil).Kind)
	require.Equal(t, OutcomeMatched, Matched("https://example.org", []Card{{}}).Kind)
}

func TestTransportFailureKeepsCause(t *testing.T) {
	cause := errors.New("timeout")
	o := TransportFailure("https://example.org", cause)
	require.Equal(t, OutcomeTransportFailure, o.Kind)
	require.ErrorIs(t, o.Err, cause)
	require.Equal(t, "transport_failure", o.Kind.String())
}
