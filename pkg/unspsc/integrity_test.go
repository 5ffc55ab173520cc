package unspsc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIntegrity_CompiledRegistry(t *testing.T) {
	require.NoError(t, CheckIntegrity())
}

func TestCheckIntegrity_EverySegmentTitled(t *testing.T) {
	for _, seg := range Segments() {
		title, ok := SegmentTitle(seg)
		assert.True(t, ok, "segment %s has no title", seg)
		assert.NotEmpty(t, title)
	}
}

func TestCheckEntries_Violations(t *testing.T) {
	restricted := map[string]bool{"82": true, "50": true}
	allowed := map[string]bool{"50": true, "72": true}
	entries := []Entry{
		{Code: "50201506", Description: "Fresh vegetables"},
		{Code: "50201506", Description: "Fresh vegetables again"},
		{Code: "5020150A", Description: "Bad digit"},
		{Code: "7210", Description: "Too short"},
		{Code: "72101620", Description: ""},
		{Code: "61100101", Description: "Uncovered segment"},
	}

	err := checkEntries(entries, restricted, allowed)
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok, "expected joined error, got %T", err)

	problems := make(map[string]string)
	for _, e := range joined.Unwrap() {
		var ie *IntegrityError
		require.True(t, errors.As(e, &ie))
		problems[ie.Key+" "+ie.Problem] = ie.Key
	}

	assert.Contains(t, problems, "50 segment is both restricted and allowed")
	assert.Contains(t, problems, "50201506 duplicate code")
	assert.Contains(t, problems, "5020150A code must be 8 decimal digits")
	assert.Contains(t, problems, "7210 code must be 8 decimal digits")
	assert.Contains(t, problems, "72101620 empty description")
	assert.Contains(t, problems, "61 segment is neither restricted nor allowed")
	assert.Len(t, problems, 6)
}

func TestSegmentSets_Disjoint(t *testing.T) {
	for _, seg := range RestrictedSegments() {
		assert.False(t, IsAllowedSegment(seg), "segment %s in both sets", seg)
	}
	assert.Equal(t, []string{"82", "83", "84", "85", "90"}, RestrictedSegments())
}
