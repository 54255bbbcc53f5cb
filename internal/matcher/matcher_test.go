package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eva-gallery/eva-nft/internal/store/schema"
)

func collections(ids ...string) []schema.Collection {
	out := make([]schema.Collection, len(ids))
	for i, id := range ids {
		out[i] = schema.Collection{ID: "row-" + id + "-" + string(rune('a'+i)), ExternalID: id}
	}
	return out
}

func TestCollectionKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"u421-10", "u421"},
		{"999-5", "999"},
		{"u421-10-3", "u421"},
		{"u421", "u421"},
		{"-5", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CollectionKey(tt.input))
		})
	}
}

func TestMatchCollection(t *testing.T) {
	candidates := collections("u420", "u421", "u422")

	got := MatchCollection("u421-10", candidates)
	require.NotNil(t, got)
	assert.Equal(t, "u421", got.ExternalID)
	assert.Same(t, &candidates[1], got)

	assert.Nil(t, MatchCollection("999-5", candidates))
	assert.Nil(t, MatchCollection("u421-10", nil))
	assert.Nil(t, MatchCollection("u421-10", []schema.Collection{}))
}

func TestMatchCollectionBareID(t *testing.T) {
	candidates := collections("u420", "u421")

	got := MatchCollection("u421", candidates)
	require.NotNil(t, got)
	assert.Equal(t, "u421", got.ExternalID)

	assert.Nil(t, MatchCollection("u5", candidates))
}

func TestMatchCollectionFirstWins(t *testing.T) {
	candidates := collections("u421", "u421")

	got := MatchCollection("u421-1", candidates)
	require.NotNil(t, got)
	assert.Same(t, &candidates[0], got)
}
