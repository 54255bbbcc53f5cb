package trialmint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eva-gallery/eva-nft/internal/store/schema"
)

func TestComposeDescription(t *testing.T) {
	tests := []struct {
		name     string
		artwork  *schema.Artwork
		expected string
	}{
		{
			name: "all fields",
			artwork: &schema.Artwork{
				Description:  "A quiet evening",
				Artist:       &schema.Artist{Name: "Jane Doe"},
				Year:         2021,
				Genre:        "Landscape",
				Material:     "Oil",
				Technique:    "Impasto",
				Worktype:     "Painting",
				Measurements: "50x70 cm",
			},
			expected: "Description: A quiet evening, Artist: Jane Doe, Year: 2021, Genre: Landscape, " +
				"Material: Oil, Technique: Impasto, Worktype: Painting, Measurements: 50x70 cm",
		},
		{
			name: "missing fields are skipped",
			artwork: &schema.Artwork{
				Artist:       &schema.Artist{Name: "Jane Doe"},
				Material:     "Oil",
				Measurements: "50x70 cm",
			},
			expected: "Artist: Jane Doe, Material: Oil, Measurements: 50x70 cm",
		},
		{
			name:     "no artist loaded",
			artwork:  &schema.Artwork{Year: 1999},
			expected: "Year: 1999",
		},
		{
			name:     "nothing to describe",
			artwork:  &schema.Artwork{Name: "Untitled"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComposeDescription(tt.artwork))
		})
	}
}
