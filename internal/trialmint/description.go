package trialmint

import (
	"strconv"
	"strings"

	"github.com/eva-gallery/eva-nft/internal/store/schema"
)

// ComposeDescription renders the non-empty descriptive fields of an artwork
// as "<Label>: <value>" pairs joined by ", ".
func ComposeDescription(artwork *schema.Artwork) string {
	var artistName string
	if artwork.Artist != nil {
		artistName = artwork.Artist.Name
	}

	var year string
	if artwork.Year != 0 {
		year = strconv.Itoa(artwork.Year)
	}

	fields := []struct {
		label string
		value string
	}{
		{"Description", artwork.Description},
		{"Artist", artistName},
		{"Year", year},
		{"Genre", artwork.Genre},
		{"Material", artwork.Material},
		{"Technique", artwork.Technique},
		{"Worktype", artwork.Worktype},
		{"Measurements", artwork.Measurements},
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		parts = append(parts, f.label+": "+f.value)
	}

	return strings.Join(parts, ", ")
}
