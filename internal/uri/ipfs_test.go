package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertIPFSLink(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		gateway  string
		expected string
	}{
		{
			name:     "ipfs locator",
			link:     "ipfs://ipfs/bafy123",
			gateway:  "https://flk-ipfs.xyz",
			expected: "https://flk-ipfs.xyz/ipfs/bafy123",
		},
		{
			name:     "ipfs locator with path",
			link:     "ipfs://ipfs/bafy123/metadata.json",
			gateway:  "https://flk-ipfs.xyz",
			expected: "https://flk-ipfs.xyz/ipfs/bafy123/metadata.json",
		},
		{
			name:     "gateway with trailing slash",
			link:     "ipfs://ipfs/bafy123",
			gateway:  "https://ipfs.io/",
			expected: "https://ipfs.io/ipfs/bafy123",
		},
		{
			name:     "bare ipfs scheme is passed through",
			link:     "ipfs://bafy123",
			gateway:  "https://flk-ipfs.xyz",
			expected: "ipfs://bafy123",
		},
		{
			name:     "http url is passed through",
			link:     "https://example.com/image.png",
			gateway:  "https://flk-ipfs.xyz",
			expected: "https://example.com/image.png",
		},
		{
			name:     "empty link",
			link:     "",
			gateway:  "https://flk-ipfs.xyz",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConvertIPFSLink(tt.link, tt.gateway))
		})
	}
}
