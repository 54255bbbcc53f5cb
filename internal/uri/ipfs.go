package uri

import (
	"strings"
)

// ipfsLinkPrefix is the locator form returned by the minting service
const ipfsLinkPrefix = "ipfs://ipfs/"

// ConvertIPFSLink rewrites an ipfs://ipfs/<rest> locator into <gateway>/ipfs/<rest>.
// Any other locator is returned unchanged.
func ConvertIPFSLink(link string, gateway string) string {
	rest, ok := strings.CutPrefix(link, ipfsLinkPrefix)
	if !ok {
		return link
	}

	return strings.TrimRight(gateway, "/") + "/ipfs/" + rest
}
