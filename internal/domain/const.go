package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY = "https://flk-ipfs.xyz"

	// Link constants
	DEFAULT_KODADOT_URL = "https://kodadot.xyz/ahp"
	DEFAULT_SUBSCAN_URL = "https://assethub-polkadot.subscan.io"

	// Separator between the collection part and the token part of an NFT external ID
	EXTERNAL_ID_SEPARATOR = "-"
)
