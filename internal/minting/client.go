// Package minting is the client of the external minting service that issues
// trial NFTs from the house wallet.
package minting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/eva-gallery/eva-nft/internal/adapter"
	"github.com/eva-gallery/eva-nft/internal/domain"
	"github.com/eva-gallery/eva-nft/internal/logger"
)

// Client defines the interface of the minting service
//
//go:generate mockgen -source=client.go -destination=../mocks/minting_client.go -package=mocks -mock_names=Client=MockMintingClient
type Client interface {
	// Mint submits an artwork for minting. A response without a token ID or a
	// metadata locator is returned as is; the caller decides what it means.
	Mint(ctx context.Context, req MintRequest) (*MintResponse, error)

	// HouseCollectionID returns the external ID of the house wallet's default collection
	HouseCollectionID(ctx context.Context) (string, error)

	// HouseWalletAddress returns the address of the house wallet
	HouseWalletAddress(ctx context.Context) (string, error)

	// FetchMetadata dereferences a metadata locator
	FetchMetadata(ctx context.Context, url string) (*TokenMetadata, error)
}

// Config holds the minting client configuration
type Config struct {
	// URL is the base URL of the minting service
	URL string
	// Timeout bounds the mint request, including the wait for a rate limit slot
	Timeout time.Duration
	// MintsPerMinute caps outgoing mint requests; zero disables the limit
	MintsPerMinute int
}

// MintRequest is the artwork submitted for minting
type MintRequest struct {
	Name        string
	Description string
	Image       []byte
	MimeType    string
}

// MintResponse is the answer of the mint endpoint
type MintResponse struct {
	NFTID       *FlexString `json:"nftID"`
	MetadataCID *FlexString `json:"metadataCid"`
}

// Complete reports whether the response carries both a token ID and a metadata locator
func (r *MintResponse) Complete() bool {
	return r != nil &&
		r.NFTID != nil && *r.NFTID != "" &&
		r.MetadataCID != nil && *r.MetadataCID != ""
}

// TokenMetadata is the metadata document a locator points to
type TokenMetadata struct {
	Description string `json:"description"`
	Image       string `json:"image"`
}

// FlexString accepts a JSON string or number
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (s *FlexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(data))
	}
	*s = FlexString(num.String())
	return nil
}

type client struct {
	http    adapter.HTTPClient
	config  Config
	limiter *rate.Limiter
}

// NewClient creates a new minting service client
func NewClient(httpClient adapter.HTTPClient, config Config) Client {
	c := &client{
		http:   httpClient,
		config: config,
	}
	if config.MintsPerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(config.MintsPerMinute)), 1)
	}
	return c
}

func (c *client) endpoint(path string) string {
	return strings.TrimRight(c.config.URL, "/") + path
}

// Mint submits an artwork for minting
func (c *client) Mint(ctx context.Context, req MintRequest) (*MintResponse, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: waiting for mint slot: %v", domain.ErrExternalService, err)
		}
	}

	body, contentType, err := encodeMintForm(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode mint request: %w", err)
	}

	respBody, err := c.http.Put(ctx, c.endpoint("/trial/mint"), contentType, body)
	if err != nil {
		return nil, fmt.Errorf("%w: mint request: %v", domain.ErrExternalService, err)
	}

	var resp MintResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode mint response: %v", domain.ErrExternalService, err)
	}

	logger.InfoCtx(ctx, "Mint request answered",
		zap.String("name", req.Name),
		zap.Bool("complete", resp.Complete()),
	)

	return &resp, nil
}

// HouseCollectionID returns the external ID of the house wallet's default collection
func (c *client) HouseCollectionID(ctx context.Context) (string, error) {
	return c.getText(ctx, "/eva/wallet/collection")
}

// HouseWalletAddress returns the address of the house wallet
func (c *client) HouseWalletAddress(ctx context.Context) (string, error) {
	return c.getText(ctx, "/eva/wallet/address")
}

func (c *client) getText(ctx context.Context, path string) (string, error) {
	text, err := c.http.GetText(ctx, c.endpoint(path))
	if err != nil {
		return "", fmt.Errorf("%w: GET %s: %v", domain.ErrExternalService, path, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: GET %s: empty response", domain.ErrExternalService, path)
	}

	return text, nil
}

// FetchMetadata dereferences a metadata locator
func (c *client) FetchMetadata(ctx context.Context, url string) (*TokenMetadata, error) {
	var metadata TokenMetadata
	if err := c.http.GetJSON(ctx, url, &metadata); err != nil {
		return nil, fmt.Errorf("%w: fetch metadata %s: %v", domain.ErrExternalService, url, err)
	}
	return &metadata, nil
}

// encodeMintForm builds the multipart body with the file, name and metadata fields.
// The file content type falls back to sniffing when none is stored.
func encodeMintForm(req MintRequest) ([]byte, string, error) {
	mimeType := req.MimeType
	detected := mimetype.Detect(req.Image)
	if mimeType == "" {
		mimeType = detected.String()
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename=`+strconv.Quote("artwork"+detected.Extension()))
	header.Set("Content-Type", mimeType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(req.Image); err != nil {
		return nil, "", err
	}

	if err := w.WriteField("name", req.Name); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("metadata", req.Description); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
