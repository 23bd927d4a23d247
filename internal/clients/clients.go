// Package clients groups the external service clients handed to route registration.
package clients

import (
	"context"
	"fmt"

	"github.com/DhavalSuthar-24/nfteams-api/config"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/gameapi"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/metadata"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/nft"
)

// Clients is built once at startup and shared by every request.
type Clients struct {
	NFT      nft.Lookup
	Games    gameapi.Fetcher
	Metadata metadata.Source
}

func New(ctx context.Context, cfg *config.Config) (*Clients, error) {
	md, err := metadata.NewClient(ctx, metadata.Options{
		Bucket:          cfg.Metadata.Bucket,
		Region:          cfg.Metadata.Region,
		Endpoint:        cfg.Metadata.Endpoint,
		AccessKeyID:     cfg.Metadata.AccessKeyID,
		AccessKeySecret: cfg.Metadata.AccessKeySecret,
		Timeout:         cfg.App.ExternalTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("metadata client: %w", err)
	}

	return &Clients{
		NFT:      nft.NewClient(cfg.NFT.BaseURL, cfg.NFT.APIKey, cfg.NFT.ContractAddress, cfg.NFT.RequestsPerSecond, cfg.App.ExternalTimeout),
		Games:    gameapi.NewClient(cfg.GameAPI.BaseURL, cfg.App.ExternalTimeout),
		Metadata: md,
	}, nil
}
