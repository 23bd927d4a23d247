// Package metadata reads per-team metadata documents (name, image) from the
// team metadata bucket.
package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when the bucket has no document for a team.
var ErrNotFound = errors.New("metadata: team not found")

const nameFanOutLimit = 16

type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image"`
}

type Source interface {
	Team(ctx context.Context, id scoring.TeamID) (*Metadata, error)
}

type Options struct {
	Bucket          string
	Region          string
	Endpoint        string // optional, switches to path-style addressing
	AccessKeyID     string
	AccessKeySecret string
	Timeout         time.Duration
}

type Client struct {
	s3     *s3.Client
	bucket string
}

// NewClient builds an S3 backed metadata source. Without keys requests are
// sent unsigned, which is how the public bucket is read.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	var creds aws.CredentialsProvider = aws.AnonymousCredentials{}
	if opts.AccessKeyID != "" {
		creds = credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.AccessKeySecret, "")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(creds),
		config.WithHTTPClient(awshttp.NewBuildableClient().WithTimeout(opts.Timeout)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load metadata bucket config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})
	return &Client{s3: client, bucket: opts.Bucket}, nil
}

// Team reads the document stored under the team id.
func (c *Client) Team(ctx context.Context, id scoring.TeamID) (*Metadata, error) {
	out, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(id.String()),
	})
	if err != nil {
		if isMissing(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("metadata: get team %s: %w", id, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("metadata: read team %s: %w", id, err)
	}
	var md Metadata
	if err := json.Unmarshal(body, &md); err != nil {
		return nil, fmt.Errorf("metadata: decode team %s: %w", id, err)
	}
	return &md, nil
}

// A public bucket answers 403 rather than 404 for keys it does not have.
func isMissing(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var re *awshttp.ResponseError
	if errors.As(err, &re) {
		code := re.HTTPStatusCode()
		return code == http.StatusNotFound || code == http.StatusForbidden
	}
	return false
}

// FallbackName is the display name used when a team has no readable metadata.
func FallbackName(id scoring.TeamID) string {
	return fmt.Sprintf("Team %s", id)
}

// Names looks up display names concurrently. A failed or empty lookup falls
// back to FallbackName and never fails the batch.
func Names(ctx context.Context, src Source, ids []scoring.TeamID, log *zap.Logger) map[scoring.TeamID]string {
	names := make(map[scoring.TeamID]string, len(ids))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(nameFanOutLimit)
	for _, id := range ids {
		mu.Lock()
		_, dup := names[id]
		if !dup {
			names[id] = FallbackName(id)
		}
		mu.Unlock()
		if dup {
			continue
		}
		id := id
		g.Go(func() error {
			md, err := src.Team(ctx, id)
			if err != nil {
				log.Warn("team name lookup failed", zap.Stringer("team_id", id), zap.Error(err))
				return nil
			}
			if md.Name == "" {
				return nil
			}
			mu.Lock()
			names[id] = md.Name
			mu.Unlock()
			return nil
		})
	}
	g.Wait()
	return names
}
