package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// Client wraps the Firestore SDK client for reuse across repositories
type Client struct {
	fs         *firestore.Client
	projectID  string
	databaseID string
}

// Config holds Firestore connection configuration
type Config struct {
	ProjectID       string
	DatabaseID      string
	CredentialsPath string
	CredentialsJSON []byte
}

// NewClient creates a Firestore client. An empty ProjectID is detected from
// the credentials; without explicit credentials Application Default
// Credentials are used. FIRESTORE_EMULATOR_HOST is honoured by the SDK.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	projectID := cfg.ProjectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	databaseID := cfg.DatabaseID
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	} else if len(cfg.CredentialsJSON) > 0 {
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	}

	fs, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: failed to create client: %w", err)
	}

	return &Client{
		fs:         fs,
		projectID:  projectID,
		databaseID: databaseID,
	}, nil
}

// Firestore returns the underlying SDK client for repository use
func (c *Client) Firestore() *firestore.Client {
	return c.fs
}

// Collection returns a reference to a top-level collection
func (c *Client) Collection(name string) *firestore.CollectionRef {
	return c.fs.Collection(name)
}

// DatabaseID reports which database the client is bound to
func (c *Client) DatabaseID() string {
	return c.databaseID
}

// Close releases the underlying gRPC connection
func (c *Client) Close() error {
	if c.fs != nil {
		return c.fs.Close()
	}
	return nil
}
