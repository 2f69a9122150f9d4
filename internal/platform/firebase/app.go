package firebase

import (
	"context"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Config selects the project, database and credentials for the store.
type Config struct {
	// ProjectID is the Google Cloud project hosting the Firestore database.
	ProjectID string
	// DatabaseID names a non-default Firestore database; empty selects "(default)".
	DatabaseID string
	// GoogleApplicationCredentials optionally points at a service account
	// JSON file; when empty, ambient credentials are used.
	GoogleApplicationCredentials string
}

// Clients bundles the long-lived store handles created at startup. The
// Firestore client is shared process-wide and passed to repositories at
// construction time.
type Clients struct {
	Firestore *firestore.Client
}

// InitializeClients connects to Firestore per cfg.
func InitializeClients(ctx context.Context, cfg Config) (*Clients, error) {
	var opts []option.ClientOption
	if cfg.GoogleApplicationCredentials != "" {
		creds, err := os.ReadFile(cfg.GoogleApplicationCredentials)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	// The Firebase SDK only opens the default database, so named databases
	// go through the Firestore client directly.
	if cfg.DatabaseID != "" && cfg.DatabaseID != firestore.DefaultDatabaseID {
		fc, err := firestore.NewClientWithDatabase(ctx, cfg.ProjectID, cfg.DatabaseID, opts...)
		if err != nil {
			return nil, err
		}
		return &Clients{Firestore: fc}, nil
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, err
	}
	fc, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}
	return &Clients{Firestore: fc}, nil
}

// Close releases the store handles. Call once during shutdown.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
