package bigquery

import (
	"context"
	"fmt"
	"log/slog"

	bq "cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// TableSize is the stored byte count of a single table.
type TableSize struct {
	TableID   string
	SizeBytes int64
}

// UserBytes is one row of the job-history aggregation: a user and the total
// bytes their queries processed.
type UserBytes struct {
	UserEmail string
	Bytes     int64
}

// API defines the subset of the BigQuery service used by the analyzers.
type API interface {
	ListTableSizes(ctx context.Context, datasetID string) ([]TableSize, error)
	RunUsageQuery(ctx context.Context, statement string) ([]UserBytes, error)
	Close() error
}

// Client implements API using the real BigQuery SDK.
type Client struct {
	inner   *bq.Client
	project string
}

// NewClient creates a BigQuery client authenticated with a service-account
// key file. An empty keyFile falls back to application default credentials.
func NewClient(ctx context.Context, project, keyFile string) (*Client, error) {
	var opts []option.ClientOption
	if keyFile != "" {
		opts = append(opts, option.WithCredentialsFile(keyFile))
	}
	c, err := bq.NewClient(ctx, project, opts...)
	if err != nil {
		return nil, fmt.Errorf("create bigquery client: %w", err)
	}
	return &Client{inner: c, project: project}, nil
}

// Close releases client resources.
func (c *Client) Close() error {
	return c.inner.Close()
}

// ListTableSizes returns the stored byte count of every table in a dataset.
// Tables without size metadata report zero bytes.
func (c *Client) ListTableSizes(ctx context.Context, datasetID string) ([]TableSize, error) {
	it := c.inner.DatasetInProject(c.project, datasetID).Tables(ctx)

	var sizes []TableSize
	for {
		table, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list tables in %s: %w", datasetID, err)
		}

		md, err := table.Metadata(ctx)
		if err != nil {
			return nil, fmt.Errorf("table metadata %s.%s: %w", datasetID, table.TableID, err)
		}
		sizes = append(sizes, TableSize{TableID: table.TableID, SizeBytes: md.NumBytes})
	}

	slog.Debug("Listed dataset tables", "dataset", datasetID, "count", len(sizes))
	return sizes, nil
}

// RunUsageQuery executes an aggregation statement and decodes rows of
// (user_email, total_bytes_processed). A NULL byte count decodes as zero.
func (c *Client) RunUsageQuery(ctx context.Context, statement string) ([]UserBytes, error) {
	it, err := c.inner.Query(statement).Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("run usage query: %w", err)
	}

	var rows []UserBytes
	for {
		var row struct {
			UserEmail           string       `bigquery:"user_email"`
			TotalBytesProcessed bq.NullInt64 `bigquery:"total_bytes_processed"`
		}
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read usage query row: %w", err)
		}

		var bytes int64
		if row.TotalBytesProcessed.Valid {
			bytes = row.TotalBytesProcessed.Int64
		}
		rows = append(rows, UserBytes{UserEmail: row.UserEmail, Bytes: bytes})
	}

	slog.Debug("Usage query complete", "rows", len(rows))
	return rows, nil
}
