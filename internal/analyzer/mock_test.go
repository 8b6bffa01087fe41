package analyzer

import (
	"context"

	"github.com/ysuzuki/bqusage/internal/bigquery"
)

// mockClient implements bigquery.API for testing.
type mockClient struct {
	tables      map[string][]bigquery.TableSize // keyed by dataset ID
	tablesErr   map[string]error                // keyed by dataset ID
	queryRows   []bigquery.UserBytes
	queryErr    error
	queriesSeen []string
}

func newMockClient() *mockClient {
	return &mockClient{
		tables:    make(map[string][]bigquery.TableSize),
		tablesErr: make(map[string]error),
	}
}

func (m *mockClient) ListTableSizes(_ context.Context, datasetID string) ([]bigquery.TableSize, error) {
	if err, ok := m.tablesErr[datasetID]; ok {
		return nil, err
	}
	return m.tables[datasetID], nil
}

func (m *mockClient) RunUsageQuery(_ context.Context, statement string) ([]bigquery.UserBytes, error) {
	m.queriesSeen = append(m.queriesSeen, statement)
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.queryRows, nil
}

func (m *mockClient) Close() error {
	return nil
}

func makeTables(bytes ...int64) []bigquery.TableSize {
	sizes := make([]bigquery.TableSize, 0, len(bytes))
	for i, b := range bytes {
		sizes = append(sizes, bigquery.TableSize{TableID: "t" + string(rune('a'+i)), SizeBytes: b})
	}
	return sizes
}
