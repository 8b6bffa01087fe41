package analyzer

import (
	"context"
	"log/slog"

	"github.com/ysuzuki/bqusage/internal/bigquery"
	"github.com/ysuzuki/bqusage/internal/pricing"
)

// StorageAnalyzer computes per-dataset storage usage and monthly cost.
type StorageAnalyzer struct {
	client bigquery.API
	rates  pricing.Rates
}

// NewStorageAnalyzer creates an analyzer over the given client.
func NewStorageAnalyzer(client bigquery.API, rates pricing.Rates) *StorageAnalyzer {
	return &StorageAnalyzer{client: client, rates: rates}
}

// Analyze sums table sizes for each dataset and derives cost figures, in
// input order. A failed dataset lookup degrades to a zero-valued record and
// the batch continues; only context cancellation aborts the whole analysis.
func (a *StorageAnalyzer) Analyze(ctx context.Context, datasets []string) (StorageSummary, error) {
	usages := make([]DatasetUsage, 0, len(datasets))
	var totalBytes int64

	for _, datasetID := range datasets {
		if err := ctx.Err(); err != nil {
			return StorageSummary{Datasets: []DatasetUsage{}}, err
		}

		bytes, err := a.datasetBytes(ctx, datasetID)
		if err != nil {
			slog.Warn("Dataset lookup failed, recording zero usage", "dataset", datasetID, "error", err)
			bytes = 0
		}

		usages = append(usages, a.datasetUsage(datasetID, bytes))
		totalBytes += bytes
	}

	_, _, totalUSD, totalJPY := a.rates.StorageCost(totalBytes)
	return StorageSummary{
		Datasets:       usages,
		TotalSizeBytes: totalBytes,
		TotalCostUSD:   pricing.RoundTo(totalUSD, 2),
		TotalCostJPY:   pricing.RoundTo(totalJPY, 2),
	}, nil
}

func (a *StorageAnalyzer) datasetBytes(ctx context.Context, datasetID string) (int64, error) {
	tables, err := a.client.ListTableSizes(ctx, datasetID)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, t := range tables {
		total += t.SizeBytes
	}
	return total, nil
}

func (a *StorageAnalyzer) datasetUsage(datasetID string, bytes int64) DatasetUsage {
	gb, tb, usd, jpy := a.rates.StorageCost(bytes)
	return DatasetUsage{
		DatasetID: datasetID,
		SizeBytes: bytes,
		SizeGB:    pricing.RoundTo(gb, 3),
		SizeTB:    pricing.RoundTo(tb, 6),
		CostUSD:   pricing.RoundTo(usd, 2),
		CostJPY:   pricing.RoundTo(jpy, 2),
	}
}
