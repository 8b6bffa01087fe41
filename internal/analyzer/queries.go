package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ysuzuki/bqusage/internal/bigquery"
	"github.com/ysuzuki/bqusage/internal/pricing"
)

// timestampLayout matches the TIMESTAMP literal format accepted by BigQuery.
const timestampLayout = "2006-01-02T15:04:05"

// QueryAnalyzer computes per-user query usage over a trailing 24-hour window.
type QueryAnalyzer struct {
	client  bigquery.API
	project string
	region  string
	rates   pricing.Rates
	now     func() time.Time // injectable for testing
}

// NewQueryAnalyzer creates an analyzer for the given project and region.
func NewQueryAnalyzer(client bigquery.API, project, region string, rates pricing.Rates) *QueryAnalyzer {
	return &QueryAnalyzer{
		client:  client,
		project: project,
		region:  region,
		rates:   rates,
		now:     time.Now,
	}
}

// Analyze aggregates job-history bytes processed per user for the last 24
// hours, ordered by volume descending. Any execution failure degrades to an
// empty summary; it never fails the run.
func (a *QueryAnalyzer) Analyze(ctx context.Context) QuerySummary {
	end := a.now().UTC()
	start := end.Add(-24 * time.Hour)

	rows, err := a.client.RunUsageQuery(ctx, buildUsageQuery(a.project, a.region, start, end))
	if err != nil {
		slog.Error("Query usage analysis failed, reporting empty summary", "error", err)
		return emptyQuerySummary()
	}

	users := make([]UserQueryUsage, 0, len(rows))
	var totalBytes int64

	for _, row := range rows {
		totalBytes += row.Bytes
		users = append(users, a.userUsage(row.UserEmail, row.Bytes))
	}

	totalTB, totalUSD, totalJPY := a.rates.QueryCost(totalBytes)
	return QuerySummary{
		Users:               users,
		TotalBytesProcessed: totalBytes,
		TotalTBProcessed:    pricing.RoundTo(totalTB, 6),
		TotalCostUSD:        pricing.RoundTo(totalUSD, 2),
		TotalCostJPY:        pricing.RoundTo(totalJPY, 2),
	}
}

func (a *QueryAnalyzer) userUsage(email string, bytes int64) UserQueryUsage {
	tb, usd, jpy := a.rates.QueryCost(bytes)
	return UserQueryUsage{
		UserEmail:      email,
		BytesProcessed: bytes,
		TBProcessed:    pricing.RoundTo(tb, 6),
		CostUSD:        pricing.RoundTo(usd, 2),
		CostJPY:        pricing.RoundTo(jpy, 2),
	}
}

// buildUsageQuery returns the aggregation statement over the project's
// job-history view for the given window, bounds inclusive.
func buildUsageQuery(project, region string, start, end time.Time) string {
	view := fmt.Sprintf("`%s.region-%s.INFORMATION_SCHEMA.JOBS_BY_PROJECT`", project, region)
	return fmt.Sprintf(`SELECT
    user_email,
    SUM(total_bytes_processed) AS total_bytes_processed
FROM
    %s
WHERE
    creation_time >= TIMESTAMP('%s')
    AND creation_time <= TIMESTAMP('%s')
    AND job_type = 'QUERY'
    AND state = 'DONE'
    AND total_bytes_processed IS NOT NULL
    AND user_email IS NOT NULL
GROUP BY user_email
ORDER BY total_bytes_processed DESC`,
		view, start.Format(timestampLayout), end.Format(timestampLayout))
}

func emptyQuerySummary() QuerySummary {
	return QuerySummary{Users: []UserQueryUsage{}}
}
