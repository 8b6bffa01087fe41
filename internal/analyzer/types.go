package analyzer

// DatasetUsage is the storage footprint and monthly cost of one dataset.
// Size and cost fields are rounded for output: GB to 3 places, TB to 6,
// costs to 2.
type DatasetUsage struct {
	DatasetID string  `json:"dataset_id"`
	SizeBytes int64   `json:"size_bytes"`
	SizeGB    float64 `json:"size_gb"`
	SizeTB    float64 `json:"size_tb"`
	CostUSD   float64 `json:"cost_usd"`
	CostJPY   float64 `json:"cost_jpy"`
}

// StorageSummary aggregates dataset usage. Total costs are recomputed from
// the summed raw byte count rather than summing rounded per-dataset costs,
// so rounding drift never accumulates.
type StorageSummary struct {
	Datasets       []DatasetUsage `json:"datasets"`
	TotalSizeBytes int64          `json:"total_size_bytes"`
	TotalCostUSD   float64        `json:"total_cost_usd"`
	TotalCostJPY   float64        `json:"total_cost_jpy"`
}

// UserQueryUsage is the query volume and cost attributed to one user.
type UserQueryUsage struct {
	UserEmail      string  `json:"user_email"`
	BytesProcessed int64   `json:"bytes_processed"`
	TBProcessed    float64 `json:"tb_processed"`
	CostUSD        float64 `json:"cost_usd"`
	CostJPY        float64 `json:"cost_jpy"`
}

// QuerySummary aggregates per-user query usage over the analysis window.
// Totals follow the same raw-byte recomputation rule as StorageSummary.
type QuerySummary struct {
	Users               []UserQueryUsage `json:"users"`
	TotalBytesProcessed int64            `json:"total_bytes_processed"`
	TotalTBProcessed    float64          `json:"total_tb_processed"`
	TotalCostUSD        float64          `json:"total_cost_usd"`
	TotalCostJPY        float64          `json:"total_cost_jpy"`
}
