package domain

import "time"

// FailedMember records a single identifier whose extraction attempt raised a
// terminal error during a batch run.
type FailedMember struct {
	MemberID int    `json:"memberId"`
	Error    string `json:"error"`
}

type BatchSummary struct {
	TotalProcessed int       `json:"totalProcessed"`
	SuccessCount   int       `json:"successCount"`
	FailureCount   int       `json:"failureCount"`
	ElapsedMs      int64     `json:"elapsedMs"`
	CompletedAt    time.Time `json:"completedAt"`
}

// BatchResult aggregates one range run. Ordering inside Successful and Failed
// follows task completion, not identifier order.
type BatchResult struct {
	Successful []*MemberRecord `json:"successful"`
	Failed     []FailedMember  `json:"failed"`
	Summary    BatchSummary    `json:"summary"`
}

// MetricsSnapshot is a point-in-time view of the engine's running counters.
type MetricsSnapshot struct {
	TotalRequests         int64   `json:"totalRequests"`
	SuccessfulExtractions int64   `json:"successfulExtractions"`
	FailedExtractions     int64   `json:"failedExtractions"`
	CacheHits             int64   `json:"cacheHits"`
	AverageProcessingTime float64 `json:"averageProcessingTime"`
	CacheSize             int     `json:"cacheSize"`
}
