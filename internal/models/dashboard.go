package models

import "time"

// AdminDashboard summarises platform-wide counts for administrators.
type AdminDashboard struct {
	Students            int       `json:"students"`
	Drives              int       `json:"drives"`
	Jobs                int       `json:"jobs"`
	Colleges            int       `json:"colleges"`
	Departments         int       `json:"departments"`
	UnreadNotifications int       `json:"unread_notifications"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// SystemMetrics is a point-in-time digest of the Prometheus collectors.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	StoreQueryCount          uint64    `json:"store_query_count"`
	AverageStoreQueryMs      float64   `json:"average_store_query_ms"`
	RosterRowsAccepted       uint64    `json:"roster_rows_accepted"`
	RosterRowsRejected       uint64    `json:"roster_rows_rejected"`
	EligibilityEvaluations   uint64    `json:"eligibility_evaluations"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
