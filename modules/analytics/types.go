package analytics

// GetSummaryRequest is the request for computing the analytics summary.
type GetSummaryRequest struct{}

// Summary holds the derived statistics over a single task snapshot.
type Summary struct {
	TotalTasks        int            `json:"total_tasks"`
	CompletedTasks    int            `json:"completed_tasks"`
	InProgressTasks   int            `json:"in_progress_tasks"`
	CompletionRate    float64        `json:"completion_rate"`
	AvgCompletionTime float64        `json:"avg_completion_time"`
	TasksByCategory   map[string]int `json:"tasks_by_category"`
	TasksByPriority   map[string]int `json:"tasks_by_priority"`
	DailyCompletions  map[string]int `json:"daily_completions"`
}
