package dto

// StatsDTO is the dashboard rollup. Field names match what the dashboard
// chart widgets consume.
type StatsDTO struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalRoles      int64 `json:"totalRoles"`
	TotalTasks      int64 `json:"totalTasks"`
	CompletedTasks  int64 `json:"completedTasks"`
	PendingTasks    int64 `json:"pendingTasks"`
	InProgressTasks int64 `json:"inProgressTasks"`
}
