package stats

// Stat names used across the scheduler and executor. Kept in one place so
// dashboards don't chase renames.
const (
	SchedJobRequestsCounter      = "schedJobRequestsCounter"
	SchedJobsAcceptedCounter     = "schedJobsAcceptedCounter"
	SchedJobsCompletedCounter    = "schedJobsCompletedCounter"
	SchedJobsFailedCounter       = "schedJobsFailedCounter"
	SchedJobsCanceledCounter     = "schedJobsCanceledCounter"
	SchedTasksAssignedCounter    = "schedTasksAssignedCounter"
	SchedTasksRequeuedCounter    = "schedTasksRequeuedCounter"
	SchedStaleTransitionCounter  = "schedStaleTransitionCounter"
	SchedExecutorsEvictedCounter = "schedExecutorsEvictedCounter"
	SchedStepLatency_ms          = "schedStepLatency_ms"
	SchedAssignLatency_ms        = "schedAssignLatency_ms"
	SchedReadyTasksGauge         = "schedReadyTasksGauge"
	SchedActiveExecutorsGauge    = "schedActiveExecutorsGauge"
	SchedLeaderGauge             = "schedLeaderGauge"

	ExecTasksLaunchedCounter = "execTasksLaunchedCounter"
	ExecTasksRejectedCounter = "execTasksRejectedCounter"
	ExecTasksFailedCounter   = "execTasksFailedCounter"
	ExecTaskLatency_ms       = "execTaskLatency_ms"
	ExecRunningTasksGauge    = "execRunningTasksGauge"
)
