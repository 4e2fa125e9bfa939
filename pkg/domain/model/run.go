package model

import "time"

type WorkflowStatus string

const (
	WorkflowStatusQueued     WorkflowStatus = "queued"
	WorkflowStatusInProgress WorkflowStatus = "in_progress"
	WorkflowStatusCompleted  WorkflowStatus = "completed"
)

type WorkflowConclusion string

const (
	WorkflowConclusionSuccess   WorkflowConclusion = "success"
	WorkflowConclusionFailure   WorkflowConclusion = "failure"
	WorkflowConclusionCancelled WorkflowConclusion = "cancelled"
	WorkflowConclusionSkipped   WorkflowConclusion = "skipped"
	WorkflowConclusionTimedOut  WorkflowConclusion = "timed_out"
)

// WorkflowRun is a snapshot of one workflow execution. Conclusion is
// meaningful only while Status is completed; any other status means the
// outcome is not yet decided.
type WorkflowRun struct {
	ID         int64
	HeadSHA    string
	Status     WorkflowStatus
	Conclusion WorkflowConclusion
	URL        string
	CreatedAt  time.Time
}

// Decided reports whether the run has reached a terminal status.
func (r *WorkflowRun) Decided() bool {
	return r.Status == WorkflowStatusCompleted
}

// Succeeded reports whether the run completed with a success conclusion.
func (r *WorkflowRun) Succeeded() bool {
	return r.Decided() && r.Conclusion == WorkflowConclusionSuccess
}
