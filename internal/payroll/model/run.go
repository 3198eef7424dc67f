package model

import "time"

// TriggerSource names what started a payroll run.
type TriggerSource string

var (
	TriggerSchedule TriggerSource = "schedule"
	TriggerManual   TriggerSource = "manual"
)

// RunStatus describes how a payroll run ended.
type RunStatus string

var (
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
	// RunSkipped marks a run that found no active recipients.
	RunSkipped RunStatus = "skipped"
)

// RunResult summarizes one payroll execution. An empty TxHash means nothing was paid.
type RunResult struct {
	RunID          string
	TxHash         string
	FeeUnits       uint64
	TotalUnits     uint64
	RecipientCount int
	InputCount     int
	TTL            uint64
}

// RunRecord is a row of the run journal.
type RunRecord struct {
	RunID          string
	Network        Network
	Trigger        TriggerSource
	Status         RunStatus
	StartedAt      time.Time
	FinishedAt     time.Time
	TxHash         string
	FeeUnits       uint64
	TotalUnits     uint64
	RecipientCount uint32
	InputCount     uint32
	Error          string
}

// TransactionSubmitted is published after a transaction hash is recorded.
type TransactionSubmitted struct {
	RunID          string    `json:"run_id"`
	Network        Network   `json:"network"`
	TxHash         string    `json:"tx_hash"`
	FeeUnits       uint64    `json:"fee"`
	TotalUnits     uint64    `json:"total"`
	RecipientCount int       `json:"recipient_count"`
	TTL            uint64    `json:"ttl"`
	SubmittedAt    time.Time `json:"submitted_at"`
}
