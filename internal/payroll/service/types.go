package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RecipientSource interface {
		ActiveRecipients(ctx context.Context) ([]model.Recipient, error)
	}
	LedgerProvider interface {
		UnspentOutputs(ctx context.Context, address string) ([]model.UnspentOutput, error)
		ProtocolParameters(ctx context.Context) (model.ProtocolParameters, error)
		TipSlot(ctx context.Context) (uint64, error)
		Transaction(ctx context.Context, hash string) (model.TransactionInfo, error)
	}
	Transport interface {
		SubmitTransaction(ctx context.Context, tx []byte) (string, error)
	}
	TransactionLog interface {
		RecordTransactionHash(ctx context.Context, hash string) (model.RecordStatus, error)
	}
	TransactionBuilder interface {
		Build(utxos []model.UnspentOutput, recipients []model.Recipient, params model.ProtocolParameters, tip uint64) (*model.TransactionDraft, error)
	}
	TransactionSigner interface {
		Address() string
		Sign(draft *model.TransactionDraft) (*model.SignedTransaction, error)
	}
	TransactionSubmitter interface {
		Submit(ctx context.Context, tx *model.SignedTransaction) (string, error)
	}
	EventPublisher interface {
		PublishSubmitted(ctx context.Context, event model.TransactionSubmitted) error
	}
	RunJournal interface {
		Record(ctx context.Context, record model.RunRecord) error
	}
	PayrollRunner interface {
		RunPayroll(ctx context.Context, trigger model.TriggerSource) (model.RunResult, error)
	}
	Lock interface {
		TryLock(ctx context.Context) (bool, error)
		Unlock(ctx context.Context) error
	}
	Schedule interface {
		Next(t time.Time) time.Time
	}

	SubmitterMetrics interface {
		ObserveAttempt(err error)
	}
	RunnerMetrics interface {
		ObserveRun(status model.RunStatus, started time.Time)
		ObserveStep(step string, err error, started time.Time)
		ObservePaid(result model.RunResult)
	}
	SchedulerMetrics interface {
		ObserveTrigger(source model.TriggerSource, outcome string)
		SetRunning(running bool)
	}
)
