package httpapi

import (
	"context"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RecipientStore interface {
		ListRecipients(ctx context.Context) ([]model.StoredRecipient, error)
		CreateRecipient(ctx context.Context, recipient model.Recipient) (model.StoredRecipient, error)
		UpdateRecipient(ctx context.Context, id int64, update model.RecipientUpdate) (model.StoredRecipient, error)
		DeleteRecipient(ctx context.Context, id int64) error
		Transactions(ctx context.Context, limit int) ([]model.TransactionRecord, error)
	}
	PayrollTrigger interface {
		Trigger(ctx context.Context, source model.TriggerSource) (model.RunResult, error)
		Running() bool
	}
	NetworkInspector interface {
		NetworkInfo(ctx context.Context) (model.NetworkInfo, error)
		AddressBalance(ctx context.Context, address string) (model.AddressBalance, error)
		Transaction(ctx context.Context, hash string) (model.TransactionInfo, error)
	}
	RunHistory interface {
		Runs(ctx context.Context, network model.Network, limit int) ([]model.RunRecord, error)
	}
	RequestMetrics interface {
		ObserveRequest(route string, code int, started time.Time)
	}
)
