package httpapi

import (
	"net/http"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"go.uber.org/zap"
)

const maxListLimit = 1000

type runPayrollResponse struct {
	Status     string `json:"status"`
	RunID      string `json:"run_id"`
	TxHash     string `json:"tx_hash,omitempty"`
	Fee        uint64 `json:"fee"`
	Total      uint64 `json:"total"`
	TotalADA   string `json:"total_ada"`
	Recipients int    `json:"recipients"`
	TTL        uint64 `json:"ttl,omitempty"`
}

func (s *Server) handleRunPayroll(w http.ResponseWriter, r *http.Request) {
	result, err := s.payroll.Trigger(r.Context(), model.TriggerManual)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error("manual payroll run failed", zap.String("run_id", result.RunID), zap.Error(err))
		}
		respondJSON(w, status, errorResponse{Error: err.Error(), RunID: result.RunID, TxHash: result.TxHash})
		return
	}

	status := "ok"
	if result.TxHash == "" {
		status = "skipped"
	}
	respondJSON(w, http.StatusOK, runPayrollResponse{
		Status:     status,
		RunID:      result.RunID,
		TxHash:     result.TxHash,
		Fee:        result.FeeUnits,
		Total:      result.TotalUnits,
		TotalADA:   lovelaceToADA(result.TotalUnits),
		Recipients: result.RecipientCount,
		TTL:        result.TTL,
	})
}

type transactionView struct {
	ID         int64     `json:"id"`
	TxHash     string    `json:"tx_hash"`
	RecordedAt time.Time `json:"created_at"`
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, maxListLimit)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	records, err := s.store.Transactions(r.Context(), limit)
	if err != nil {
		s.logger.Error("list transactions failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}
	views := make([]transactionView, 0, len(records))
	for _, rec := range records {
		views = append(views, transactionView{ID: rec.ID, TxHash: rec.Hash, RecordedAt: rec.RecordedAt})
	}
	respondJSON(w, http.StatusOK, views)
}

type runView struct {
	RunID          string    `json:"run_id"`
	Trigger        string    `json:"trigger"`
	Status         string    `json:"status"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	TxHash         string    `json:"tx_hash,omitempty"`
	Fee            uint64    `json:"fee"`
	Total          uint64    `json:"total"`
	RecipientCount uint32    `json:"recipient_count"`
	InputCount     uint32    `json:"input_count"`
	Error          string    `json:"error,omitempty"`
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, maxListLimit)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	runs, err := s.runs.Runs(r.Context(), s.network, limit)
	if err != nil {
		s.logger.Error("list runs failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch runs")
		return
	}
	views := make([]runView, 0, len(runs))
	for _, run := range runs {
		views = append(views, runView{
			RunID:          run.RunID,
			Trigger:        string(run.Trigger),
			Status:         string(run.Status),
			StartedAt:      run.StartedAt,
			FinishedAt:     run.FinishedAt,
			TxHash:         run.TxHash,
			Fee:            run.FeeUnits,
			Total:          run.TotalUnits,
			RecipientCount: run.RecipientCount,
			InputCount:     run.InputCount,
			Error:          run.Error,
		})
	}
	respondJSON(w, http.StatusOK, views)
}
