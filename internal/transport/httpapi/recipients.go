package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/cardano"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type recipientView struct {
	ID        int64     `json:"id"`
	Address   string    `json:"address"`
	Amount    uint64    `json:"amount"`
	AmountADA string    `json:"amount_ada"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func newRecipientView(r model.StoredRecipient) recipientView {
	return recipientView{
		ID:        r.ID,
		Address:   r.Address,
		Amount:    r.Amount,
		AmountADA: lovelaceToADA(r.Amount),
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
	}
}

// createRecipientRequest takes the amount in ADA, as a JSON number or string.
type createRecipientRequest struct {
	Address string           `json:"address"`
	Amount  *decimal.Decimal `json:"amount"`
}

// updateRecipientRequest distinguishes absent fields (nil) from zero values.
type updateRecipientRequest struct {
	Address *string          `json:"address"`
	Amount  *decimal.Decimal `json:"amount"`
	Active  *bool            `json:"active"`
}

func (s *Server) validateAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", errors.New("address is required")
	}
	addr, err := cardano.ParseNetworkAddress(address, s.network)
	if err != nil {
		return "", err
	}
	return addr.String(), nil
}

func (s *Server) handleListRecipients(w http.ResponseWriter, r *http.Request) {
	recipients, err := s.store.ListRecipients(r.Context())
	if err != nil {
		s.logger.Error("list recipients failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch recipients")
		return
	}
	views := make([]recipientView, 0, len(recipients))
	for _, rec := range recipients {
		views = append(views, newRecipientView(rec))
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleCreateRecipient(w http.ResponseWriter, r *http.Request) {
	var req createRecipientRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	address, err := s.validateAddress(req.Address)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Amount == nil {
		respondError(w, http.StatusBadRequest, "amount is required")
		return
	}
	amount, err := adaToLovelace(*req.Amount)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := s.store.CreateRecipient(r.Context(), model.Recipient{Address: address, Amount: amount})
	if err != nil {
		s.logger.Error("create recipient failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to create recipient")
		return
	}
	respondJSON(w, http.StatusCreated, newRecipientView(rec))
}

func (s *Server) handleUpdateRecipient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req updateRecipientRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var update model.RecipientUpdate
	if req.Address != nil {
		address, err := s.validateAddress(*req.Address)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		update.Address = &address
	}
	if req.Amount != nil {
		amount, err := adaToLovelace(*req.Amount)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		update.Amount = &amount
	}
	update.Active = req.Active
	if update.Empty() {
		respondError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	rec, err := s.store.UpdateRecipient(r.Context(), id, update)
	if errors.Is(err, model.ErrNotFound) {
		respondError(w, http.StatusNotFound, "recipient not found")
		return
	}
	if err != nil {
		s.logger.Error("update recipient failed", zap.Int64("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to update recipient")
		return
	}
	respondJSON(w, http.StatusOK, newRecipientView(rec))
}

func (s *Server) handleDeleteRecipient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	err = s.store.DeleteRecipient(r.Context(), id)
	if errors.Is(err, model.ErrNotFound) {
		respondError(w, http.StatusNotFound, "recipient not found")
		return
	}
	if err != nil {
		s.logger.Error("delete recipient failed", zap.Int64("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to delete recipient")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
