package httpapi

import (
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/cardano"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"go.uber.org/zap"
)

type networkInfoResponse struct {
	Network     string `json:"network"`
	BlockHeight uint64 `json:"block_height"`
	Slot        uint64 `json:"slot"`
	BlockHash   string `json:"block_hash"`
	Epoch       uint64 `json:"epoch"`
	Healthy     bool   `json:"healthy"`
}

func (s *Server) handleNetworkInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.inspector.NetworkInfo(r.Context())
	if err != nil {
		s.logger.Error("network info failed", zap.Error(err))
		respondError(w, statusFor(err), "failed to fetch network info")
		return
	}
	respondJSON(w, http.StatusOK, networkInfoResponse{
		Network:     string(info.Network),
		BlockHeight: info.BlockHeight,
		Slot:        info.Slot,
		BlockHash:   info.BlockHash,
		Epoch:       info.Epoch,
		Healthy:     info.Healthy,
	})
}

type convertAddressRequest struct {
	HexAddress string `json:"hex_address"`
}

type convertAddressResponse struct {
	Bech32Address string `json:"bech32_address"`
	HexAddress    string `json:"hex_address"`
}

// toBech32 accepts a bech32 or hex-encoded address.
func toBech32(address string) (cardano.Address, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return cardano.Address{}, errors.New("address is required")
	}
	if strings.HasPrefix(address, "addr") {
		return cardano.ParseAddress(address)
	}
	return cardano.ParseAddressHex(address)
}

func (s *Server) handleConvertAddress(w http.ResponseWriter, r *http.Request) {
	var req convertAddressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	addr, err := toBech32(req.HexAddress)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, convertAddressResponse{
		Bech32Address: addr.String(),
		HexAddress:    req.HexAddress,
	})
}

type utxoView struct {
	TxHash      string `json:"tx_hash"`
	OutputIndex uint32 `json:"output_index"`
	Lovelace    uint64 `json:"lovelace"`
}

type addressResponse struct {
	Address   string     `json:"address"`
	Lovelace  uint64     `json:"lovelace"`
	ADA       string     `json:"ada"`
	UTXOCount int        `json:"utxo_count"`
	UTXOs     []utxoView `json:"utxos"`
}

func (s *Server) handleAddress(w http.ResponseWriter, r *http.Request) {
	addr, err := toBech32(r.PathValue("address"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := cardano.ParseNetworkAddress(addr.String(), s.network); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	balance, err := s.inspector.AddressBalance(r.Context(), addr.String())
	if err != nil {
		s.logger.Error("address balance failed", zap.String("address", addr.String()), zap.Error(err))
		respondError(w, statusFor(err), "failed to fetch address")
		return
	}

	utxos := make([]utxoView, 0, len(balance.UTXOs))
	for _, u := range balance.UTXOs {
		utxos = append(utxos, utxoView{TxHash: u.TxID, OutputIndex: u.Index, Lovelace: u.Value})
	}
	respondJSON(w, http.StatusOK, addressResponse{
		Address:   balance.Address,
		Lovelace:  balance.Units,
		ADA:       lovelaceToADA(balance.Units),
		UTXOCount: len(utxos),
		UTXOs:     utxos,
	})
}

type transactionResponse struct {
	Hash        string `json:"hash"`
	BlockHash   string `json:"block_hash"`
	BlockHeight uint64 `json:"block_height"`
	BlockTime   string `json:"block_time,omitempty"`
	Slot        uint64 `json:"slot"`
	Fee         uint64 `json:"fee_lovelace"`
	FeeADA      string `json:"fee_ada"`
	Output      uint64 `json:"output_lovelace"`
	Size        uint64 `json:"size"`
	Valid       bool   `json:"valid"`
}

func (s *Server) handleTransaction(w http.ResponseWriter, r *http.Request) {
	hash := strings.ToLower(r.PathValue("hash"))
	if raw, err := hex.DecodeString(hash); err != nil || len(raw) != 32 {
		respondError(w, http.StatusBadRequest, "transaction hash must be 64 hex characters")
		return
	}

	info, err := s.inspector.Transaction(r.Context(), hash)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respondError(w, http.StatusNotFound, "transaction not found on chain")
			return
		}
		s.logger.Error("transaction lookup failed", zap.String("tx_hash", hash), zap.Error(err))
		respondError(w, statusFor(err), "failed to fetch transaction")
		return
	}

	resp := transactionResponse{
		Hash:        info.Hash,
		BlockHash:   info.BlockHash,
		BlockHeight: info.BlockHeight,
		Slot:        info.Slot,
		Fee:         info.FeeUnits,
		FeeADA:      lovelaceToADA(info.FeeUnits),
		Output:      info.OutputUnits,
		Size:        info.SizeBytes,
		Valid:       info.Valid,
	}
	if !info.BlockTime.IsZero() {
		resp.BlockTime = info.BlockTime.UTC().Format(time.RFC3339)
	}
	respondJSON(w, http.StatusOK, resp)
}
