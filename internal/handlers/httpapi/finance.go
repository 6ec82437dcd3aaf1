package httpapi

import (
	"net/http"

	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/finance"
)

type recordTransactionRequest struct {
	Amount      float64                `json:"amount"`
	Description string                 `json:"description"`
	Type        models.TransactionType `json:"type"`
}

type ledgerResponse struct {
	Transactions []*models.Transaction `json:"transactions"`
	TotalIncome  float64               `json:"total_income"`
	TotalExpense float64               `json:"total_expense"`
	Balance      float64               `json:"balance"`
}

type transactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
}

func (h *Handler) handleGetLedger(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	out, err := h.financeService.GetLedger(r.Context(), &finance.GetLedgerInput{Actor: actor})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &ledgerResponse{
		Transactions: out.Transactions,
		TotalIncome:  out.TotalIncome,
		TotalExpense: out.TotalExpense,
		Balance:      out.Balance,
	})
}

func (h *Handler) handleRecordTransaction(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req recordTransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.financeService.RecordTransaction(r.Context(), &finance.RecordTransactionInput{
		Actor:       actor,
		Amount:      req.Amount,
		Description: req.Description,
		Type:        req.Type,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &transactionResponse{Transaction: out.Transaction})
}
