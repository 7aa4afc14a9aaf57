package credits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/donyelqt/tarana-rewards/internal/domain"
	"github.com/donyelqt/tarana-rewards/internal/dto"
	creditservice "github.com/donyelqt/tarana-rewards/internal/service/creditservice"
	"github.com/donyelqt/tarana-rewards/pkg/auth"
	"github.com/donyelqt/tarana-rewards/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (int, error)
	GetHistory(ctx context.Context, userID, limit int) ([]domain.CreditTransaction, error)
	Consume(ctx context.Context, userID, amount int, service, description string) (*domain.ConsumeResult, error)
}

type CreditHandler struct {
	creditService Service
}

func New(creditService Service) *CreditHandler {
	return &CreditHandler{
		creditService: creditService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current credit balance
//	@Description	Remaining daily credits for the authenticated user (daily allotment minus credits used today).
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Remaining credits"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Profile not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/credits/balance [get]
func (h *CreditHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.creditService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, creditservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Balance unavailable")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Success: true,
		Balance: balance,
	})
}

// GetHistory godoc
//
//	@Summary		Get credit transaction history
//	@Description	Most recent ledger entries for the authenticated user, newest first. Limit defaults to 20, capped at 100.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum rows to return"
//	@Success		200		{object}	dto.CreditHistoryResponseDTO	"Transaction history"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/credits/history [get]
func (h *CreditHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	history, err := h.creditService.GetHistory(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch credit history")
		return
	}

	items := make([]dto.CreditTransactionDTO, len(history))
	for i, tx := range history {
		items[i] = dto.CreditTransactionDTO{
			ID:          tx.ID,
			Amount:      tx.Amount,
			Service:     tx.Service,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CreditHistoryResponseDTO{
		Success: true,
		History: items,
		Count:   len(items),
	})
}

// Consume godoc
//
//	@Summary		Consume credits
//	@Description	Spend credits through the store's atomic consume operation. All-or-nothing; the returned balance is authoritative.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConsumeRequestDTO	true	"Consume request payload"
//	@Success		200		{object}	dto.ConsumeResponseDTO	"New balance and transaction id"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Profile not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/credits/consume [post]
func (h *CreditHandler) Consume(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ConsumeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Service == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "service is required")
		return
	}

	res, err := h.creditService.Consume(r.Context(), userID, req.Amount, req.Service, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, creditservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, creditservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, creditservice.ErrProfileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ConsumeResponseDTO{
		Success:       true,
		Balance:       res.NewBalance,
		TransactionID: res.TransactionID,
	})
}
