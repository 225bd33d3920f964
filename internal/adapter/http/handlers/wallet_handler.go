package handlers

import (
	"net/http"
	"strconv"

	"woorkins_payments/internal/adapter/http/dto/response"
	"woorkins_payments/internal/adapter/http/middleware"
	"woorkins_payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WalletHandler exposes the caller's balances.
type WalletHandler struct {
	usecase usecase.IWalletUseCase
}

func NewWalletHandler(uc usecase.IWalletUseCase) *WalletHandler {
	return &WalletHandler{usecase: uc}
}

// GetWallet godoc
// @Summary   Freelancer wallet of the caller
// @Tags      wallet
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.WalletResponse
// @Failure   400  {object}  pkg.HTTPError
// @Router    /wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		writeError(c, mapPaymentError(usecase.ErrUnauthenticated))
		return
	}
	w, err := h.usecase.GetWallet(c.Request.Context(), account.ProfileID)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWallet(w))
}

// GetWoorkoinBalance godoc
// @Summary   Woorkoins balance of the caller
// @Tags      woorkoins
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.WoorkoinBalanceResponse
// @Failure   400  {object}  pkg.HTTPError
// @Router    /woorkoins/balance [get]
func (h *WalletHandler) GetWoorkoinBalance(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		writeError(c, mapPaymentError(usecase.ErrUnauthenticated))
		return
	}
	b, err := h.usecase.GetWoorkoinBalance(c.Request.Context(), account.ProfileID)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWoorkoinBalance(b))
}

// ListWoorkoinTransactions godoc
// @Summary   Woorkoins transactions of the caller, newest first
// @Tags      woorkoins
// @Produce   json
// @Security  Bearer
// @Param     limit  query     int  false  "Max entries (default 50, max 200)"
// @Success   200    {object}  response.WoorkoinTransactionsResponse
// @Failure   400    {object}  pkg.HTTPError
// @Router    /woorkoins/transactions [get]
func (h *WalletHandler) ListWoorkoinTransactions(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		writeError(c, mapPaymentError(usecase.ErrUnauthenticated))
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	txs, err := h.usecase.ListWoorkoinTransactions(c.Request.Context(), account.ProfileID, limit)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWoorkoinTransactions(txs))
}
