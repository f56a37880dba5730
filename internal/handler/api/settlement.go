package api

import (
	"net/http"
	"strings"

	reqdto "beatbox-store/internal/handler/dto/request"
	resdto "beatbox-store/internal/handler/dto/response"
	"beatbox-store/internal/handler/httperr"
	"beatbox-store/internal/pkg/errs"
	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/settlement"

	"github.com/gin-gonic/gin"
)

type SettlementHandler struct {
	checker   settlement.StatusChecker
	recipient solana.PublicKey
	mint      *solana.PublicKey
}

// NewSettlementHandler checks payments to recipient; a nil mint expects native transfers.
func NewSettlementHandler(checker settlement.StatusChecker, recipient solana.PublicKey, mint *solana.PublicKey) *SettlementHandler {
	return &SettlementHandler{
		checker:   checker,
		recipient: recipient,
		mint:      mint,
	}
}

// @Summary Transaction status
// @Description Run one find-and-validate round for a checkout reference
// @Tags checkout
// @Produce json
// @Param reference query string true "Base58 reference key"
// @Param amount query string true "Expected amount in display units"
// @Success 200 {object} resdto.TransactionStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/transactionStatus [get]
func (h *SettlementHandler) TransactionStatus(c *gin.Context) {
	var q reqdto.TransactionStatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if strings.TrimSpace(q.Reference) == "" {
		httperr.Abort(c, http.StatusBadRequest, errs.ErrMissingReference, "no reference provided")
		return
	}
	reference, err := solana.ParsePublicKey(strings.TrimSpace(q.Reference))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidReference), "invalid reference")
		return
	}
	amount, ok := q.ParseAmount()
	if !ok {
		httperr.Abort(c, http.StatusBadRequest, errs.New("invalid amount"), "invalid amount")
		return
	}

	res, err := h.checker.Check(c.Request.Context(), settlement.Expectation{
		Reference: reference,
		Recipient: h.recipient,
		Amount:    amount,
		Mint:      h.mint,
	})
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "ledger is unavailable")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckResult(res))
}
