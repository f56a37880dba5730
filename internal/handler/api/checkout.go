package api

import (
	"errors"
	"io"
	"net/http"

	"beatbox-store/internal/domain/catalog"
	reqdto "beatbox-store/internal/handler/dto/request"
	resdto "beatbox-store/internal/handler/dto/response"
	"beatbox-store/internal/handler/httperr"
	"beatbox-store/internal/pkg/config"
	"beatbox-store/internal/pkg/errs"
	"beatbox-store/internal/usecase/checkout"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	useCase checkout.UseCase
	catalog *catalog.Catalog
	label   string
	icon    string
}

func NewCheckoutHandler(useCase checkout.UseCase, cat *catalog.Catalog, cfg config.CheckoutConfig) *CheckoutHandler {
	return &CheckoutHandler{
		useCase: useCase,
		catalog: cat,
		label:   cfg.Label,
		icon:    cfg.Icon,
	}
}

// @Summary Merchant metadata
// @Description Label and icon shown by the wallet before it posts the account
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.MerchantResponse
// @Router /api/makeTransaction [get]
func (h *CheckoutHandler) Merchant(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.MerchantResponse{Label: h.label, Icon: h.icon})
}

// @Summary Build checkout transaction
// @Description Price the cart in the query and return a base64 transaction for the buyer to sign
// @Tags checkout
// @Accept json
// @Produce json
// @Param reference query string true "Base58 reference key"
// @Param request body reqdto.MakeTransactionRequest true "Buyer wallet"
// @Success 200 {object} resdto.MakeTransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/makeTransaction [post]
func (h *CheckoutHandler) MakeTransaction(c *gin.Context) {
	var req reqdto.MakeTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	res, err := h.useCase.MakeTransaction(c.Request.Context(), checkout.Request{
		Account:   req.Account,
		Reference: c.Query("reference"),
		Query:     c.Request.URL.Query(),
	})
	if err != nil {
		status, msg := checkoutErrorStatus(err)
		httperr.Abort(c, status, err, msg)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(res))
}

// @Summary List products
// @Description Catalog with unit prices in the requested currency
// @Tags checkout
// @Produce json
// @Param currency query string false "native or token; defaults to the checkout mode"
// @Success 200 {array} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Router /api/products [get]
func (h *CheckoutHandler) ListProducts(c *gin.Context) {
	currency := h.useCase.Mode().Currency()
	if raw := c.Query("currency"); raw != "" {
		parsed, err := catalog.ParseCurrency(raw)
		if err != nil {
			httperr.Abort(c, http.StatusBadRequest, err, "Unknown currency")
			return
		}
		currency = parsed
	}

	c.JSON(http.StatusOK, resdto.FromProducts(h.catalog.Products(), currency))
}

func checkoutErrorStatus(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrZeroCharge):
		return http.StatusBadRequest, "can't checkout with charge of 0"
	case errs.Is(err, errs.ErrMissingReference):
		return http.StatusBadRequest, "no reference provided"
	case errs.Is(err, errs.ErrInvalidReference):
		return http.StatusBadRequest, "invalid reference"
	case errs.Is(err, errs.ErrMissingAccount):
		return http.StatusBadRequest, "no account provided"
	case errs.Is(err, errs.ErrInvalidAccount):
		return http.StatusBadRequest, "invalid account"
	case errs.Is(err, errs.ErrIndivisibleDiscount):
		return http.StatusBadRequest, "discounted price is not payable in whole token units"
	case errs.Is(err, errs.ErrShopKeyNotConfigured):
		return http.StatusInternalServerError, "shop signing key is not configured"
	case errs.Is(err, errs.ErrLedgerUnavailable):
		return http.StatusInternalServerError, "ledger is unavailable"
	default:
		return http.StatusInternalServerError, "error creating transaction"
	}
}
