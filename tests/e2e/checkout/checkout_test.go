//go:build e2e

package checkout_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"beatbox-store/internal/domain/payment"
	reqdto "beatbox-store/internal/handler/dto/request"
	resdto "beatbox-store/internal/handler/dto/response"
	"beatbox-store/internal/pkg/clock"
	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/settlement"
	"beatbox-store/internal/usecase/shared"
	"beatbox-store/tests/common/httptest"
	"beatbox-store/tests/e2e"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type NativeCheckoutTestSuite struct {
	e2e.SharedSuite
}

func TestNativeCheckoutSuite(t *testing.T) {
	suite.Run(t, &NativeCheckoutTestSuite{SharedSuite: e2e.SharedSuite{Mode: "native"}})
}

func (s *NativeCheckoutTestSuite) makeTransactionPath(reference solana.PublicKey, items url.Values) string {
	q := url.Values{}
	for k, v := range items {
		q[k] = v
	}
	q.Set("reference", reference.String())
	return "/api/makeTransaction?" + q.Encode()
}

func (s *NativeCheckoutTestSuite) checkout(buyer *solana.Keypair, reference solana.PublicKey) resdto.MakeTransactionResponse {
	path := s.makeTransactionPath(reference, url.Values{"beatbox-tshirt": {"2"}})
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path,
		reqdto.MakeTransactionRequest{Account: buyer.PublicKey().String()})

	var res resdto.MakeTransactionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	return res
}

func (s *NativeCheckoutTestSuite) signAndSend(buyer *solana.Keypair, encoded string) solana.Signature {
	tx, err := solana.DecodeTransactionBase64(encoded)
	s.Require().NoError(err)
	s.Require().NoError(solana.PartialSign(tx, buyer))
	s.Require().Empty(solana.MissingSigners(tx))

	sig, err := s.Ledger.SendTransaction(context.Background(), tx, shared.CommitmentConfirmed)
	s.Require().NoError(err)
	return sig
}

func (s *NativeCheckoutTestSuite) TestMerchantAndProducts() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/makeTransaction", nil)
	var merchant resdto.MerchantResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &merchant)
	s.Equal("Beatbox Store", merchant.Label)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/products", nil)
	var products []resdto.ProductResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &products)
	s.Len(products, 2)
	s.Equal("native", products[0].Currency)
}

func (s *NativeCheckoutTestSuite) TestCheckoutSettlesThroughStatusEndpoint() {
	buyer := s.FundedKeypair(2 * solana.LamportsPerSOL)
	reference, err := payment.NewReference()
	s.Require().NoError(err)

	res := s.checkout(buyer, reference)
	s.Equal("0.1", res.Amount)
	s.Equal("Thanks for your order!", res.Message)

	statusPath := "/api/transactionStatus?reference=" + reference.String() + "&amount=" + res.Amount
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statusPath, nil)
	var pending resdto.TransactionStatusResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &pending)
	s.Equal("pending", pending.Status)

	sig := s.signAndSend(buyer, res.Transaction)

	s.Require().Eventually(func() bool {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statusPath, nil)
		var status resdto.TransactionStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &status)
		return status.Status == "confirmed" && status.Signature == sig.String()
	}, 30*time.Second, 500*time.Millisecond)

	balance, err := s.Ledger.Balance(context.Background(), s.Shop.PublicKey(), shared.CommitmentConfirmed)
	s.Require().NoError(err)
	s.GreaterOrEqual(balance, uint64(100_000_000))
}

func (s *NativeCheckoutTestSuite) TestPollerReportsWrongAmountAsInvalid() {
	buyer := s.FundedKeypair(2 * solana.LamportsPerSOL)
	reference, err := payment.NewReference()
	s.Require().NoError(err)

	res := s.checkout(buyer, reference)
	sig := s.signAndSend(buyer, res.Transaction)

	checker := settlement.NewChecker(
		settlement.NewFinder(s.Ledger, shared.CommitmentConfirmed),
		settlement.NewValidator(s.Ledger, shared.CommitmentConfirmed),
	)
	poller := settlement.NewPoller(checker, clock.NewRealClock(), s.Config.Checkout.PollInterval, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	session := poller.Start(ctx, settlement.Expectation{
		Reference: reference,
		Recipient: s.Shop.PublicKey(),
		Amount:    decimal.RequireFromString("0.2"),
	})
	defer session.Stop()

	outcome, err := session.Wait(ctx)
	s.Require().NoError(err)
	s.Equal(sig, outcome.Signature)
	s.False(outcome.Valid())
}
