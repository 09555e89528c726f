package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storelink/storelink-backend/internal/app/model"
	"github.com/storelink/storelink-backend/internal/app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPaymentTest(t *testing.T) (PaymentService, marketFixture, *model.Order, *model.PaymentOption) {
	fixture := seedMarket(t)

	orderService := newOrderService(fixture)
	order, err := orderService.PlaceOrder(PlaceOrderInput{
		CustomerID: fixture.Customer.ID,
		StoreID:    fixture.Store.ID,
		Lines:      []OrderLine{{VariantID: fixture.Variant.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	paymentService := NewPaymentService(
		repository.NewPaymentRepository(fixture.DB),
		repository.NewOrderRepository(fixture.DB),
	)
	option, err := paymentService.CreatePaymentOption("Card", "Credit or debit card", nil)
	require.NoError(t, err)

	return paymentService, fixture, order, option
}

func TestPaymentService_RecordPayment(t *testing.T) {
	paymentService, _, order, option := setupPaymentTest(t)

	payment, err := paymentService.RecordPayment(RecordPaymentInput{
		OrderID:         order.ID,
		PaymentOptionID: option.ID,
		Amount:          decimal.RequireFromString("1100.00"),
		TransactionID:   "txn-123",
	})
	require.NoError(t, err)
	assert.NotZero(t, payment.ID)
	assert.Equal(t, "txn-123", payment.TransactionID)
	assert.False(t, payment.PaymentDate.IsZero())
}

func TestPaymentService_RecordPayment_GeneratesTransactionID(t *testing.T) {
	paymentService, _, order, option := setupPaymentTest(t)

	payment, err := paymentService.RecordPayment(RecordPaymentInput{
		OrderID:         order.ID,
		PaymentOptionID: option.ID,
		Amount:          decimal.RequireFromString("1100.00"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, payment.TransactionID)
}

func TestPaymentService_RecordPayment_DuplicateTransaction(t *testing.T) {
	paymentService, _, order, option := setupPaymentTest(t)

	_, err := paymentService.RecordPayment(RecordPaymentInput{
		OrderID:         order.ID,
		PaymentOptionID: option.ID,
		Amount:          decimal.RequireFromString("1100.00"),
		TransactionID:   "txn-dup",
	})
	require.NoError(t, err)

	_, err = paymentService.RecordPayment(RecordPaymentInput{
		OrderID:         order.ID,
		PaymentOptionID: option.ID,
		Amount:          decimal.RequireFromString("1100.00"),
		TransactionID:   "txn-dup",
	})
	assert.ErrorIs(t, err, ErrDuplicateTransaction)
}

func TestPaymentService_RecordPayment_UnknownOrder(t *testing.T) {
	paymentService, _, _, option := setupPaymentTest(t)

	_, err := paymentService.RecordPayment(RecordPaymentInput{
		OrderID:         9999,
		PaymentOptionID: option.ID,
		Amount:          decimal.RequireFromString("10.00"),
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestPaymentService_RecordPayment_NegativeAmount(t *testing.T) {
	paymentService, _, order, option := setupPaymentTest(t)

	_, err := paymentService.RecordPayment(RecordPaymentInput{
		OrderID:         order.ID,
		PaymentOptionID: option.ID,
		Amount:          decimal.RequireFromString("-5.00"),
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestPaymentService_ListOrderPayments(t *testing.T) {
	paymentService, _, order, option := setupPaymentTest(t)

	for _, txn := range []string{"txn-a", "txn-b"} {
		_, err := paymentService.RecordPayment(RecordPaymentInput{
			OrderID:         order.ID,
			PaymentOptionID: option.ID,
			Amount:          decimal.RequireFromString("550.00"),
			TransactionID:   txn,
		})
		require.NoError(t, err)
	}

	payments, err := paymentService.ListOrderPayments(order.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}
