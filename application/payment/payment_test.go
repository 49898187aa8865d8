package payment_test

import (
	"context"
	"errors"
	"testing"

	apppayment "github.com/hendrawans/marketplace/application/payment"
	"github.com/hendrawans/marketplace/constant"
	paymentmocks "github.com/hendrawans/marketplace/mocks/repository/payment"
	"github.com/hendrawans/marketplace/model"
	cerr "github.com/hendrawans/marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestPaymentApp_Add(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.PaymentAddRequest
		mockCall func(m *paymentmocks.PaymentRepository)
		wantID   string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: ledger entry appended",
			req:  &model.PaymentAddRequest{OrderID: "o1", Amount: 150, Status: constant.PaymentStatusCompleted},
			mockCall: func(m *paymentmocks.PaymentRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Payment) bool {
					return p.OrderID == "o1" && p.Amount == 150 && p.Status == constant.PaymentStatusCompleted
				})).Return("pay123", nil).Once()
			},
			wantID: "pay123",
		},
		{
			name: "error: store fault is internal",
			req:  &model.PaymentAddRequest{OrderID: "o1", Amount: 150, Status: constant.PaymentStatusCompleted},
			mockCall: func(m *paymentmocks.PaymentRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return("", errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := paymentmocks.NewPaymentRepository(t)
			tt.mockCall(repo)

			app := apppayment.NewPaymentApp(repo)

			got, err := app.Add(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Add() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.PaymentID != tt.wantID {
				t.Fatalf("Add() payment id = %s, want %s", got.PaymentID, tt.wantID)
			}
		})
	}
}
