package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/romana/rlog"
	"gorm.io/gorm"

	"shop_system/constants"
	"shop_system/custom/util"
	"shop_system/model"
)

// processPayment reconciles the request against the referenced order before
// persisting. The amount check is exact float equality, matching the order
// service's native float arithmetic. Nothing updates the order afterwards and
// nothing prevents a second payment against the same order.
func (ctx *HandlerContext) processPayment(req PaymentRequest) (*PaymentResponse, error) {
	orderInfo, err := ctx.orders.OrderById(req.OrderId)
	if err != nil {
		// Absence and transport faults are indistinguishable here.
		rlog.Error("Fetch order failed: ", err.Error())
		return nil, util.NewNotFoundError(fmt.Sprintf("Order with ID %d not found.", req.OrderId))
	}

	if req.Amount != orderInfo.TotalPrice {
		return nil, util.NewValidationError(constants.PAYMENT_AMOUNT_MISMATCH)
	}
	if req.CustomerId != orderInfo.CustomerId {
		return nil, util.NewValidationError(constants.PAYMENT_CUSTOMER_MISMATCH)
	}

	newPayment := model.Payment{
		OrderId:       req.OrderId,
		Amount:        req.Amount,
		PaymentStatus: constants.PAYMENT_STATUS_PROCESSED,
		PaymentMethod: req.PaymentMethod,
		Timestamp:     time.Now(),
	}
	if err = ctx.db.Create(&newPayment).Error; err != nil {
		return nil, err
	}

	return &PaymentResponse{
		PaymentId: newPayment.ID,
		Message:   constants.PAYMENT_PROCESSED,
	}, nil
}

func (ctx *HandlerContext) paymentStatus(id uint) (*PaymentResponse, error) {
	paymentRow := model.Payment{}
	if err := ctx.db.First(&paymentRow, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewValidationError(fmt.Sprintf("Payment with ID %d not found.", id))
		}
		return nil, err
	}
	return &PaymentResponse{
		PaymentId: paymentRow.ID,
		Message:   constants.PAYMENT_STATUS_PREFIX + paymentRow.PaymentStatus,
	}, nil
}
