package payment

import (
	"net/http"

	"github.com/romana/rlog"
	"gorm.io/gorm"

	"shop_system/custom/util"
	"shop_system/model"
)

// OrderLookup is the read boundary towards the order service. The payment
// workflow resolves its order reference through it.
type OrderLookup interface {
	OrderById(id uint) (*model.OrderInfo, error)
}

type HandlerContext struct {
	db     *gorm.DB
	orders OrderLookup
}

type PaymentRequest struct {
	OrderId       uint    `json:"orderId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	CustomerId    uint    `json:"customerId"`
}

type PaymentResponse struct {
	PaymentId uint   `json:"paymentId"`
	Message   string `json:"message"`
}

func (ctx *HandlerContext) InitialHandlerContext(db *gorm.DB, orderLookup OrderLookup) {
	ctx.db = db
	ctx.orders = orderLookup
}

// ProcessPayment Validate a payment against its order and persist it.
func (ctx *HandlerContext) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	req := PaymentRequest{}
	err := util.FetchReqObject(r, &req)
	if err != nil {
		util.WriteErrorStatus(w, http.StatusBadRequest, err)
		return
	}

	response, err := ctx.processPayment(req)
	if err != nil {
		rlog.Error(err.Error())
		util.WriteError(w, err)
		return
	}
	rlog.Infof("Payment %d processed for order %d, amount %f", response.PaymentId, req.OrderId, req.Amount)
	util.WriteJSON(w, http.StatusOK, response)
}

// GetPaymentStatus Fetch a payment's status by id
func (ctx *HandlerContext) GetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathId(r, "paymentId")
	if err != nil {
		util.WriteErrorStatus(w, http.StatusBadRequest, err)
		return
	}

	response, err := ctx.paymentStatus(id)
	if err != nil {
		rlog.Error(err.Error())
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, response)
}
