package order

import (
	"net/http"

	"github.com/romana/rlog"
	"gorm.io/gorm"

	"shop_system/custom/catalog"
	"shop_system/custom/util"
)

type HandlerContext struct {
	db      *gorm.DB
	catalog catalog.Lookup
}

type CreateOrderRequest struct {
	CustomerId uint `json:"customerId"`
	ProductId  uint `json:"productId"`
	Quantity   int  `json:"quantity"`
}

func (ctx *HandlerContext) InitialHandlerContext(db *gorm.DB, catalogLookup catalog.Lookup) {
	ctx.db = db
	ctx.catalog = catalogLookup
}

// CreateOrder Create a new Order. Any failure during creation is reported as
// a 400, including the product not being resolvable.
func (ctx *HandlerContext) CreateOrder(w http.ResponseWriter, r *http.Request) {
	req := CreateOrderRequest{}
	err := util.FetchReqObject(r, &req)
	if err != nil {
		util.WriteErrorStatus(w, http.StatusBadRequest, err)
		return
	}

	orderInfo, err := ctx.createOrder(req)
	if err != nil {
		util.WriteErrorStatus(w, http.StatusBadRequest, err)
		return
	}

	rlog.Infof("Order %d was created, total price %f", orderInfo.ID, orderInfo.TotalPrice)
	util.WriteJSON(w, http.StatusCreated, orderInfo)
}

// ListOrders Fetch all orders. An empty store is a 404, not an empty list.
func (ctx *HandlerContext) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := ctx.listOrders()
	if err != nil {
		rlog.Error(err.Error())
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, orders)
}

// GetOrder Fetch order detail by order id
func (ctx *HandlerContext) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathId(r, "id")
	if err != nil {
		util.WriteErrorStatus(w, http.StatusBadRequest, err)
		return
	}

	orderInfo, err := ctx.orderById(id)
	if err != nil {
		rlog.Error(err.Error())
		util.WriteError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, orderInfo)
}

// UpdateOrder Overwrite an existing order. The total is recomputed from the
// catalog's current price, not the one captured at creation.
func (ctx *HandlerContext) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathId(r, "id")
	if err != nil {
		util.WriteErrorStatus(w, http.StatusBadRequest, err)
		return
	}

	req := CreateOrderRequest{}
	if err = util.FetchReqObject(r, &req); err != nil {
		util.WriteErrorStatus(w, http.StatusBadRequest, err)
		return
	}

	orderInfo, err := ctx.updateOrder(id, req)
	if err != nil {
		rlog.Error(err.Error())
		util.WriteError(w, err)
		return
	}
	rlog.Infof("Order %d was updated, total price %f", orderInfo.ID, orderInfo.TotalPrice)
	util.WriteJSON(w, http.StatusOK, orderInfo)
}

// DeleteOrder Delete an order permanently. Its order_detail rows stay behind.
func (ctx *HandlerContext) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathId(r, "id")
	if err != nil {
		util.WriteErrorStatus(w, http.StatusBadRequest, err)
		return
	}

	if err = ctx.deleteOrder(id); err != nil {
		rlog.Error(err.Error())
		util.WriteError(w, err)
		return
	}
	rlog.Infof("Order %d was deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
