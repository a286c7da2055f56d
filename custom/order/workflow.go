package order

import (
	"errors"
	"fmt"

	"github.com/romana/rlog"
	"gorm.io/gorm"

	"shop_system/constants"
	"shop_system/custom/util"
	"shop_system/model"
)

// The order workflow. Cross-service product references are resolved through
// the catalog port on every operation; nothing here trusts a stored price
// except the persisted TotalPrice itself.

func (ctx *HandlerContext) listOrders() ([]model.OrderInfo, error) {
	orders := make([]model.Order, 0)
	if err := ctx.db.Find(&orders).Error; err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, util.NewNotFoundError(constants.NO_ORDERS_FOUND)
	}

	infos := make([]model.OrderInfo, 0, len(orders))
	for i := range orders {
		infos = append(infos, ctx.toOrderInfo(&orders[i]))
	}
	return infos, nil
}

func (ctx *HandlerContext) orderById(id uint) (*model.OrderInfo, error) {
	orderRow := model.Order{}
	if err := ctx.db.First(&orderRow, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError(fmt.Sprintf("Order not found with id: %d", id))
		}
		return nil, err
	}
	info := ctx.toOrderInfo(&orderRow)
	return &info, nil
}

func (ctx *HandlerContext) createOrder(req CreateOrderRequest) (*model.OrderInfo, error) {
	product, err := ctx.catalog.ProductById(req.ProductId)
	if err != nil {
		rlog.Error("Fetch product failed: ", err.Error())
		return nil, util.NewNotFoundError(constants.PRODUCT_NOT_FOUND)
	}

	newOrder := model.Order{
		CustomerId: req.CustomerId,
		ProductId:  req.ProductId,
		Quantity:   req.Quantity,
		TotalPrice: product.Price * float64(req.Quantity),
	}
	if err = ctx.db.Create(&newOrder).Error; err != nil {
		return nil, err
	}

	// Snapshot the unit price at creation time. This is a separate statement,
	// a failure here leaves the order row in place.
	orderDetail := model.OrderDetail{
		OrderId:   newOrder.ID,
		ProductId: newOrder.ProductId,
		Quantity:  newOrder.Quantity,
		Price:     product.Price,
	}
	if err = ctx.db.Create(&orderDetail).Error; err != nil {
		return nil, err
	}

	info := ctx.toOrderInfo(&newOrder)
	return &info, nil
}

func (ctx *HandlerContext) updateOrder(id uint, req CreateOrderRequest) (*model.OrderInfo, error) {
	orderRow := model.Order{}
	if err := ctx.db.First(&orderRow, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError(constants.ORDER_NOT_FOUND)
		}
		return nil, err
	}

	product, err := ctx.catalog.ProductById(req.ProductId)
	if err != nil {
		rlog.Error("Fetch product failed: ", err.Error())
		return nil, util.NewNotFoundError(constants.PRODUCT_NOT_FOUND)
	}

	// Full overwrite, recomputed from the current catalog price. The
	// order_detail row keeps the price captured at creation.
	orderRow.CustomerId = req.CustomerId
	orderRow.ProductId = req.ProductId
	orderRow.Quantity = req.Quantity
	orderRow.TotalPrice = product.Price * float64(req.Quantity)
	if err = ctx.db.Save(&orderRow).Error; err != nil {
		return nil, err
	}

	info := ctx.toOrderInfo(&orderRow)
	return &info, nil
}

func (ctx *HandlerContext) deleteOrder(id uint) error {
	orderRow := model.Order{}
	if err := ctx.db.First(&orderRow, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NewNotFoundError(constants.ORDER_NOT_FOUND)
		}
		return err
	}
	return ctx.db.Delete(&orderRow).Error
}

// toOrderInfo enriches an order with the catalog's current price. A failed
// lookup degrades to price 0 instead of failing the read; the payment side
// hard-fails on its own lookups instead.
func (ctx *HandlerContext) toOrderInfo(orderRow *model.Order) model.OrderInfo {
	productPrice := 0.0
	product, err := ctx.catalog.ProductById(orderRow.ProductId)
	if err != nil {
		rlog.Error("Enrich order failed, price set to 0: ", err.Error())
	} else {
		productPrice = product.Price
	}
	return model.OrderInfo{
		ID:           orderRow.ID,
		CustomerId:   orderRow.CustomerId,
		ProductId:    orderRow.ProductId,
		Quantity:     orderRow.Quantity,
		ProductPrice: productPrice,
		TotalPrice:   orderRow.TotalPrice,
	}
}
