package product

import (
	"errors"
	"net/http"

	"github.com/romana/rlog"

	"shop_system/constants"
	"shop_system/custom/catalog"
	"shop_system/custom/util"
)

// The product service owns no data. It proxies the external catalog API and
// reports catalog failures as 503, they are not this service's fault.

type HandlerContext struct {
	catalog catalog.Lookup
}

func (ctx *HandlerContext) InitialHandlerContext(catalogLookup catalog.Lookup) {
	ctx.catalog = catalogLookup
}

// GetProduct Fetch a single product from the catalog
func (ctx *HandlerContext) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := util.PathId(r, "id")
	if err != nil {
		util.WriteErrorStatus(w, http.StatusBadRequest, err)
		return
	}

	productInfo, err := ctx.catalog.ProductById(id)
	if err != nil {
		rlog.Error(err.Error())
		util.WriteErrorStatus(w, http.StatusServiceUnavailable, errors.New(constants.EXTERNAL_API_ERROR+err.Error()))
		return
	}
	util.WriteJSON(w, http.StatusOK, productInfo)
}

// ListProducts Fetch all products from the catalog
func (ctx *HandlerContext) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := ctx.catalog.Products()
	if err != nil {
		rlog.Error(err.Error())
		util.WriteErrorStatus(w, http.StatusServiceUnavailable, errors.New(constants.EXTERNAL_API_ERROR+err.Error()))
		return
	}
	util.WriteJSON(w, http.StatusOK, products)
}
