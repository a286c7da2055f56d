package payment

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/romana/rlog"

	"shop_system/model"
)

// OrderServiceClient calls the order service's read API. Like every
// cross-service call in this system it has no timeout and no retry.
type OrderServiceClient struct {
	BaseUrl string
}

func NewOrderServiceClient(baseUrl string) *OrderServiceClient {
	return &OrderServiceClient{BaseUrl: baseUrl}
}

func (c *OrderServiceClient) OrderById(id uint) (*model.OrderInfo, error) {
	response, err := http.DefaultClient.Get(fmt.Sprintf("%s/orders/%d", c.BaseUrl, id))
	if err != nil {
		rlog.Error("Fetch order failed: ", err.Error())
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Fetch order %d failed with status code %d", id, response.StatusCode)
	}

	respBody, err := io.ReadAll(response.Body)
	if err != nil {
		rlog.Error("Read order response failed: ", err.Error())
		return nil, err
	}
	orderInfo := model.OrderInfo{}
	if err = json.Unmarshal(respBody, &orderInfo); err != nil {
		rlog.Error("Unmarshal order response failed: ", err.Error())
		return nil, err
	}
	return &orderInfo, nil
}
