package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/romana/rlog"

	"shop_system/model"
)

// Lookup is the read boundary of the product catalog. The order workflow and
// the product proxy both resolve product references through it.
type Lookup interface {
	ProductById(id uint) (*model.Product, error)
	Products() ([]model.Product, error)
}

// Client fetches products over HTTP. Calls are synchronous blocking round
// trips with no timeout or retry; a remote 404, a remote 5xx and a transport
// fault all surface as the same opaque error.
type Client struct {
	BaseUrl string
}

func NewClient(baseUrl string) *Client {
	return &Client{BaseUrl: baseUrl}
}

func (c *Client) ProductById(id uint) (*model.Product, error) {
	response, err := http.DefaultClient.Get(fmt.Sprintf("%s/products/%d", c.BaseUrl, id))
	if err != nil {
		rlog.Error("Fetch product failed: ", err.Error())
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Fetch product %d failed with status code %d", id, response.StatusCode)
	}

	respBody, err := io.ReadAll(response.Body)
	if err != nil {
		rlog.Error("Read product response failed: ", err.Error())
		return nil, err
	}
	product := model.Product{}
	if err = json.Unmarshal(respBody, &product); err != nil {
		rlog.Error("Unmarshal product response failed: ", err.Error())
		return nil, err
	}
	return &product, nil
}

func (c *Client) Products() ([]model.Product, error) {
	response, err := http.DefaultClient.Get(c.BaseUrl + "/products")
	if err != nil {
		rlog.Error("Fetch products failed: ", err.Error())
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Fetch products failed with status code %d", response.StatusCode)
	}

	respBody, err := io.ReadAll(response.Body)
	if err != nil {
		rlog.Error("Read products response failed: ", err.Error())
		return nil, err
	}
	products := make([]model.Product, 0)
	if err = json.Unmarshal(respBody, &products); err != nil {
		rlog.Error("Unmarshal products response failed: ", err.Error())
		return nil, err
	}
	return products, nil
}
