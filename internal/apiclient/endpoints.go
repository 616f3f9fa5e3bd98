package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/pkg/utils"
)

const (
	EndpointLogin      = "/api/login"
	EndpointUsers      = "/api/users"
	EndpointSuppliers  = "/api/suppliers"
	EndpointDrivers    = "/api/drivers"
	EndpointVehicles   = "/api/vehicles"
	EndpointOrders     = "/api/orders"
	EndpointDeliveries = "/api/deliveries"
)

func OrderEndpoint(id string) string {
	return EndpointOrders + "/" + url.PathEscape(id)
}

func DeliveryEndpoint(id string) string {
	return EndpointDeliveries + "/" + url.PathEscape(id)
}

// LoginRequest is the body POSTed to the login endpoint
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult mirrors the login endpoint's response. User is set only
// when Success is true.
type LoginResult struct {
	Success bool             `json:"success"`
	User    *record.Identity `json:"user,omitempty"`
	Message string           `json:"message,omitempty"`
}

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.Call(ctx, http.MethodPost, EndpointLogin, LoginRequest{Username: username, Password: password}, &result)
	if err != nil {
		return nil, err
	}

	if result.Success {
		if result.User == nil {
			return nil, &DecodeError{Endpoint: EndpointLogin, Err: fmt.Errorf("successful login without user")}
		}
		if err := utils.ValidateStruct(result.User); err != nil {
			return nil, &DecodeError{Endpoint: EndpointLogin, Err: err}
		}
	}

	return &result, nil
}

func (c *Client) Users(ctx context.Context) ([]record.User, error) {
	return fetchList[record.User](ctx, c, EndpointUsers)
}

func (c *Client) Suppliers(ctx context.Context) ([]record.Supplier, error) {
	return fetchList[record.Supplier](ctx, c, EndpointSuppliers)
}

func (c *Client) Drivers(ctx context.Context) ([]record.Driver, error) {
	return fetchList[record.Driver](ctx, c, EndpointDrivers)
}

func (c *Client) Vehicles(ctx context.Context) ([]record.Vehicle, error) {
	return fetchList[record.Vehicle](ctx, c, EndpointVehicles)
}

func (c *Client) Orders(ctx context.Context) ([]record.Order, error) {
	return fetchList[record.Order](ctx, c, EndpointOrders)
}

func (c *Client) Deliveries(ctx context.Context) ([]record.Delivery, error) {
	return fetchList[record.Delivery](ctx, c, EndpointDeliveries)
}

func (c *Client) Order(ctx context.Context, id string) (*record.Order, error) {
	return fetchOne[record.Order](ctx, c, OrderEndpoint(id))
}

func (c *Client) Delivery(ctx context.Context, id string) (*record.Delivery, error) {
	return fetchOne[record.Delivery](ctx, c, DeliveryEndpoint(id))
}

// fetchList decodes a JSON array and validates every element. One bad
// record fails the whole collection.
func fetchList[T any](ctx context.Context, c *Client, endpoint string) ([]T, error) {
	var items []T
	if err := c.Call(ctx, http.MethodGet, endpoint, nil, &items); err != nil {
		return nil, err
	}

	for i := range items {
		if err := utils.ValidateStruct(&items[i]); err != nil {
			return nil, &DecodeError{Endpoint: endpoint, Err: fmt.Errorf("record %d: %w", i, err)}
		}
	}

	if items == nil {
		items = []T{}
	}
	return items, nil
}

func fetchOne[T any](ctx context.Context, c *Client, endpoint string) (*T, error) {
	var item T
	if err := c.Call(ctx, http.MethodGet, endpoint, nil, &item); err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(&item); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}

	return &item, nil
}
