package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vkravets/chairshop/internal/adapter/novaposhta"
	domainErrors "github.com/vkravets/chairshop/internal/domain/errors"
	"github.com/vkravets/chairshop/internal/domain/model"
	"github.com/vkravets/chairshop/internal/server/http/dto"
	testhelpers "github.com/vkravets/chairshop/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path, route string, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, resp *httptest.ResponseRecorder) dto.MessageResponse {
	t.Helper()
	var out dto.MessageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return out
}

func TestOrderHandlerCreate(t *testing.T) {
	payload, _ := json.Marshal(dto.CreateOrderRequest{
		Name: "Ivan", Phone: "+380501234567", City: "Kyiv",
		Warehouse: "Branch #1", Chair: "Model X", Size: "M",
	})

	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		CreateFn: func(ctx context.Context, order model.Order) (int64, error) {
			if order.Name != "Ivan" || order.Size != "M" {
				t.Fatalf("unexpected order passed to facade: %+v", order)
			}
			return 17, nil
		},
	})

	resp := performRequest(t, http.MethodPost, "/api/orders", "/api/orders", handler.Create, payload)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var out dto.CreateOrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !out.Success || out.OrderID != 17 {
		t.Fatalf("unexpected response %+v", out)
	}
}

func TestOrderHandlerCreateFailures(t *testing.T) {
	valid, _ := json.Marshal(dto.CreateOrderRequest{Name: "Ivan"})

	tests := []struct {
		name   string
		body   []byte
		facade testhelpers.OrderFacadeStub
		status int
	}{
		{
			name:   "malformed body",
			body:   []byte("{"),
			status: http.StatusBadRequest,
		},
		{
			name: "missing field",
			body: valid,
			facade: testhelpers.OrderFacadeStub{
				CreateFn: func(context.Context, model.Order) (int64, error) {
					return 0, domainErrors.ErrMissingField
				},
			},
			status: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: valid,
			facade: testhelpers.OrderFacadeStub{
				CreateFn: func(context.Context, model.Order) (int64, error) {
					return 0, errors.New("insert order: broken pipe")
				},
			},
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/api/orders", "/api/orders", NewOrderHandler(tc.facade).Create, tc.body)
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
			if out := decodeMessage(t, resp); out.Success {
				t.Fatal("expected success to be false")
			}
		})
	}
}

func TestOrderHandlerCreateDoesNotLeakStorageDetail(t *testing.T) {
	payload, _ := json.Marshal(dto.CreateOrderRequest{Name: "Ivan"})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		CreateFn: func(context.Context, model.Order) (int64, error) {
			return 0, errors.New("insert order: password authentication failed for user")
		},
	})

	resp := performRequest(t, http.MethodPost, "/api/orders", "/api/orders", handler.Create, payload)
	if out := decodeMessage(t, resp); out.Message != "internal server error" {
		t.Fatalf("storage detail leaked to client: %q", out.Message)
	}
}

func TestOrderHandlerList(t *testing.T) {
	placed := time.Date(2025, time.March, 8, 12, 0, 0, 0, time.UTC)
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		OrdersFn: func(context.Context) ([]model.Order, error) {
			return []model.Order{
				{ID: 2, Name: "Olha", Status: model.OrderStatusShipping, OrderDate: placed},
				{ID: 1, Name: "Ivan", Status: model.OrderStatusNew, OrderDate: placed},
			}, nil
		},
	})

	resp := performRequest(t, http.MethodGet, "/api/orders", "/api/orders", handler.List, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var out dto.OrdersResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !out.Success || len(out.Data) != 2 {
		t.Fatalf("unexpected response %+v", out)
	}
	if out.Data[0].ID != 2 {
		t.Fatalf("expected newest first, got id %d", out.Data[0].ID)
	}
	if out.Data[0].FormattedTimestamp != "2025-03-08T12:00:00.000Z" {
		t.Fatalf("unexpected formatted timestamp %q", out.Data[0].FormattedTimestamp)
	}
}

func TestOrderHandlerListEmpty(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		OrdersFn: func(context.Context) ([]model.Order, error) { return nil, nil },
	})

	resp := performRequest(t, http.MethodGet, "/api/orders", "/api/orders", handler.List, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte(`"data":[]`)) {
		t.Fatalf("expected empty data array, got %s", resp.Body.String())
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	body, _ := json.Marshal(dto.UpdateStatusRequest{NewStatus: "Processing"})

	tests := []struct {
		name   string
		path   string
		body   []byte
		facade testhelpers.OrderFacadeStub
		status int
	}{
		{
			name: "success",
			path: "/api/orders/5/status",
			body: body,
			facade: testhelpers.OrderFacadeStub{
				UpdateFn: func(ctx context.Context, id int64, status model.OrderStatus) error {
					if id != 5 || status != model.OrderStatusProcessing {
						t.Fatalf("unexpected arguments: %d %s", id, status)
					}
					return nil
				},
			},
			status: http.StatusOK,
		},
		{
			name: "invalid status value",
			path: "/api/orders/5/status",
			body: body,
			facade: testhelpers.OrderFacadeStub{
				UpdateFn: func(context.Context, int64, model.OrderStatus) error {
					return domainErrors.ErrInvalidStatus
				},
			},
			status: http.StatusBadRequest,
		},
		{
			name: "unknown id",
			path: "/api/orders/99/status",
			body: body,
			facade: testhelpers.OrderFacadeStub{
				UpdateFn: func(context.Context, int64, model.OrderStatus) error {
					return domainErrors.ErrNotFound
				},
			},
			status: http.StatusNotFound,
		},
		{
			name:   "non-numeric id",
			path:   "/api/orders/abc/status",
			body:   body,
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed body",
			path:   "/api/orders/5/status",
			body:   []byte("{"),
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPut, tc.path, "/api/orders/:id/status", NewOrderHandler(tc.facade).UpdateStatus, tc.body)
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewOrderHandler(testhelpers.OrderFacadeStub{})
		resp := performRequest(t, http.MethodDelete, "/api/orders/5", "/api/orders/:id", handler.Delete, nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}
		if out := decodeMessage(t, resp); !out.Success {
			t.Fatal("expected success response")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		handler := NewOrderHandler(testhelpers.OrderFacadeStub{
			DeleteFn: func(context.Context, int64) error { return domainErrors.ErrNotFound },
		})
		resp := performRequest(t, http.MethodDelete, "/api/orders/99", "/api/orders/:id", handler.Delete, nil)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", resp.Code)
		}
	})
}

func TestAddressHandlerCities(t *testing.T) {
	handler := NewAddressHandler(testhelpers.AddressFacadeStub{
		SettlementsFn: func(context.Context) ([]model.Settlement, error) {
			return []model.Settlement{
				{Ref: "r1", Description: "Bucha"},
				{Ref: "r2", Description: "Kyiv"},
			}, nil
		},
	})

	resp := performRequest(t, http.MethodPost, "/api/novaposhta/cities", "/api/novaposhta/cities", handler.Cities, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var out dto.AddressListResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !out.Success || len(out.Data) != 2 || out.Data[0].Ref != "r1" {
		t.Fatalf("unexpected response %+v", out)
	}
}

func TestAddressHandlerCitiesCarrierErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "api error",
			err:     novaposhta.APIError{Method: "getSettlements", Messages: []string{"Invalid key"}},
			status:  http.StatusInternalServerError,
			message: "Invalid key",
		},
		{
			name:   "transport error passes upstream status",
			err:    novaposhta.TransportError{StatusCode: http.StatusServiceUnavailable},
			status: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewAddressHandler(testhelpers.AddressFacadeStub{
				SettlementsFn: func(context.Context) ([]model.Settlement, error) { return nil, tc.err },
			})
			resp := performRequest(t, http.MethodPost, "/api/novaposhta/cities", "/api/novaposhta/cities", handler.Cities, nil)
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
			if tc.message != "" && !bytes.Contains(resp.Body.Bytes(), []byte(tc.message)) {
				t.Fatalf("expected upstream message in response, got %s", resp.Body.String())
			}
		})
	}
}

func TestAddressHandlerWarehouses(t *testing.T) {
	body, _ := json.Marshal(dto.WarehousesRequest{CityRef: "city-ref"})
	handler := NewAddressHandler(testhelpers.AddressFacadeStub{
		WarehousesFn: func(ctx context.Context, cityRef string) ([]model.Warehouse, error) {
			if cityRef != "city-ref" {
				t.Fatalf("unexpected city ref %q", cityRef)
			}
			return []model.Warehouse{{Ref: "w1", Description: "Branch 1"}}, nil
		},
	})

	resp := performRequest(t, http.MethodPost, "/api/novaposhta/warehouses", "/api/novaposhta/warehouses", handler.Warehouses, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAddressHandlerWarehousesMissingCityRef(t *testing.T) {
	for name, body := range map[string][]byte{
		"no body":    nil,
		"empty ref":  []byte(`{"cityRef":""}`),
		"wrong type": []byte(`{"cityRef":null}`),
	} {
		t.Run(name, func(t *testing.T) {
			handler := NewAddressHandler(testhelpers.AddressFacadeStub{
				WarehousesFn: func(ctx context.Context, cityRef string) ([]model.Warehouse, error) {
					if cityRef != "" {
						t.Fatalf("expected empty city ref, got %q", cityRef)
					}
					return nil, domainErrors.ErrCityRefRequired
				},
			})
			resp := performRequest(t, http.MethodPost, "/api/novaposhta/warehouses", "/api/novaposhta/warehouses", handler.Warehouses, body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.Code)
			}
		})
	}
}
