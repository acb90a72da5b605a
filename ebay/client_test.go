package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"testing"
)

func orderPage(ids []string, total, limit, offset int) ordersResponse {
	resp := ordersResponse{Total: total, Limit: limit, Offset: offset}
	for _, id := range ids {
		resp.Orders = append(resp.Orders, Order{OrderID: id})
	}
	return resp
}

func TestUnshippedOrdersSinglePage(t *testing.T) {
	var gotFilter, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/order" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotFilter = r.URL.Query().Get("filter")
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(orderPage([]string{"11-111", "22-222"}, 2, 50, 0))
	}))
	defer srv.Close()

	c := NewClient("tok123").WithBaseURL(srv.URL)
	orders, err := c.UnshippedOrders(context.Background())
	if err != nil {
		t.Fatalf("UnshippedOrders() error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	if orders[0].OrderID != "11-111" || orders[1].OrderID != "22-222" {
		t.Errorf("unexpected order IDs: %v %v", orders[0].OrderID, orders[1].OrderID)
	}
	if gotFilter != unshippedFilter {
		t.Errorf("filter = %q, want %q", gotFilter, unshippedFilter)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestUnshippedOrdersPaginates(t *testing.T) {
	// 120 orders served in pages of 50.
	total := 120
	var offsets []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		offsets = append(offsets, offset)
		var ids []string
		for i := offset; i < total && i < offset+pageLimit; i++ {
			ids = append(ids, fmt.Sprintf("order-%03d", i))
		}
		json.NewEncoder(w).Encode(orderPage(ids, total, pageLimit, offset))
	}))
	defer srv.Close()

	c := NewClient("tok").WithBaseURL(srv.URL)
	orders, err := c.UnshippedOrders(context.Background())
	if err != nil {
		t.Fatalf("UnshippedOrders() error: %v", err)
	}
	if len(orders) != total {
		t.Fatalf("got %d orders, want %d", len(orders), total)
	}
	if want := []int{0, 50, 100}; !reflect.DeepEqual(offsets, want) {
		t.Errorf("offsets = %v, want %v", offsets, want)
	}
	if orders[119].OrderID != "order-119" {
		t.Errorf("last order = %q", orders[119].OrderID)
	}
}

func TestUnshippedOrdersHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"message":"Invalid access token"}]}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad").WithBaseURL(srv.URL)
	if _, err := c.UnshippedOrders(context.Background()); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestShipToAddress(t *testing.T) {
	o := Order{
		FulfillmentStartInstructions: []FulfillmentStartInstruction{{
			ShippingStep: ShippingStep{ShipTo: ShipTo{
				FullName: "Pat Example",
				ContactAddress: ContactAddress{
					AddressLine1:    "1 Main St",
					City:            "Springfield",
					StateOrProvince: "IL",
					PostalCode:      "62701",
					CountryCode:     "US",
				},
			}},
		}},
	}
	st, ok := o.ShipToAddress()
	if !ok {
		t.Fatal("ShipToAddress() not found")
	}
	want := []string{"Pat Example", "1 Main St", "Springfield, IL 62701", "US"}
	if got := st.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}

	var empty Order
	if _, ok := empty.ShipToAddress(); ok {
		t.Error("expected no address on empty order")
	}
}
