package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
)

type menuItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type orderRequest struct {
	MenuItems     []menuItem `json:"menuItems"`
	PaymentInfoID string     `json:"paymentInfoId"`
}

type order struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

var menu = []string{"margherita", "pepperoni", "carbonara", "tiramisu", "lemonade", "caesar"}

func randomOrder() orderRequest {
	items := make([]menuItem, 1+rand.Intn(3))
	for i := range items {
		items[i] = menuItem{ItemID: menu[rand.Intn(len(menu))], Quantity: 1 + rand.Intn(4)}
	}
	return orderRequest{MenuItems: items, PaymentInfoID: "pi_" + uuid.NewString()}
}

type client struct {
	baseURL string
	http    *http.Client
}

func (c *client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

// placeAndDecide places an order and then, for most orders, accepts or
// rejects it. The rest are left to the auto reject.
func (c *client) placeAndDecide(ctx context.Context) {
	customerID := fmt.Sprintf("customer-%d", rand.Intn(100))

	var o order
	status, err := c.do(ctx, http.MethodPost, "/customers/"+customerID+"/orders/", randomOrder(), &o)
	if err != nil || status != http.StatusCreated {
		log.Printf("place order: status=%d err=%v", status, err)
		return
	}
	log.Printf("placed %s for %s", o.OrderID, customerID)

	if rand.Intn(3) == 0 {
		status, err = c.do(ctx, http.MethodPatch, "/customers/"+customerID+"/orders/"+o.OrderID, randomOrder(), nil)
		log.Printf("add items to %s: status=%d err=%v", o.OrderID, status, err)
	}

	switch rand.Intn(4) {
	case 0:
		return
	case 1:
		status, err = c.do(ctx, http.MethodPatch, "/restaurant/orders/"+o.OrderID, map[string]string{"action": "reject"}, nil)
	default:
		status, err = c.do(ctx, http.MethodPatch, "/restaurant/orders/"+o.OrderID, map[string]string{"action": "accept"}, nil)
	}
	log.Printf("decide %s: status=%d err=%v", o.OrderID, status, err)
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base url")
	workers := flag.Int("workers", 5, "concurrent workers")
	pause := flag.Duration("pause", 200*time.Millisecond, "pause between orders per worker")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := &client{baseURL: *baseURL, http: &http.Client{Timeout: 5 * time.Second}}

	var wg sync.WaitGroup
	for range *workers {
		wg.Go(func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-time.After(*pause):
					c.placeAndDecide(ctx)
				}
			}
		})
	}
	wg.Wait()
	log.Println("generator stopped")
}
