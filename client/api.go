package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"menudia/pkg/pairing"
)

// RemoteLine mirrors one cart item as the cart service serializes it.
type RemoteLine struct {
	ID        uint   `json:"ID"`
	DishID    uint   `json:"dishId"`
	Category  string `json:"category"`
	UnitPrice int64  `json:"unitPrice"`
	Qty       int    `json:"qty"`
}

// CartRecord is the authoritative cart snapshot.
type CartRecord struct {
	ID        uint         `json:"ID"`
	SessionID string       `json:"sessionId"`
	UserID    uint         `json:"userId"`
	Items     []RemoteLine `json:"items"`
}

// CartAPI is the cart persistence collaborator. Every call is
// request/response; there is no streaming surface.
type CartAPI interface {
	GetCartBySession(ctx context.Context, sessionID string) (*CartRecord, error)
	CreateCart(ctx context.Context, sessionID string, userID uint) (*CartRecord, error)
	AddLine(ctx context.Context, cartID, dishID uint, qty int, category pairing.Category) error
	UpdateLineQty(ctx context.Context, cartID, lineID uint, qty int) error
	RemoveLine(ctx context.Context, cartID, lineID uint) error
	ClearCart(ctx context.Context, cartID uint) error
}

// HTTPAPI talks to the menudia backend. Token, when set, is called per
// request so a login mid-session picks up the fresh credential.
type HTTPAPI struct {
	BaseURL string
	Token   func() string
	Client  *http.Client
}

var _ CartAPI = (*HTTPAPI)(nil)

func NewHTTPAPI(baseURL string) *HTTPAPI {
	return &HTTPAPI{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  http.DefaultClient,
	}
}

type envelope struct {
	OK    bool            `json:"ok"`
	Error string          `json:"error"`
	Data  json.RawMessage `json:"data"`
}

func (a *HTTPAPI) do(ctx context.Context, method, path string, body, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(b)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, a.BaseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.Token != nil {
		if t := a.Token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	res, err := a.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(res.Body).Decode(&env)

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		return ErrAuthRequired
	case res.StatusCode == http.StatusNotFound:
		return ErrCartNotFound
	case res.StatusCode < 200 || res.StatusCode > 299:
		msg := env.Error
		if msg == "" {
			msg = res.Status
		}
		return &RemoteRejectedError{Status: res.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	return json.Unmarshal(env.Data, out)
}

func (a *HTTPAPI) GetCartBySession(ctx context.Context, sessionID string) (*CartRecord, error) {
	var data struct {
		ID    uint         `json:"id"`
		Cart  CartRecord   `json:"cart"`
		Items []RemoteLine `json:"items"`
	}
	if err := a.do(ctx, http.MethodGet, "/cart/session/"+sessionID, nil, &data); err != nil {
		return nil, err
	}
	rec := data.Cart
	if rec.ID == 0 {
		rec.ID = data.ID
	}
	if rec.Items == nil {
		rec.Items = data.Items
	}
	return &rec, nil
}

func (a *HTTPAPI) CreateCart(ctx context.Context, sessionID string, userID uint) (*CartRecord, error) {
	body := map[string]any{"sessionId": sessionID}
	if userID != 0 {
		body["userId"] = userID
	}
	var rec CartRecord
	if err := a.do(ctx, http.MethodPost, "/cart", body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (a *HTTPAPI) AddLine(ctx context.Context, cartID, dishID uint, qty int, category pairing.Category) error {
	body := map[string]any{
		"dishId":   dishID,
		"quantity": qty,
		"itemType": string(category),
	}
	return a.do(ctx, http.MethodPost, fmt.Sprintf("/carts/%d/items", cartID), body, nil)
}

func (a *HTTPAPI) UpdateLineQty(ctx context.Context, cartID, lineID uint, qty int) error {
	body := map[string]any{"quantity": qty}
	return a.do(ctx, http.MethodPut, fmt.Sprintf("/carts/%d/items/%d", cartID, lineID), body, nil)
}

func (a *HTTPAPI) RemoveLine(ctx context.Context, cartID, lineID uint) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/carts/%d/items/%d", cartID, lineID), nil, nil)
}

func (a *HTTPAPI) ClearCart(ctx context.Context, cartID uint) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/carts/%d/clear", cartID), nil, nil)
}
