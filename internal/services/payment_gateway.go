package services

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/payOSHQ/payos-lib-golang"
)

type GatewayStatus string

const (
	GatewayPending   GatewayStatus = "pending"
	GatewaySuccess   GatewayStatus = "success"
	GatewayFailed    GatewayStatus = "failed"
	GatewayAbandoned GatewayStatus = "abandoned"
)

type InitializeResult struct {
	Reference   string
	CheckoutURL string
}

// PaymentGateway is the opaque external payment collaborator: initialize a
// checkout, later verify what happened to it. Booking logic never touches
// this directly; it only requires the subscription to already be subscribed.
type PaymentGateway interface {
	Initialize(ctx context.Context, email string, amountMinor int64) (*InitializeResult, error)
	Verify(ctx context.Context, reference string) (GatewayStatus, error)
}

type PayOSConfig struct {
	ClientID     string
	ApiKey       string
	ChecksumKey  string
	ReturnURL    string
	CancelURL    string
	ProviderName string // stored on payment metadata
}

type payOSGateway struct {
	cfg PayOSConfig
}

func NewPayOSGateway(cfg PayOSConfig) (PaymentGateway, error) {
	if cfg.ClientID == "" || cfg.ApiKey == "" || cfg.ChecksumKey == "" {
		return nil, fmt.Errorf("missing payOS credentials")
	}
	if err := payos.Key(cfg.ClientID, cfg.ApiKey, cfg.ChecksumKey); err != nil {
		return nil, fmt.Errorf("payos client init: %w", err)
	}
	return &payOSGateway{cfg: cfg}, nil
}

func (g *payOSGateway) Initialize(ctx context.Context, email string, amountMinor int64) (*InitializeResult, error) {
	// payOS expects an int64 order code; unix seconds plus a short random
	// suffix keeps it within 13 digits with low collision probability.
	orderCode := time.Now().Unix()%1_000_000_000 + int64(rand.Intn(9000)+1000)

	body := payos.CheckoutRequestType{
		OrderCode:   orderCode,
		Amount:      int(amountMinor),
		Items:       []payos.Item{{Name: "Therapy subscription", Price: int(amountMinor), Quantity: 1}},
		Description: fmt.Sprintf("Subscription checkout for %s", email),
		CancelUrl:   g.cfg.CancelURL,
		ReturnUrl:   g.cfg.ReturnURL,
	}

	resp, err := payos.CreatePaymentLink(body)
	if err != nil {
		return nil, fmt.Errorf("payos create link: %w", err)
	}

	return &InitializeResult{
		Reference:   strconv.FormatInt(orderCode, 10),
		CheckoutURL: resp.CheckoutUrl,
	}, nil
}

func (g *payOSGateway) Verify(ctx context.Context, reference string) (GatewayStatus, error) {
	info, err := payos.GetPaymentLinkInformation(reference)
	if err != nil {
		return GatewayPending, fmt.Errorf("payos link info: %w", err)
	}

	switch info.Status {
	case "PAID":
		return GatewaySuccess, nil
	case "CANCELLED":
		return GatewayFailed, nil
	case "EXPIRED":
		return GatewayAbandoned, nil
	default:
		return GatewayPending, nil
	}
}
