// Package collaborators provides HTTP clients for the external services the
// tendering engine depends on: the broker relationship graph, the order
// registry, and the shipment service that records the winning carrier.
package collaborators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// BrokerNetworkClient resolves a broker's carrier network over HTTP.
// Implements ports.BrokerNetwork.
type BrokerNetworkClient struct {
	baseURL string
	client  *http.Client
}

// NewBrokerNetworkClient creates a client for the broker service.
func NewBrokerNetworkClient(baseURL string) *BrokerNetworkClient {
	return &BrokerNetworkClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

type brokerNetworkResponse struct {
	Tiers map[string][]string `json:"tiers"`
}

// Query fetches the broker's carriers grouped by network tier.
// An unknown broker maps to ObjectNotFoundError.
func (c *BrokerNetworkClient) Query(ctx context.Context, brokerID kernel.UUID) (map[int][]kernel.UUID, error) {
	url := fmt.Sprintf("%s/api/v1/brokers/%s/network", c.baseURL, brokerID.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("broker service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errs.NewObjectNotFoundError("broker", brokerID.String())
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("broker service: unexpected status %d", resp.StatusCode)
	}

	var body brokerNetworkResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("broker service: %w", err)
	}

	network := make(map[int][]kernel.UUID, len(body.Tiers))
	for tierStr, carrierStrs := range body.Tiers {
		tier, convErr := strconv.Atoi(tierStr)
		if convErr != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("tier", convErr)
		}

		carriers := make([]kernel.UUID, 0, len(carrierStrs))
		for _, s := range carrierStrs {
			id, idErr := kernel.UUIDFromString(s)
			if idErr != nil {
				return nil, idErr
			}
			carriers = append(carriers, id)
		}
		network[tier] = carriers
	}

	return network, nil
}

// OrderRegistryClient checks order existence over HTTP.
// Implements ports.OrderRegistry.
type OrderRegistryClient struct {
	baseURL string
	client  *http.Client
}

// NewOrderRegistryClient creates a client for the order registry.
func NewOrderRegistryClient(baseURL string) *OrderRegistryClient {
	return &OrderRegistryClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// Exists returns nil when the order is known to the registry and
// ObjectNotFoundError when it is not.
func (c *OrderRegistryClient) Exists(ctx context.Context, orderID kernel.UUID) error {
	url := fmt.Sprintf("%s/api/v1/orders/%s", c.baseURL, orderID.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("order registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errs.NewObjectNotFoundError("order", orderID.String())
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("order registry: unexpected status %d", resp.StatusCode)
	}

	return nil
}

// ShipmentServiceClient records the winning carrier on a shipment over HTTP.
// Implements ports.ShipmentService.
type ShipmentServiceClient struct {
	baseURL string
	client  *http.Client
}

// NewShipmentServiceClient creates a client for the shipment service.
func NewShipmentServiceClient(baseURL string) *ShipmentServiceClient {
	return &ShipmentServiceClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

type setCarrierRequest struct {
	CarrierID string `json:"carrierId"`
}

// SetCarrier assigns the carrier to the shipment. Called before the awarding
// transaction commits, so a failure here rolls the award back.
func (c *ShipmentServiceClient) SetCarrier(ctx context.Context, shipmentID, carrierID kernel.UUID) error {
	url := fmt.Sprintf("%s/api/v1/shipments/%s/carrier", c.baseURL, shipmentID.String())

	payload, err := json.Marshal(setCarrierRequest{CarrierID: carrierID.String()})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("shipment service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errs.NewObjectNotFoundError("shipment", shipmentID.String())
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("shipment service: unexpected status %d", resp.StatusCode)
	}

	return nil
}
