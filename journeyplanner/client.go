package journeyplanner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client is a simple HTTP client for the journey-planner API.
type Client struct {
	baseURI    string
	httpClient *http.Client
}

// NewClient creates a new journey-planner client for the given base URI.
func NewClient(baseURI string) *Client {
	return &Client{
		baseURI:    baseURI,
		httpClient: &http.Client{},
	}
}

// StopID resolves a stop name to the provider's stop identifier via the
// location lookup endpoint. The first result is taken unconditionally; an
// empty result list is an error.
func (c *Client) StopID(ctx context.Context, name string) (string, error) {
	uri := fmt.Sprintf("%s/location?input=%s&format=json", c.baseURI, url.QueryEscape(name))

	var loc locationResponse
	if err := c.getJSON(ctx, uri, &loc); err != nil {
		return "", fmt.Errorf("stop lookup for %q: %w", name, err)
	}
	if len(loc.LocationList.StopLocation) == 0 {
		return "", fmt.Errorf("stop lookup for %q: no results", name)
	}
	return loc.LocationList.StopLocation[0].ID, nil
}

// Trips fetches the trip list for the default current-time query between
// two stop identifiers. The response must carry the TripList key.
func (c *Client) Trips(ctx context.Context, originID, destID string) ([]Trip, error) {
	uri := fmt.Sprintf("%s/trip?originId=%s&destId=%s&format=json",
		c.baseURI, url.QueryEscape(originID), url.QueryEscape(destID))

	var tr tripResponse
	if err := c.getJSON(ctx, uri, &tr); err != nil {
		return nil, fmt.Errorf("trip query %s -> %s: %w", originID, destID, err)
	}
	if tr.TripList == nil {
		return nil, fmt.Errorf("trip query %s -> %s: response has no TripList", originID, destID)
	}
	return tr.TripList.Trip, nil
}

func (c *Client) getJSON(ctx context.Context, uri string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", uri, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, uri)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
