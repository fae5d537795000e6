package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cdn-manager/core/faults"
	"cdn-manager/core/resource"
)

// ListOrigins returns every origin on the account.
func (c *Client) ListOrigins(ctx context.Context) ([]*resource.Origin, error) {
	data, err := c.Send(ctx, http.MethodGet, c.accountPath("origins"), nil)
	if err != nil {
		if errors.Is(err, faults.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	rec, err := resource.Decode(data)
	if err != nil {
		return nil, err
	}
	list, ok := rec.(*resource.List)
	if !ok {
		return nil, faults.Decode("unexpected origin list response", fmt.Errorf("decoded as %s", rec.Kind()))
	}
	return list.Origins(), nil
}

// GetOrigin fetches one origin by id. A missing origin yields (nil, nil).
func (c *Client) GetOrigin(ctx context.Context, id int64) (*resource.Origin, error) {
	data, err := c.Send(ctx, http.MethodGet, c.accountPath("origins", strconv.FormatInt(id, 10)), nil)
	if err != nil {
		if errors.Is(err, faults.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeOrigin(data)
}

// CreateOrigin posts a new origin and returns the server's record.
func (c *Client) CreateOrigin(ctx context.Context, payload map[string]any) (*resource.Origin, error) {
	data, err := c.Send(ctx, http.MethodPost, c.accountPath("origins"), payload)
	if err != nil {
		return nil, err
	}
	return decodeOrigin(data)
}

// UpdateOrigin replaces the mutable attributes of an origin.
func (c *Client) UpdateOrigin(ctx context.Context, id int64, payload map[string]any) (*resource.Origin, error) {
	data, err := c.Send(ctx, http.MethodPut, c.accountPath("origins", strconv.FormatInt(id, 10)), payload)
	if err != nil {
		return nil, err
	}
	return decodeOrigin(data)
}

// DeleteOrigin removes an origin. A missing origin yields faults.ErrNotFound.
func (c *Client) DeleteOrigin(ctx context.Context, id int64) error {
	_, err := c.Send(ctx, http.MethodDelete, c.accountPath("origins", strconv.FormatInt(id, 10)), nil)
	return err
}

func decodeOrigin(data []byte) (*resource.Origin, error) {
	rec, err := resource.Decode(data)
	if err != nil {
		return nil, err
	}
	origin, ok := resource.AsOrigin(rec)
	if !ok {
		return nil, faults.Decode("unexpected origin response", fmt.Errorf("decoded as %s", rec.Kind()))
	}
	return origin, nil
}
