package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kitnetmanager/kitnet-client/internal/domain"
)

// Leases fetches all leases
func (c *Client) Leases(ctx context.Context) ([]domain.Lease, error) {
	var leases []domain.Lease
	if err := c.do(ctx, http.MethodGet, "/leases", nil, nil, &leases); err != nil {
		return nil, err
	}
	return leases, nil
}

// Lease fetches one lease by ID
func (c *Client) Lease(ctx context.Context, id uuid.UUID) (*domain.Lease, error) {
	var lease domain.Lease
	if err := c.do(ctx, http.MethodGet, "/leases/"+id.String(), nil, nil, &lease); err != nil {
		return nil, err
	}
	return &lease, nil
}

// Units fetches all rental units
func (c *Client) Units(ctx context.Context) ([]domain.Unit, error) {
	var units []domain.Unit
	if err := c.do(ctx, http.MethodGet, "/units", nil, nil, &units); err != nil {
		return nil, err
	}
	return units, nil
}

// Unit fetches one unit by ID
func (c *Client) Unit(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	var unit domain.Unit
	if err := c.do(ctx, http.MethodGet, "/units/"+id.String(), nil, nil, &unit); err != nil {
		return nil, err
	}
	return &unit, nil
}

// Tenants fetches all tenants
func (c *Client) Tenants(ctx context.Context) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	if err := c.do(ctx, http.MethodGet, "/tenants", nil, nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// Tenant fetches one tenant by ID
func (c *Client) Tenant(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := c.do(ctx, http.MethodGet, "/tenants/"+id.String(), nil, nil, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}
