// internal/app/system/crmapi/services.go
package crmapi

import (
	"context"
	"fmt"

	"github.com/dalemusser/jewelcrm/internal/domain/models"
)

// Backend paths, relative to the configured base URL.
const (
	productsPath      = "/products/list/"
	announcementsPath = "/announcements/"
	customersPath     = "/clients/clients/"
	ordersPath        = "/sales/list/"
	pipelinePath      = "/sales/pipeline/"
	teamPath          = "/users/team-members/list/"
	tenantsPath       = "/tenants/"
)

// ListService lists one entity collection. It satisfies listview.Source.
type ListService[T any] struct {
	c    *Client
	path string
}

// List fetches the whole collection.
func (s ListService[T]) List(ctx context.Context) ([]T, error) {
	return list[T](ctx, s.c, s.path)
}

// Products lists the tenant's product catalogue.
func (c *Client) Products() ListService[models.Product] {
	return ListService[models.Product]{c: c, path: productsPath}
}

// Orders lists the tenant's sales.
func (c *Client) Orders() ListService[models.Order] {
	return ListService[models.Order]{c: c, path: ordersPath}
}

// Pipeline lists the tenant's sales-pipeline deals.
func (c *Client) Pipeline() ListService[models.Deal] {
	return ListService[models.Deal]{c: c, path: pipelinePath}
}

// Team lists the tenant's staff.
func (c *Client) Team() ListService[models.TeamMember] {
	return ListService[models.TeamMember]{c: c, path: teamPath}
}

// Tenants lists every tenant on the platform.
func (c *Client) Tenants() ListService[models.Tenant] {
	return ListService[models.Tenant]{c: c, path: tenantsPath}
}

// AnnouncementService lists announcements and records read/acknowledge
// actions for the current user.
type AnnouncementService struct {
	ListService[models.Announcement]
}

// Announcements returns the announcement service.
func (c *Client) Announcements() AnnouncementService {
	return AnnouncementService{ListService[models.Announcement]{c: c, path: announcementsPath}}
}

// MarkRead marks one announcement read.
func (s AnnouncementService) MarkRead(ctx context.Context, id int64) error {
	return s.c.write(ctx, fmt.Sprintf("%s%d/mark-read/", s.path, id), nil)
}

// Acknowledge acknowledges one announcement.
func (s AnnouncementService) Acknowledge(ctx context.Context, id int64) error {
	return s.c.write(ctx, fmt.Sprintf("%s%d/acknowledge/", s.path, id), nil)
}

// CustomerService lists and fetches customers.
type CustomerService struct {
	ListService[models.Customer]
}

// Customers returns the customer service.
func (c *Client) Customers() CustomerService {
	return CustomerService{ListService[models.Customer]{c: c, path: customersPath}}
}

// Get fetches one customer by id.
func (s CustomerService) Get(ctx context.Context, id int64) (models.Customer, error) {
	return one[models.Customer](ctx, s.c, fmt.Sprintf("%s%d/", s.path, id))
}
