package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/ontotext/s4-go/client"
)

// servicesTarget is the catalog endpoint, relative to the client's base
// address.
const servicesTarget = "api/services"

// ErrServiceNotFound is returned by Find when no catalog entry matches
// the requested name.
var ErrServiceNotFound = errors.New("catalog: service not found")

// ServiceDescriptor describes a single annotation service.
type ServiceDescriptor struct {
	// Name is the service name.
	Name string `json:"name"`
	// ShortDescription is a short HTML fragment describing the service.
	ShortDescription string `json:"shortDescription"`
	// OnlineURL is the endpoint used to process documents with the
	// service.
	OnlineURL string `json:"onlineUrl"`
}

// Catalog reads the service catalog through an authenticated client.
type Catalog struct {
	client *client.Client
}

// New creates a catalog accessor backed by the given client.
func New(c *client.Client) *Catalog {
	return &Catalog{client: c}
}

// List returns all annotation services the platform currently offers.
func (c *Catalog) List(ctx context.Context) ([]ServiceDescriptor, error) {
	services, err := client.Get[[]ServiceDescriptor](ctx, c.client, servicesTarget, nil)
	if err != nil {
		return nil, err
	}
	if services == nil {
		return nil, nil
	}
	return *services, nil
}

// Find returns the descriptor for the named service, or
// ErrServiceNotFound when the catalog has no such entry.
func (c *Catalog) Find(ctx context.Context, name string) (*ServiceDescriptor, error) {
	services, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].Name == name {
			return &services[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, name)
}
