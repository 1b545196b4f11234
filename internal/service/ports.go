package service

import "context"

// Gateway is the slice of the REST client the service wrappers need.
// Satisfied by *rest.Client; stubbed in tests.
type Gateway interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
}
