package pkglog

import "context"

// DefaultService is reported when no service name is stored in the context.
const DefaultService = "goblog"

type serviceContextKey struct{}

// GetService returns the name of the HTTP service handling the request.
func GetService(ctx context.Context) string {
	name, ok := ctx.Value(serviceContextKey{}).(string)
	if !ok || name == "" {
		return DefaultService
	}
	return name
}

// SetService stores the name of the HTTP service into the context.
func SetService(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, serviceContextKey{}, name)
}
