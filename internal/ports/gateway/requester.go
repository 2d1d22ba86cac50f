package gateway

import "context"

// Requester es lo que necesitan los controllers del gateway HTTP.
// httpclient.Client lo implementa; los tests pueden usar un fake.
type Requester interface {
	DoJSON(ctx context.Context, method, path string, in, out any) error
}
