package exporters

import "errors"

// ErrEndpointNotConfigured indicates an exporter requires an endpoint
// environment variable that is not set.
var ErrEndpointNotConfigured = errors.New("exporters: endpoint not configured")
