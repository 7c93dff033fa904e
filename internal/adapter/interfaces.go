package adapter

import "context"

// SecureTransport is the client-side collaborator contract: it encrypts
// outgoing bodies, sets the marker header, and decrypts enveloped responses,
// so calling code exchanges plain Go values with the server.
type SecureTransport interface {
	// Post sends body to path and unmarshals the (decrypted) response into
	// out. out may be nil when the response body is irrelevant.
	Post(ctx context.Context, path string, body, out any) error

	// Get fetches path and unmarshals the (decrypted) response into out.
	Get(ctx context.Context, path string, out any) error
}
