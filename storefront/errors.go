package storefront

import "errors"

var (
	// ErrProviderRejected marks responses where the provider answered but
	// declined the operation: bad credentials, an invalid or expired
	// refresh token, or a missing customer payload.
	ErrProviderRejected = errors.New("provider rejected the request")
)
