package common

const (
	// AccessTokenHeaderName is the gRPC metadata key that may carry a raw
	// access token.
	AccessTokenHeaderName = "access_token"

	// AuthorizationHeaderName carries "Bearer <token>" in gRPC metadata and
	// HTTP headers.
	AuthorizationHeaderName = "authorization"

	// BearerPrefix is stripped (case-insensitively) from authorization values.
	BearerPrefix = "bearer "
)
