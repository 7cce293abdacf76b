// Package httpapi exposes the authorization service over HTTP.
//
// The surface is a small policy-decision API: permission checks,
// accessible-object listings, permission-gated content reads, a tuple
// export, and an admin endpoint for reloading graph documents. Callers
// authenticate with a bearer JWT; when no token service is configured the
// X-User-Id header is trusted instead, which is only meant for local
// development.
package httpapi
