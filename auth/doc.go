// Package auth provides the authentication primitives used by the HTTP
// surface: HMAC-signed JWT bearer tokens that carry the caller's user id,
// and bcrypt hashing for the admin API key.
//
// Authentication only establishes WHO is calling. Whether that caller may
// do anything is decided per request by the permission evaluator.
package auth
