// Package client contains the client-side API contract for the blog API and
// its HTTP implementation.
//
// # Overview
//
// The Client interface covers Register, Login, CreateBlog, ListBlogs and
// Ping. HTTPClient implements it over net/http, remembers the access token
// returned by Login and sends it as a bearer token on later calls.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError. APIError unwraps to the
// matching sentinel from internal/common where one exists, so callers can use
// errors.Is with common.ErrDuplicateEmail, common.ErrInvalidCredentials or
// common.ErrMissingRequiredField. Transport failures wrap ErrUnavailable.
package client
