// Package api is the HTTP surface of the registry. Handlers decode and
// shape-check requests, call the user, auth and wishlist services, and map
// service error kinds to status codes. Ownership of a wishlist is checked
// here, before the service is asked to change or delete it.
package api
