// Package server provides the localhost redirect server used during OAuth sign-in.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # OAuth Redirect Handler
//
// [OAuthHandler] implements the authorization code redirect flow. The handler
// validates the state parameter (CSRF protection), exchanges the authorization
// code for tokens, and sends the result through a channel.
//
// It only processes one redirect to prevent replay attacks.
//
// # Usage
//
// When the user signs in via Kakao, a temporary HTTP server starts on the
// configured host and port, handles the redirect on /oauth/redirect, and shuts
// down after delivering the token.
package server
