// Package middleware provides the HTTP middleware wrapped around the
// frontend routes.
//
// The chain, outermost first:
//
//	handler = middleware.Chain(routes,
//	    middleware.Recovery(logger),
//	    middleware.RequestID,
//	    middleware.Tracing(tracer.Tracer(), routes.RouteName),
//	    middleware.Logging(logger, collector, routes.RouteName),
//	)
//
// None of them change the status, body or content type chosen by the
// routes; RequestID only adds the X-Request-ID response header.
package middleware
