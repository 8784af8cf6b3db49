/*
Package observability exposes prometheus instrumentation for the socket
reconciliation engine and the template server.

Counters cover the individual reconciliation passes, links rejected for
untyped origins, template sync round trips, and HTTP requests by route and
status code. Every Metrics method is safe on a nil receiver, so
instrumentation stays optional throughout the library.
*/
package observability
