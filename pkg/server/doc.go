/*
Package server runs the frontend's TLS listener and its optional ops
listener.

Routes serves a fixed set of paths under the context path P:

	P              the bundled index page
	P/health       OK
	P/greeting     the configured greeting
	P/service      "Response from service: " + the backend body
	P/service/db   same, against the backend's /db path

Anything else is a 404 "Not found". Every response is text/html; backend
failures are a 500 whose body is the JSON form of the backend.CallError.

Server binds the listeners and runs them with any background tasks in one
errgroup. Cancelling the context closes everything without draining.
*/
package server
