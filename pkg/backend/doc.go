// Package backend calls the sample backend service over HTTPS.
//
// A Caller is built once from the backend Target and the environment's
// TrustPolicy. Each Call opens a new connection, buffers the whole response
// body and reports failures as *CallError, whose JSON form is what the
// frontend returns to its client. With WithTracer each Call is recorded as a
// client span under the inbound request's span.
package backend
