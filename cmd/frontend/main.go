// Frontend is the public-facing tier of the sample application.
//
// It serves a static page, a health route and a configured greeting over
// HTTPS, and relays two routes to the backend service behind the internal
// load balancer. TLS material is selected by the deployment environment.
//
// Usage:
//
//	# Start the server
//	frontend config.json tls/key-dev.pem
//
//	# Generate development TLS material
//	frontend certs generate --env development --output tls
//
//	# Show version information
//	frontend version
package main

func main() {
	Execute()
}
