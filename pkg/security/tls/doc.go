/*
Package tls holds the TLS material and trust decisions of the frontend.

# Environments and trust

Every process runs in one deployment Environment. Development services talk
to each other directly with self-signed certificates; every other environment
reaches the backend through an internal load balancer whose CA is loaded at
startup. PolicyFor turns that into a TrustPolicy:

	policy, err := tls.PolicyFor(env, material.InternalCAPool)
	transport := &http.Transport{TLSClientConfig: policy.ClientConfig()}

# Material

LoadMaterial reads ca-<env>.crt.pem, cert-<env>.crt.pem and, outside
development, internal-alb-<env>-ca.pem from the TLS directory. The private
key path is supplied separately. ServerConfig builds the listener config
from the result.

# Monitoring

ExpiryMonitor checks the server certificate on a cron schedule and
MaterialWatcher logs changes to the TLS directory. Neither reloads anything.
*/
package tls
