/*
Package security groups the transport security code of the frontend.

The tls subpackage loads environment-specific TLS material, builds the
listener config, and decides how the backend's certificate is verified:

	env := tls.ParseEnvironment(os.Getenv("VPC_NAME"))
	material, err := tls.LoadMaterial("tls", env, keyFile)
	if err != nil {
		return err
	}

	listenerConfig := tls.ServerConfig(material, "verify_if_given")
	policy, err := material.TrustPolicy()

In development the policy accepts any backend certificate. Everywhere else
it verifies against the internal load balancer CA only.
*/
package security
