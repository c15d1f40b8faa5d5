// Package health serves readiness and version information on the ops
// listener.
//
// Checks are registered at startup and run concurrently on every /ready
// request:
//
//	checker := health.New(2 * time.Second)
//	checker.RegisterCheck("certificate", func(ctx context.Context) error {
//	    return tls.ValidateX509Certificate(material.Leaf)
//	})
//	health.Register(opsMux, checker, health.VersionInfo{Version: version})
//
// The service's own P/health route is unrelated and always answers OK.
package health
