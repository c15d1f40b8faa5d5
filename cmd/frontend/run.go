package main

import (
	"context"
	"log/slog"
	"net/http"

	"sampleapp/frontend/pkg/backend"
	"sampleapp/frontend/pkg/cli"
	"sampleapp/frontend/pkg/config"
	"sampleapp/frontend/pkg/middleware"
	frontendtls "sampleapp/frontend/pkg/security/tls"
	"sampleapp/frontend/pkg/server"
	"sampleapp/frontend/pkg/static"
	"sampleapp/frontend/pkg/telemetry/health"
	"sampleapp/frontend/pkg/telemetry/logging"
	"sampleapp/frontend/pkg/telemetry/metrics"
	"sampleapp/frontend/pkg/telemetry/tracing"

	"github.com/spf13/cobra"
)

func runFrontend(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:  settings.Telemetry.LogLevel,
		Format: settings.Telemetry.LogFormat,
	})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	a, err := newApp(settings, args[0], args[1], logger)
	if err != nil {
		return err
	}

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()

	if err := a.server.Run(ctx); err != nil {
		return cli.NewCommandError("frontend", err)
	}
	return nil
}

// serviceName identifies the process in exported traces.
const serviceName = "sample-app-frontend"

// app is the fully wired process.
type app struct {
	server    *server.Server
	material  *frontendtls.Material
	collector *metrics.Collector
}

// newApp loads the application config and TLS material and wires every
// component. Nothing is bound until the server runs.
func newApp(settings *config.Settings, configFile, keyFile string, logger *slog.Logger) (*app, error) {
	if keyFile == "" {
		return nil, cli.NewConfigError("tls-key-file", "must not be empty")
	}

	appCfg, err := config.LoadAppConfig(configFile)
	if err != nil {
		return nil, err
	}

	env := frontendtls.ParseEnvironment(settings.Environment)
	material, err := frontendtls.LoadMaterial(settings.TLS.Dir, env, keyFile)
	if err != nil {
		return nil, err
	}

	policy, err := material.TrustPolicy()
	if err != nil {
		return nil, err
	}

	logger.Info("loaded TLS material",
		"environment", env.Name(),
		"certificate", material.Files.Cert,
		"trust_policy", policy.String(),
	)

	collector := metrics.NewCollector(nil)

	tracer, err := tracing.New(tracing.Config{
		Endpoint:       settings.Telemetry.Tracing.Endpoint,
		Insecure:       settings.Telemetry.Tracing.Insecure,
		Sampler:        settings.Telemetry.Tracing.Sampler,
		SampleRatio:    settings.Telemetry.Tracing.SampleRatio,
		ServiceName:    serviceName,
		ServiceVersion: Version,
	})
	if err != nil {
		return nil, err
	}
	if tracer.Enabled() {
		logger.Info("tracing enabled", "endpoint", settings.Telemetry.Tracing.Endpoint)
	}

	target := backend.Target{
		Host:     settings.BackendHost(),
		Port:     settings.BackendPort,
		BasePath: settings.BackendPath,
	}
	caller := backend.NewCaller(target, policy,
		backend.WithTimeout(settings.BackendTimeout),
		backend.WithLogger(logger),
		backend.WithObserver(collector),
		backend.WithTracer(tracer.Tracer()),
	)

	routes := server.NewRoutes(settings.ContextPath, appCfg.Greeting, static.Page(), caller, logger)
	handler := middleware.Chain(routes,
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Tracing(tracer.Tracer(), routes.RouteName),
		middleware.Logging(logger, collector, routes.RouteName),
	)

	monitor := frontendtls.NewExpiryMonitor(material.Leaf, settings.Telemetry.CertCheckSchedule,
		collector.SetCertificateExpiryDays, logger)
	tasks := []server.Task{monitor.Run, tracer.Run}

	if settings.TLS.Watch {
		watcher := frontendtls.NewMaterialWatcher(settings.TLS.Dir, collector.RecordMaterialChange, logger)
		tasks = append(tasks, watcher.Watch)
	}

	opts := server.Options{
		Address:   settings.ListenAddress(),
		TLSConfig: frontendtls.ServerConfig(material, settings.TLS.ClientAuth),
		Handler:   handler,
		Tasks:     tasks,
		Logger:    logger,
	}

	if settings.Telemetry.OpsAddress != "" {
		opts.OpsAddress = settings.Telemetry.OpsAddress
		opts.OpsHandler = opsHandler(material, collector)
	}

	return &app{
		server:    server.New(opts),
		material:  material,
		collector: collector,
	}, nil
}

// opsHandler serves /metrics, /ready and /version.
func opsHandler(material *frontendtls.Material, collector *metrics.Collector) http.Handler {
	checker := health.New(0)
	checker.RegisterCheck("certificate", func(context.Context) error {
		return frontendtls.ValidateX509Certificate(material.Leaf)
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	health.Register(mux, checker, health.VersionInfo{
		Version:   Version,
		Commit:    GitCommit,
		BuildTime: BuildDate,
	})
	return mux
}
