package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/gassama94/drf-api/configs"
	"github.com/gassama94/drf-api/internal/app"
	"github.com/gassama94/drf-api/internal/events"
	"github.com/gassama94/drf-api/internal/media"
	"github.com/gassama94/drf-api/internal/migrate"
	"github.com/gassama94/drf-api/internal/ratelimit"
	"github.com/gassama94/drf-api/internal/shared/db"
	"github.com/gassama94/drf-api/internal/shared/jwt"
)

func initOTEL(ctx context.Context, endpoint string) func(context.Context) error {
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("drf-api"),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	ctx := context.Background()
	cfg := configs.LoadConfig()

	if cfg.OTELEndpoint != "" {
		shutdown := initOTEL(ctx, cfg.OTELEndpoint)
		defer func() {
			c, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			_ = shutdown(c)
		}()
	}

	jwt.Configure(cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		log.Printf("JWT_SECRET not set; tokens are signed with the built-in development secret")
	}

	store := db.Open(cfg.DSN())
	if os.Getenv("AUTO_MIGRATE") != "false" {
		if err := migrate.AutoMigrateAll(store); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	var limiter *ratelimit.Limiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping: %v", err)
		}
		limiter = ratelimit.New(rdb)
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.KafkaBrokerURL != "" {
		publisher = events.NewProducer(cfg.KafkaBrokerURL, cfg.KafkaTopic)
		defer publisher.Close()
	}

	var storage media.Storage
	if cfg.S3Endpoint != "" {
		s3, err := media.NewS3Storage(media.S3Config{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
			Bucket:    cfg.S3Bucket,
		})
		if err != nil {
			log.Fatalf("s3: %v", err)
		}
		if err := s3.EnsureBucket(ctx); err != nil {
			log.Fatalf("s3 bucket: %v", err)
		}
		storage = s3
	} else {
		storage = media.NewDirStorage(cfg.MediaDir)
	}

	a := app.New(app.Deps{
		Store:   store,
		Storage: storage,
		Events:  publisher,
		Limiter: limiter,
	})

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           otelhttp.NewHandler(a.Handler(), "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	log.Printf("drf-api listening on %s", cfg.AppPort)
	log.Fatal(srv.ListenAndServe())
}
