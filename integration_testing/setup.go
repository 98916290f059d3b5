package integration_testing

import (
	"context"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	"github.com/miguelofoliveir/pandafit-frontend/internal"
	"github.com/miguelofoliveir/pandafit-frontend/internal/backend/backendtest"
	"github.com/miguelofoliveir/pandafit-frontend/internal/config"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverHost  = "localhost"
	serverPort  = 9400
	metricsPort = "9401"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	backend    *backendtest.Server
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context, t *testing.T) *Suite {
	t.Helper()

	if os.Getenv("PANDAFIT_INTEGRATION") == "" {
		t.Skip("PANDAFIT_INTEGRATION not set, skipping integration test")
	}

	suite := &Suite{
		teardown: make([]func(), 0),
	}
	t.Cleanup(suite.cleanup)

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	var err error
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		t.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		t.Fatalf("failed to setup redis: %s", err)
	}

	suite.backend = backendtest.NewServer()
	suite.teardown = append(suite.teardown, suite.backend.Close)
	suite.backend.RequireToken()

	cfg := getTestConfig(redisPort, suite.backend.APIURL())
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		t.Fatalf("new server: %s", err)
	}

	suite.server.Serve(cfg.Host, cfg.Port)
	if err := waitForServer(ctx); err != nil {
		t.Fatalf("server not up: %s", err)
	}

	return suite
}

func (s *Suite) cleanup() {
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
}

func getTestConfig(redisPort, backendURL string) *config.Config {
	return &config.Config{
		Environment:                 "development",
		Host:                        serverHost,
		Port:                        serverPort,
		PrometheusMetricsHost:       serverHost,
		PrometheusMetricsPort:       metricsPort,
		LogLevel:                    "debug",
		LogToStdout:                 true,
		BackendURL:                  backendURL,
		BackendTimeoutSeconds:       5,
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		SessionTTLHours:             1,
		LoginRateLimitAllowedPerMin: 100,
		QueryCacheSizeMB:            1,
		QueryCacheTTLSeconds:        30,
		RetryMaxRetries:             1,
		RetryIntervalMs:             10,
		Timezone:                    "America/Sao_Paulo",
		AllowedOrigins:              []string{"http://localhost:5173"},
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}

	s.teardown = append(s.teardown, func() {
		_ = redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	if err := s.dockerPool.Retry(func() error {
		rdb := redis.NewClient(&redis.Options{
			Addr: net.JoinHostPort("localhost", redisPort),
		})
		defer rdb.Close()
		return rdb.Ping(context.Background()).Err()
	}); err != nil {
		return "", fmt.Errorf("wait for redis: %w", err)
	}

	return redisPort, nil
}

func waitForServer(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	addr := net.JoinHostPort(serverHost, fmt.Sprint(serverPort))
	for {
		conn, err := net.DialTimeout("tcp", addr, 200*time.Millisecond)
		if err == nil {
			return conn.Close()
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("dial %s: %w", addr, err)
		case <-time.After(50 * time.Millisecond):
		}
	}
}
