//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"beatbox-store/cmd/bootstrap"
	"beatbox-store/cmd/bootstrap/components"
	"beatbox-store/internal/infra/ledger"
	"beatbox-store/internal/pkg/config"
	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/shared"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	validatorImage = "solanalabs/solana:v1.18.26"
	rpcPort        = "8899/tcp"
)

var (
	validatorContainerOnce sync.Once
	validatorTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) RPCURL() string {
	return fmt.Sprintf("http://%s:%s", c.Host, c.Port.Port())
}

// ------------------------------------------------------------
// Per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, mode string, shop *solana.Keypair) (*gin.Engine, *ledger.Client, config.Config) {
	validatorInfo := startContainers(t)

	cfg := createTestConfig(validatorInfo, mode, shop)
	client := ledger.NewClient(cfg.Ledger, nil, nil)
	waitForLedger(t, client)

	router, app := buildE2EApp(cfg)
	require.NotNil(t, router, "failed to set up router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	slog.Info("E2E environment ready", "rpc_url", cfg.Ledger.RPCURL, "mode", mode)
	return router, client, cfg
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startValidatorContainerOnce(t)

	info, err := getContainerHostPort(validatorTestContainer, rpcPort)
	require.NoError(t, err, "failed to read validator container address")
	return info
}

// waitForLedger blocks until the validator hands out blockhashes.
func waitForLedger(t *testing.T, client *ledger.Client) {
	t.Helper()
	require.Eventually(t, func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, err := client.LatestBlockhash(ctx, shared.CommitmentConfirmed)
		return err == nil
	}, 60*time.Second, 500*time.Millisecond, "validator never became ready")
}

// ------------------------------------------------------------
// Builds the application for E2E tests
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }, bootstrap.SplitConfig),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.LedgerModule,
		components.ShopModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	if router == nil {
		panic("fx application did not provide a router")
	}
	return router, app
}

func createTestConfig(info ContainerInfo, mode string, shop *solana.Keypair) config.Config {
	cfg := config.NewTestConfig()
	cfg.Ledger.RPCURL = info.RPCURL()
	cfg.Ledger.Timeout = 10 * time.Second
	cfg.Checkout.Mode = mode
	cfg.Checkout.PollInterval = 250 * time.Millisecond
	cfg.Shop.Address = shop.PublicKey().String()
	cfg.Shop.PrivateKey = shop.Base58()
	return cfg
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// Starts the local validator once per test process
// ------------------------------------------------------------
func startValidatorContainerOnce(t *testing.T) {
	validatorContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        validatorImage,
			ExposedPorts: []string{rpcPort},
			Entrypoint:   []string{"solana-test-validator"},
			Cmd: []string{
				"--reset",
				"--quiet",
				"--ledger", "/tmp/test-ledger",
				"--rpc-port", "8899",
			},
			Tmpfs: map[string]string{
				"/tmp/test-ledger": "rw,size=1g", // ledger in RAM
			},
			WaitingFor: wait.ForHTTP("/health").
				WithPort(rpcPort).
				WithStartupTimeout(120 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		validatorTestContainer, err = startGenericContainer(req, 240)
		require.NoError(t, err, "failed to start validator container")

		t.Cleanup(func() {
			if validatorTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := validatorTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate validator container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared setup for E2E suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Mode   string
	Shop   *solana.Keypair
	Router *gin.Engine
	Ledger *ledger.Client
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	if s.Mode == "" {
		s.Mode = "native"
	}
	shop, err := solana.NewKeypair()
	require.NoError(t, err)
	s.Shop = shop

	router, client, cfg := setupE2EEnvironment(t, s.Mode, shop)
	s.Router = router
	s.Ledger = client
	s.Config = cfg
	require.NotNil(t, s.Router, "failed to set up router")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

// FundedKeypair returns a fresh keypair holding lamports airdropped by the validator.
func (s *SharedSuite) FundedKeypair(lamports uint64) *solana.Keypair {
	kp, err := solana.NewKeypair()
	s.Require().NoError(err)

	ctx := context.Background()
	_, err = s.Ledger.RequestAirdrop(ctx, kp.PublicKey(), lamports)
	s.Require().NoError(err)

	s.Require().Eventually(func() bool {
		balance, err := s.Ledger.Balance(ctx, kp.PublicKey(), shared.CommitmentConfirmed)
		return err == nil && balance >= lamports
	}, 30*time.Second, 250*time.Millisecond, "airdrop never landed")
	return kp
}
