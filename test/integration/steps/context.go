// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goal-planner/backend/config"
	"github.com/goal-planner/backend/internal/infra/dependency"
	"github.com/goal-planner/backend/internal/integration/persistence/model"
	"github.com/goal-planner/backend/test/integration/mock"
)

const (
	testJWTSecret   = "test-jwt-secret-key-for-testing-purposes"
	testSnapshotTTL = 24 * time.Hour
)

// testContext holds the state of one scenario.
type testContext struct {
	server   *httptest.Server
	client   *http.Client
	db       *mock.Db
	redis    *mock.Redis
	timeMock *mock.Time
	cfg      *config.Config

	headers       map[string]string
	accessToken   string
	currentUserID uuid.UUID
	currentGoalID uuid.UUID
	response      *response
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario wires a fresh application for every scenario and registers all steps.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"goals":       &model.GoalModel{},
			"allocations": &model.AllocationModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.after()
		return ctx, nil
	})

	registerSetupSteps(ctx, test)
	registerRequestSteps(ctx, test)
	registerResponseSteps(ctx, test)
	registerStoreSteps(ctx, test)
}

func (t *testContext) before() error {
	if err := t.db.ClearDB(); err != nil {
		return err
	}

	t.headers = make(map[string]string)
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.currentGoalID = uuid.Nil
	t.response = nil
	t.timeMock = mock.NewTime()
	t.redis = mock.NewRedis()

	t.cfg = config.Load()
	t.cfg.Server.Environment = "test"
	t.cfg.JWT.Secret = testJWTSecret
	t.cfg.JWT.Issuer = ""
	t.cfg.Redis.SnapshotTTL = testSnapshotTTL
	t.cfg.Planner.InflationRate = 0.06
	t.cfg.Planner.PresetsFile = ""

	injector, err := dependency.NewInjector(t.cfg, dependency.Resources{
		DB:               t.db.DbConn,
		Redis:            t.redis.Client,
		Clock:            t.timeMock,
		DBHealthCheck:    func() bool { return t.db.DbConn != nil },
		RedisHealthCheck: func() bool { return t.redis.Client.Ping(context.Background()).Err() == nil },
	})
	if err != nil {
		return fmt.Errorf("failed to wire application: %w", err)
	}

	t.server = httptest.NewServer(injector.Router.Setup(t.cfg.Server.Environment))
	return nil
}

func (t *testContext) after() {
	if t.server != nil {
		t.server.Close()
	}
	if t.redis != nil {
		t.redis.Close()
	}
}
