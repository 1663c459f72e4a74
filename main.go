package main

import (
	"context"
	"net/http"
	_ "time/tzdata"
	"turnaround/bizerror"
	"turnaround/common"
	"turnaround/domain/order"
	"turnaround/domain/tat"
	"turnaround/infra/tracing"
	"turnaround/persistence"
	"turnaround/servehttp"
	"turnaround/teamconfig"

	"github.com/gin-gonic/gin"
)

func main() {
	common.Log.Info("service start")

	closer, err := tracing.InitGlobalTracer()
	if err != nil {
		common.Log.Fatalf("tracer initialization failed %v", err)
	}
	defer closer.Close()

	teams, err := teamconfig.LoadFromEnv()
	if err != nil {
		common.Log.Fatalf("load team configuration failed %v", err)
	}

	dbConfig, err := persistence.ParseDatabaseConfigFromEnv()
	if err != nil {
		common.Log.Fatalf("parse database config failed %v", err)
	}

	// create database (no conflict)
	if dbConfig.DriverType == "mysql" {
		if err := persistence.PrepareMysqlDatabase(dbConfig.DriverArgs); err != nil {
			common.Log.Fatalf("failed to prepare database %v", err)
		}
	}

	ds := &persistence.DataSourceManager{DatabaseConfig: dbConfig}
	if err := ds.Start(); err != nil {
		common.Log.Fatalf("database conneciton failed %v", err)
	}
	defer ds.Stop()

	// database migration (race condition)
	if err := ds.GormDB(context.Background()).AutoMigrate(&order.TransitionRecord{}).Error; err != nil {
		common.Log.Fatalf("database migration failed %v", err)
	}

	reportTTL, err := order.ReportCacheTTLFromEnv()
	if err != nil {
		common.Log.Fatalf("parse report cache config failed %v", err)
	}
	limiter, err := servehttp.RateLimiterFromEnv()
	if err != nil {
		common.Log.Fatalf("parse rate limit config failed %v", err)
	}

	aggregator := tat.NewAggregator(teams)
	orderManager := order.NewOrderManager(order.NewGormTransitionStore(ds), aggregator, reportTTL)

	engine := gin.Default()
	engine.Use(tracing.TracingIngress())
	engine.Use(bizerror.ErrorHandling())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, common.GetServiceName())
	})

	rateLimiting := servehttp.RateLimiting(limiter)
	servehttp.RegisterTatHandler(engine, aggregator, rateLimiting)
	servehttp.RegisterOrderHandler(engine, orderManager, rateLimiting)

	servehttp.StartHTTPServer(servehttp.HTTPAddrFromEnv(), engine)
}
