package main

import (
	"fmt"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("load config failed")
	}

	// DB
	db, err := configs.OpenDB(cfg.DBSource)
	if err != nil {
		logrus.WithError(err).Fatal("connect database failed")
	}

	// logrus.Fatal skips defers, so release the handle before every exit
	err = run(db, cfg)
	if cerr := configs.CloseDB(db); cerr != nil {
		logrus.WithError(cerr).Warn("close database failed")
	}
	if err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func run(db *gorm.DB, cfg *configs.Config) error {
	if err := configs.SeedAdmin(db, cfg); err != nil {
		return pkgerrors.Wrap(err, "seed admin")
	}

	// HTTP
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logrus.StandardLogger()))
	r.Use(middlewares.CORSMiddleware())

	if err := routes.RegisterRoutes(r, db, cfg); err != nil {
		return pkgerrors.Wrap(err, "register routes")
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.Infof("server running at %s", addr)
	return r.Run(addr)
}
