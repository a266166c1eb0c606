package main

import (
	"StoreBackend/config"
	"StoreBackend/mailer"
	"StoreBackend/routers"
)

func main() {
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		panic("failed to load config")
	}

	db, err := config.SetupMySQLConnection(cfg)
	if err != nil {
		panic("failed to connect to the database")
	}
	defer func() {
		dbInstance, _ := db.DB()
		_ = dbInstance.Close()
	}()

	rdb, err := config.SetupRedisConnection(cfg)
	if err != nil {
		panic("failed to connect to redis")
	}
	defer rdb.Close()

	m := mailer.New(cfg.Mail)

	router := routers.SetupRouters(db, rdb, m, cfg)
	router.Run(cfg.App.Addr)
}
