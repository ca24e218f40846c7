package main

import (
	"github.com/gin-gonic/gin"
	"github.com/powerman/structlog"

	"github.com/Hasnainlakhani01/business-management/config"
	"github.com/Hasnainlakhani01/business-management/database"
	"github.com/Hasnainlakhani01/business-management/routers"
	"github.com/Hasnainlakhani01/business-management/store"
	"github.com/Hasnainlakhani01/business-management/templates"
)

func main() {
	log := structlog.New()

	conf := config.Open(log, "config.toml")

	db, err := database.SetupDatabaseConnection(conf.DatabaseFile)
	if err != nil {
		log.Fatal(err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(templates.Must())

	routers.SetupRouter(r, store.New(db))

	log.Info("server listening", "port", conf.Port)
	if err := r.Run(":" + conf.Port); err != nil {
		log.Fatal(err)
	}
}
