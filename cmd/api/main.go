package main

import (
	"github.com/withsocio/socio-backend/config"
	"github.com/withsocio/socio-backend/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
