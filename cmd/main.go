package main

import (
	"fmt"

	"github.com/Lappanawat/flowmind-ranocturia/config"
	"github.com/Lappanawat/flowmind-ranocturia/routes"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	r, err := routes.SetupRouter(cfg)
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	log.WithField("addr", addr).Info("starting frequency volume chart service")
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
