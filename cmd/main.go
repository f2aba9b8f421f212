package main

import (
	"log"
	"time"

	"github.com/shuldan/appcore/pkg/app"
	"github.com/shuldan/appcore/pkg/bootstrap"
)

func main() {
	ctx, err := bootstrap.New("APPCORE_", "config/app.yaml").Boot()
	if err != nil {
		log.Fatalf("boot failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if app.Current().WaitForReady(5 * time.Second) {
			log.Println("worker: context is ready")
		} else {
			log.Println("worker: timed out waiting for readiness")
		}
	}()

	if services, err := ctx.Services(); err == nil {
		_ = services.Register("greeter", func() string { return "hello" })
	}

	if err := ctx.SetReady(); err != nil {
		log.Fatalf("set ready failed: %v", err)
	}
	<-done

	log.Printf("configured=%v url=%q", ctx.IsConfigured(), ctx.ApplicationURL())

	if err := ctx.Dispose(); err != nil {
		log.Fatalf("dispose failed: %v", err)
	}
}
