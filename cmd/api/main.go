package main

import (
	"context"
	"log"

	"github.com/gostorefront/go-order-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("order API failed: %v", err)
	}
}
