package main

import (
	"log"
	"os"

	dotenv "github.com/joho/godotenv"
)

func main() {
	// .env is optional; it carries field-provisioning overrides such as
	// SUNMON_PRODUCT.
	if err := dotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env file: %v", err)
	}

	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}
