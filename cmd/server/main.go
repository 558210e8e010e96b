package main

import (
	"os"

	"prism-ai/backend/internal/app"
)

// @title           Prism API
// @version         1.0
// @description     Multi-provider AI chat backend with model routing and aggregator fallback.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
