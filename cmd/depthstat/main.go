// cmd/depthstat/main.go
package main

import (
	"os"

	"depthstat/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
