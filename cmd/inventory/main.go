// Package main is the entry point for the inventory service.
//
// @title Inventory API
// @version 1.0
// @description Brand and category administration with declarative filtering, sorting, projection, includes and pagination.
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
package main

import "github.com/yourorg/inventory/cmd/inventory/cmd"

func main() {
	cmd.Execute()
}
