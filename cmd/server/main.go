package main

import "costindex/go_backend/internal/app"

func main() {
	app.Run()
}
