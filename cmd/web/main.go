package main

import "modelboard_backend/internal/app"

func main() {
	app.Run()
}
