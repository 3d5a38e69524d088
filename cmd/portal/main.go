package main

import "procurement-portal/app"

func main() {
	app.Run()
}
