package main

import "campus-trade-api/config"

func main() {
	config.RunServer()
}
