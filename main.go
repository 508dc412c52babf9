package main

import (
	"signalalert/connection"
)

func main() {
	connection.StartServer()
}
