package main

import "github.com/sennin361/senninmessagever.3/cmd/server"

func main() {
	server.NewServer().Run()
}
