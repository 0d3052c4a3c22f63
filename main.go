package main

import "github.com/jake-scott/tesla-wallmon/cmd"

func main() {
	cmd.Execute()
}
