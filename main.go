package main

import "github.com/alexiusacademia/gorcs/cmd"

func main() {
	cmd.Execute()
}
