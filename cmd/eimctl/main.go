package main

import "github.com/Ali-Odeh/Electricity-Invoice-Management/cmd/eimctl/cmd"

func main() {
	cmd.Execute()
}
