package main

import "recaudit/cmd/recaudit/cmd"

func main() {
	cmd.Execute()
}
