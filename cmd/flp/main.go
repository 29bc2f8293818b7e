package main

import "github.com/SpendLessDaw/flp/cmd/flp/cmd"

func main() {
	cmd.Execute()
}
