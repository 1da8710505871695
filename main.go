package main

import "github.com/lifeline-labs/organ-backend-go/cmd"

func main() {
	cmd.Execute()
}
