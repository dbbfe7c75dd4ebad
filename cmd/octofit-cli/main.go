package main

import "github.com/nfrund/octofit/cmd/octofit-cli/cmd"

func main() {
	cmd.Execute()
}
