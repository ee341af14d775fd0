package main

import "github.com/opst/trackfab/cmd/trackctl/cli"

func main() {
	cli.Execute()
}
