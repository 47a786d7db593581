package main

import "github.com/numeralia/romanos/pkg/cli"

func main() {
	cli.Execute()
}
