package main

import "github.com/mvp-joe/docpair/internal/cli"

func main() {
	cli.Execute()
}
