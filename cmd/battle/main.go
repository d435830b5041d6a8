package main

import (
	"context"

	"github.com/signadot/streamdispatch/dispatch"

	"github.com/scott-cotton/cli"
)

func main() {
	dispatch.SetLogger(theLog)
	cli.MainContext(context.Background(), MainCommand())
}
