package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

var exitFunc = os.Exit

func main() {
	app := newAppContext()
	ctx := ports.WithCorrelationID(context.Background(), ports.GenerateCorrelationID())

	if err := newRootCmd(app).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
