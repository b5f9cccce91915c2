package main

import (
	"context"
	"os"

	"github.com/ngxhuy/viva/cmd"
)

func main() {
	ctx := context.Background()
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
