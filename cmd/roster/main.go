package main

import (
	"context"
	"fmt"
	"os"

	"go-roster/internal/shared/apperror"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	apperror.Init()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		appErr := apperror.AsAppError(err)
		fmt.Fprintf(os.Stderr, "Проверьте ввод: %v [%s]\n", err, appErr.Code)
		os.Exit(appErr.ExitCode)
	}
}
