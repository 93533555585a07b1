// Package main is the Lambda binary for the update-jira entry point.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/mfaraji/manager-assistant/internal/bootstrap"
	"github.com/mfaraji/manager-assistant/internal/handler"
	"github.com/mfaraji/manager-assistant/internal/logging"
)

func main() {
	app, err := bootstrap.New(context.Background())
	if err != nil {
		logging.Error("failed to initialize update-jira", "error", err)
		os.Exit(1)
	}

	h := handler.NewUpdate(app.TrackerProvider())
	lambda.Start(h.Handle)
}
