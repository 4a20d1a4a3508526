// utils/firebase.go
package utils

import (
	"context"

	"storably/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase app and messaging client. Push
// delivery is optional: without credentials the service runs with pushes
// disabled.
func FirebaseInit() {
	logger := GetLogger()
	credsFile := config.AppConfig.FirebaseCredentialsFile
	if credsFile == "" {
		logger.Warn("firebase: no credentials configured, push notifications disabled")
		return
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credsFile))
	if err != nil {
		logger.Error("firebase: error initializing app", zap.Error(err))
		return
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		logger.Error("firebase: error getting Messaging client", zap.Error(err))
		return
	}
	FCMClient = client
}
