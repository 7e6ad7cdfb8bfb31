package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/stayforge/hotel-booking-service/pkg/log"
)

func HandleAppPanic(ctx context.Context, logger log.Logger) {
	msg := recover()
	if msg == nil {
		return
	}

	logger.WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", msg),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	os.Exit(1)
}
