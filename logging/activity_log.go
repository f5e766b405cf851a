package logging

import (
	"go.uber.org/zap"
)

func ErrorActivity(l *zap.Logger, err error, msg string, action Action, requestID, username string) bool {
	return CheckError(err, l, msg,
		zap.String("request_id", requestID),
		zap.String("username", username),
		zap.Error(err),
		zap.String("action", action))
}
