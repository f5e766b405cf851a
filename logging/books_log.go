package logging

import (
	"go.uber.org/zap"
)

func InfoBook(l *zap.Logger, msg string, action Action, requestID, bookID string) {
	MakeInfo(l, msg,
		zap.String("request_id", requestID),
		zap.String("book_id", bookID),
		zap.String("action", action))
}

func ErrorBook(l *zap.Logger, err error, msg string, action Action, requestID, bookID string) bool {
	return CheckError(err, l, msg,
		zap.String("request_id", requestID),
		zap.String("book_id", bookID),
		zap.Error(err),
		zap.String("action", action))
}

func InfoWriteBook(l *zap.Logger, msg string, action Action, requestID, bookID, title, author string) {
	MakeInfo(l, msg,
		zap.String("request_id", requestID),
		zap.String("book_id", bookID),
		zap.String("book_title", title),
		zap.String("book_author", author),
		zap.String("action", action))
}

func ErrorWriteBook(l *zap.Logger, err error, msg string, action Action, requestID, bookID, title, author string) bool {
	return CheckError(err, l, msg,
		zap.String("request_id", requestID),
		zap.String("book_id", bookID),
		zap.String("book_title", title),
		zap.String("book_author", author),
		zap.Error(err),
		zap.String("action", action))
}

func ErrorLibrary(l *zap.Logger, err error, msg string, action Action, requestID string) bool {
	return CheckError(err, l, msg,
		zap.String("request_id", requestID),
		zap.Error(err),
		zap.String("action", action))
}
