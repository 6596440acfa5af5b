package logging

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger/internal/prompt"
)

// LoggingWrapper turns a menu handler into a prompt.HandlerFunc that logs
// its start, outcome and duration. Each invocation gets fresh LogData.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(context.Context, *prompt.Prompt, *LogData) error,
) prompt.HandlerFunc {
	return func(ctx context.Context, p *prompt.Prompt) error {
		log.Debugf("Handler.%v.Start", loggingName)

		logData := NewLogData(log)
		endTimer := logData.AddTiming("durationMs")
		err := handler(ctx, p, logData)
		endTimer()

		switch {
		case err == nil:
			logData.Log().Infof("Handler.%v.Complete", loggingName)
		case errors.Is(err, io.EOF):
		case errors.Is(err, prompt.ErrInvalidInput):
			logData.Log().WithError(err).Infof("Handler.%v.InvalidInput", loggingName)
		default:
			logData.Log().WithError(err).Warnf("Handler.%v.Error", loggingName)
		}
		return err
	}
}
