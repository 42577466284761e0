package pkg

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	logger *logrus.Logger
}

func NewHandler(logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{logger: logger}
}

// Handle logs the raw resolver event and returns an empty result.
func (h *Handler) Handle(ctx context.Context, payload json.RawMessage) error {
	event, err := ParseResolverEvent(payload)
	if err != nil {
		return err
	}
	raw, err := event.RawJSON()
	if err != nil {
		return err
	}
	entry := h.logger.WithContext(ctx).
		WithField("field_name", event.FieldName()).
		WithField("type_name", event.TypeName())
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		entry = entry.
			WithField("aws_request_id", lc.AwsRequestID).
			WithField("function_arn", lc.InvokedFunctionArn)
	}
	entry.Info("event " + raw)
	return nil
}
