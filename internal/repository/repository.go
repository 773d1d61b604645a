package repository

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("repository")

func statsKey(profileID string) string {
	return fmt.Sprintf("stats:%s", profileID)
}

func settingsKey(profileID string) string {
	return fmt.Sprintf("settings:%s", profileID)
}

// fail records err on span and returns it wrapped with msg.
func fail(span trace.Span, msg string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	return fmt.Errorf("%s: %w", msg, err)
}
