package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestForContext_AddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(os.Stderr)

	Setup("debug")

	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ForContext(ctx).Info("pass finished")
	assert.Contains(t, buf.String(), "correlation_id="+id)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(os.Stderr)

	Setup("verbose")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.Empty(t, GetCorrelationID(context.Background()))
}
