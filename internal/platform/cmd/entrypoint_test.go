package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	Amount int `env:"GENLING_ENTRY_TEST_AMOUNT" envDefault:"3"`
}

func TestParseConfig(t *testing.T) {
	var cfg sampleConfig
	require.NoError(t, ParseConfig(&cfg))
	assert.Equal(t, 3, cfg.Amount)

	assert.Error(t, ParseConfig[sampleConfig](nil))
}

func TestParseArgs(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	n := fs.Int("n", 1, "")
	require.NoError(t, ParseArgs(fs, []string{"-n", "7"}))
	assert.Equal(t, 7, *n)

	require.NoError(t, ParseArgs(flag.NewFlagSet("empty", flag.ContinueOnError), nil))
	assert.Error(t, ParseArgs(nil, nil))
}

func TestRunWithTelemetry(t *testing.T) {
	t.Setenv("GENLING_OTEL_ENDPOINT", "")

	boom := errors.New("boom")
	var ran bool
	err := RunWithTelemetry(context.Background(), ServiceGenling, func(context.Context) error {
		ran = true
		return boom
	})
	assert.True(t, ran)
	assert.ErrorIs(t, err, boom)

	assert.Error(t, RunWithTelemetry(context.Background(), " ", func(context.Context) error { return nil }))
	assert.Error(t, RunWithTelemetry(context.Background(), ServiceGenling, nil))
}
