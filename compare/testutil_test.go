package compare_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/tspbench/compare"
)

// smallConfig is a quick run that still exercises the exhaustive search.
func smallConfig() compare.Config {
	cfg := compare.DefaultConfig()
	cfg.Cities = 7
	cfg.Seed = 11

	return cfg
}

// observedLogger captures every entry at debug and above.
func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)

	return zap.New(core), logs
}

// decodeJSON renders rep as JSON and decodes it back into a Document.
func decodeJSON(t *testing.T, rep compare.Report) compare.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, rep.Write(&buf, compare.FormatJSON))

	var doc compare.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	return doc
}
