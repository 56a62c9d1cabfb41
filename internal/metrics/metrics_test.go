package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustRegister(t *testing.T) {
	registry := prometheus.NewRegistry()
	require.NotPanics(t, func() { MustRegister(registry) })
	assert.Panics(t, func() { MustRegister(registry) }, "double registration must panic")

	before := testutil.ToFloat64(LoginsTotal.WithLabelValues(ResultSuccess))
	LoginsTotal.WithLabelValues(ResultSuccess).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(LoginsTotal.WithLabelValues(ResultSuccess)))

	families, err := registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "auth_logins_total")
}

func TestResult(t *testing.T) {
	assert.Equal(t, ResultSuccess, Result(nil))
	assert.Equal(t, ResultFailure, Result(errors.New("x")))
}
