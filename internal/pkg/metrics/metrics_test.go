//go:build unit
// +build unit

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsEnabled(t *testing.T) {
	assert.True(t, IsEnabled(), "enabled by default")

	Disable()
	assert.False(t, IsEnabled())

	Enable()
	assert.True(t, IsEnabled())
}

func TestRecordOperation(t *testing.T) {
	Enable()
	OperationsTotal.Reset()
	OperationDuration.Reset()

	RecordOperation(OpEncrypt, "AES", StatusSuccess, 0.002)
	RecordOperation(OpEncrypt, "AES", StatusSuccess, 0.003)
	RecordOperation(OpDecrypt, "AES", StatusError, 0.001)

	assert.Equal(t, 2, testutil.CollectAndCount(OperationsTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(OperationsTotal.WithLabelValues(OpEncrypt, "AES", StatusSuccess)))
	assert.Equal(t, 2, testutil.CollectAndCount(OperationDuration))
}

func TestRecordError(t *testing.T) {
	Enable()
	ErrorsTotal.Reset()

	RecordError(OpDecrypt, "AES", "decryption_failed")

	assert.Equal(t, float64(1), testutil.ToFloat64(ErrorsTotal.WithLabelValues(OpDecrypt, "AES", "decryption_failed")))
}

func TestRecordHTTPRequest(t *testing.T) {
	Enable()
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("POST", "/api/v1/ctb/md5/hash", "200", 0.01)

	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/ctb/md5/hash", "200")))
}

func TestDisabledRecordsNothing(t *testing.T) {
	OperationsTotal.Reset()
	Disable()
	defer Enable()

	RecordOperation(OpHash, "MD5", StatusSuccess, 0.001)

	assert.Equal(t, 0, testutil.CollectAndCount(OperationsTotal))
}
