package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/contract/booking/:booking_id/", "200"))

	RecordHTTPRequest(http.MethodGet, "/api/contract/booking/:booking_id/", http.StatusOK, 15*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/contract/booking/:booking_id/", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordHTTPRequest_UnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "unmatched", "404"))

	RecordHTTPRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}
