package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveQuery(t *testing.T) {
	before := testutil.ToFloat64(QueriesTotal.WithLabelValues(QueryMatches, "ok"))

	ObserveQuery(QueryMatches, "ok", time.Now(), 12, 3)

	assert.InDelta(t, before+1, testutil.ToFloat64(QueriesTotal.WithLabelValues(QueryMatches, "ok")), 1e-9)
}

func TestObserveQuery_SkipsUnknownCounts(t *testing.T) {
	before := testutil.CollectAndCount(CandidatesScored)

	ObserveQuery(QueryRecommendations, "error", time.Now(), -1, -1)

	assert.Equal(t, before, testutil.CollectAndCount(CandidatesScored))
}
