package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClubMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewClubMetrics(reg)

	m.IncVote("proposal")
	m.IncVote("proposal")
	m.IncResolution("withdrawal", "Completed")
	m.IncRejection("cast_vote", fmt.Errorf("%w: again", apperrors.ErrDuplicate))
	m.ObserveDistribution(decimal.RequireFromString("500.50"))
	m.ObserveRequest("GET", "/api/v1/members", "200", 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.votes.WithLabelValues("proposal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolutions.WithLabelValues("withdrawal", "Completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("cast_vote", "duplicate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.distributions))
	assert.Equal(t, 500.5, testutil.ToFloat64(m.distributed))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requests))
}

func TestNilClubMetricsIsNoop(t *testing.T) {
	var m *ClubMetrics
	assert.NotPanics(t, func() {
		m.IncVote("proposal")
		m.IncResolution("event", "Approved")
		m.IncRejection("distribute", apperrors.ErrValidation)
		m.ObserveDistribution(decimal.NewFromInt(1))
		m.ObserveRequest("GET", "/", "200", time.Second)
	})

	unregistered := NewClubMetrics(nil)
	assert.NotPanics(t, func() { unregistered.IncVote("proposal") })
}

func TestReason(t *testing.T) {
	assert.Equal(t, "forbidden", Reason(fmt.Errorf("wrap: %w", apperrors.ErrForbidden)))
	assert.Equal(t, "internal", Reason(fmt.Errorf("boom")))
}
