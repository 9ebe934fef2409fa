package metrics

import (
	"errors"
	"time"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// ClubMetrics records governance and money-movement activity.
// A nil *ClubMetrics is valid and records nothing.
type ClubMetrics struct {
	votes         *prometheus.CounterVec
	resolutions   *prometheus.CounterVec
	rejections    *prometheus.CounterVec
	distributions prometheus.Counter
	distributed   prometheus.Counter
	requests      *prometheus.HistogramVec
}

// NewClubMetrics registers the club metrics on the provided registerer.
func NewClubMetrics(reg prometheus.Registerer) *ClubMetrics {
	if reg == nil {
		return &ClubMetrics{}
	}
	m := &ClubMetrics{
		votes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "club_votes_cast_total",
			Help: "Votes accepted, by item kind.",
		}, []string{"kind"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "club_resolutions_total",
			Help: "Items moved to a terminal status, by kind and status.",
		}, []string{"kind", "status"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "club_rejections_total",
			Help: "Operations rejected without mutating state, by operation and reason.",
		}, []string{"operation", "reason"}),
		distributions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_distributions_total",
			Help: "Completed profit distributions.",
		}),
		distributed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_distributed_amount_total",
			Help: "Total profit credited to members by distributions.",
		}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.votes, m.resolutions, m.rejections, m.distributions, m.distributed, m.requests)
	return m
}

// IncVote counts an accepted vote.
func (m *ClubMetrics) IncVote(kind string) {
	if m == nil || m.votes == nil {
		return
	}
	m.votes.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncResolution counts a terminal transition.
func (m *ClubMetrics) IncResolution(kind, status string) {
	if m == nil || m.resolutions == nil {
		return
	}
	m.resolutions.WithLabelValues(normalizeLabel(kind), normalizeLabel(status)).Inc()
}

// IncRejection counts a rejected operation, labelled by the error's category.
func (m *ClubMetrics) IncRejection(operation string, err error) {
	if m == nil || m.rejections == nil || err == nil {
		return
	}
	m.rejections.WithLabelValues(normalizeLabel(operation), Reason(err)).Inc()
}

// ObserveDistribution records a completed distribution of total.
func (m *ClubMetrics) ObserveDistribution(total decimal.Decimal) {
	if m == nil || m.distributions == nil {
		return
	}
	m.distributions.Inc()
	f, _ := total.Float64()
	m.distributed.Add(f)
}

// ObserveRequest records the duration of one HTTP request.
func (m *ClubMetrics) ObserveRequest(method, route, status string, d time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	m.requests.WithLabelValues(method, normalizeLabel(route), status).Observe(d.Seconds())
}

// Reason maps an error to a low-cardinality label.
func Reason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return "validation"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrDuplicate):
		return "duplicate"
	case errors.Is(err, apperrors.ErrStateConflict):
		return "state_conflict"
	case errors.Is(err, apperrors.ErrForbidden):
		return "forbidden"
	case errors.Is(err, apperrors.ErrInconsistentState):
		return "inconsistent_state"
	case errors.Is(err, apperrors.ErrUnavailable):
		return "unavailable"
	}
	return "internal"
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
