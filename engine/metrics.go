package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var checkDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "reishi_check_duration_sec",
	Help: "Total duration of message evaluation",
})

var checkCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "reishi_checks_processed",
	Help: "Number of messages evaluated",
}, []string{"clean"})

var fastExitCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "reishi_check_fast_exits",
	Help: "Number of evaluations short-circuited before any detector ran",
}, []string{"reason"})

var violationCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "reishi_violations",
	Help: "Number of violations recorded by detectors",
}, []string{"kind"})

var ruleFaultCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "reishi_rule_faults",
	Help: "Number of detector faults swallowed (fail-open)",
})

var punishCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "reishi_punishments",
	Help: "Number of punishments applied",
}, []string{"kind"})

var punishDedupeCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "reishi_punishments_deduped",
	Help: "Number of punishment attempts dropped by the dedup claim",
})

var punishErrorCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "reishi_punishment_errors",
	Help: "Number of punishment executor failures",
})

var deleteCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "reishi_messages_deleted",
	Help: "Number of messages deleted",
})
