package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Comment traffic counters, exposed under /metrics.
var (
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendora_comments_created_total",
		Help: "Number of comments and replies created.",
	})

	CommentsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendora_comments_deleted_total",
		Help: "Number of comment delete requests that succeeded.",
	})

	ReactionsToggled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vendora_comment_reactions_toggled_total",
		Help: "Number of reaction toggles by kind.",
	}, []string{"kind"})

	ThreadLoads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendora_comment_thread_loads_total",
		Help: "Number of product thread reads served.",
	})
)
