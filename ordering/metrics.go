package ordering

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	promActiveQueues = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "ordering",
		Subsystem: "client",
		Name:      "active_peer_queues",
		Help:      "Per-peer send queues currently kept",
	})
	promSentTransactions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ordering",
		Subsystem: "client",
		Name:      "sent_transactions",
		Help:      "Transactions successfully forwarded to ordering peers",
	})
	promSendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ordering",
		Subsystem: "client",
		Name:      "send_failures",
		Help:      "Failed SendBatches calls",
	})
	promProposalRequests = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ordering",
		Subsystem: "client",
		Name:      "proposal_requests",
		Help:      "Issued RequestProposal calls",
	})
	promProposalFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ordering",
		Subsystem: "client",
		Name:      "proposal_request_failures",
		Help:      "RequestProposal calls that ended without a usable proposal",
	})
)
