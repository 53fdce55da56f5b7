package ordering

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/ledgernet/ordering/consensus"
	"github.com/ledgernet/ordering/ordering/orderingpb"
	"github.com/ledgernet/ordering/pkg/logger"
	"github.com/ledgernet/ordering/pkg/worker"
)

const (
	// maxRequestSize bounds the serialized size of one BatchesRequest. A
	// request is sealed once a batch pushes it past this bound.
	maxRequestSize = 2 * 1024 * 1024

	sendBatchesTimeout = 5 * time.Second
)

// RetryPolicy bounds resending of a failed SendBatches call. The zero value
// disables resending: failures are logged and the request is dropped.
type RetryPolicy struct {
	// MaxAttempts is the number of resends after the initial call.
	MaxAttempts int
	// Backoff is slept between attempts, on the peer's queue goroutine, so
	// later sends to the same peer cannot overtake the retried one.
	Backoff time.Duration
}

// ClientConfig carries the collaborators of a Client.
type ClientConfig struct {
	Stub                   orderingpb.OnDemandOrderingClient
	ProposalFactory        ProposalFactory
	TimeProvider           TimeProvider
	ProposalRequestTimeout time.Duration
	Logger                 logger.Logger
	Callback               func(ProposalEvent)
	Keeper                 *ExecutorKeeper
	Pool                   *worker.Pool
	PeerKey                string
	Retry                  RetryPolicy
}

// Client talks to one remote ordering peer. OnBatches forwards transaction
// batches through the peer's ordered queue; OnRequestProposal fetches the
// proposal for a round, superseding any request still in flight. Neither
// call blocks on the network.
type Client struct {
	logger          logger.Logger
	stub            orderingpb.OnDemandOrderingClient
	proposalFactory ProposalFactory
	now             TimeProvider
	requestTimeout  time.Duration
	callback        func(ProposalEvent)
	keeper          *ExecutorKeeper
	pool            *worker.Pool
	peerKey         string
	retry           RetryPolicy

	mu             sync.Mutex
	cancelInFlight context.CancelFunc
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.Keeper == nil || cfg.Pool == nil {
		cfg.Logger.Panic("ordering client needs an executor keeper and a worker pool")
	}
	return &Client{
		logger:          cfg.Logger,
		stub:            cfg.Stub,
		proposalFactory: cfg.ProposalFactory,
		now:             cfg.TimeProvider,
		requestTimeout:  cfg.ProposalRequestTimeout,
		callback:        cfg.Callback,
		keeper:          cfg.Keeper,
		pool:            cfg.Pool,
		peerKey:         cfg.PeerKey,
		retry:           cfg.Retry,
	}
}

// OnBatches encodes the transactions of batches into outbound requests of at
// most maxRequestSize and submits one send task per request on this peer's
// queue. Requests preserve transaction order across the split. Empty input
// submits nothing.
func (c *Client) OnBatches(batches []Batch) {
	var request *orderingpb.BatchesRequest
	var size int

	for _, batch := range batches {
		for _, tx := range batch.Transactions() {
			enc, err := tx.Marshal()
			if err != nil {
				c.logger.Errorf("dropping transaction for %s: encode failed: %v", c.peerKey, err)
				continue
			}
			if request == nil {
				request = &orderingpb.BatchesRequest{}
				size = 0
			}
			request.Transactions = append(request.Transactions, enc)
			size += orderingpb.TransactionFieldSize(enc)
		}
		if request != nil && size >= maxRequestSize {
			c.submitSend(request)
			request = nil
		}
	}
	if request != nil && len(request.Transactions) > 0 {
		c.submitSend(request)
	}
}

// submitSend hands the sealed request to the peer queue. The task captures
// everything it touches, so it stays valid after the client is closed.
func (c *Client) submitSend(request *orderingpb.BatchesRequest) {
	peerKey, stub, log, now, retry := c.peerKey, c.stub, c.logger, c.now, c.retry
	c.keeper.ExecuteFor(peerKey, func() {
		sendBatches(peerKey, request, now, stub, log, retry)
	})
}

// sendBatches runs on the peer's queue goroutine. It reports whether the
// request was acknowledged; a false return means the request was dropped
// after exhausting the retry budget.
func sendBatches(
	peerKey string,
	request *orderingpb.BatchesRequest,
	now TimeProvider,
	stub orderingpb.OnDemandOrderingClient,
	log logger.Logger,
	retry RetryPolicy,
) bool {
	for attempt := 0; ; attempt++ {
		ctx, cancel := context.WithDeadline(context.Background(), now().Add(sendBatchesTimeout))
		log.Infof("sending %d transactions to %s", len(request.Transactions), peerKey)
		_, err := stub.SendBatches(ctx, request)
		cancel()
		if err == nil {
			promSentTransactions.Add(float64(len(request.Transactions)))
			log.Debugf("send to %s succeeded", peerKey)
			return true
		}

		promSendFailures.Inc()
		log.Errorf("send to %s failed: %v", peerKey, err)
		if attempt >= retry.MaxAttempts {
			return false
		}
		if retry.Backoff > 0 {
			time.Sleep(retry.Backoff)
		}
	}
}

// OnRequestProposal cancels the previous outstanding request, if any, and
// asks the peer for round's proposal on a pool worker. The callback is
// invoked exactly once per call; a superseded request still delivers its own
// event, normally with a nil proposal.
func (c *Client) OnRequestProposal(round consensus.Round) {
	ctx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	if c.cancelInFlight != nil {
		c.cancelInFlight()
	}
	c.cancelInFlight = cancel
	c.mu.Unlock()

	request := &orderingpb.ProposalRequest{Round: roundToProto(round)}
	stub, factory, log := c.stub, c.proposalFactory, c.logger
	callback, now, timeout := c.callback, c.now, c.requestTimeout

	c.pool.Submit(func() {
		defer cancel()
		promProposalRequests.Inc()

		callCtx, cancelCall := context.WithDeadline(ctx, now().Add(timeout))
		defer cancelCall()

		log.Infof("requesting proposal for round %v", round)
		response, err := stub.RequestProposal(callCtx, request, grpc.WaitForReady(true))
		if err != nil {
			promProposalFailures.Inc()
			log.Errorf("proposal request for round %v failed: %v", round, err)
			callback(ProposalEvent{Round: round})
			return
		}
		if response.GetProposal() == nil {
			log.Debugf("no proposal for round %v", round)
			callback(ProposalEvent{Round: round})
			return
		}
		proposal, err := factory.Build(response.GetProposal())
		if err != nil {
			promProposalFailures.Inc()
			log.Errorf("discarding proposal for round %v: %v", round, err)
			callback(ProposalEvent{Round: round})
			return
		}
		callback(ProposalEvent{Proposal: proposal, Round: round})
	})
}

// Close cancels the in-flight proposal request, if any. It does not wait for
// background tasks; they carry their own copies of what they need.
func (c *Client) Close() {
	c.mu.Lock()
	cancel := c.cancelInFlight
	c.cancelInFlight = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
