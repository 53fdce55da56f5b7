// Package network provides the gRPC connection factory the ordering client
// consumes. The core never sees *grpc.ClientConn, only the generated stub.
package network

import (
	"context"
	"sync"
	"time"

	"github.com/grpc-ecosystem/grpc-opentracing/go/otgrpc"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"

	"github.com/ledgernet/ordering/ordering"
	"github.com/ledgernet/ordering/ordering/orderingpb"
	"github.com/ledgernet/ordering/pkg/logger"
)

const dialTimeout = 10 * time.Second

// ClientFactory dials ordering peers and keeps the connections for Close.
type ClientFactory struct {
	logger logger.Logger

	dialCtx    context.Context
	dialCancel func()

	mu    sync.Mutex
	conns []*grpc.ClientConn
}

func NewClientFactory(log logger.Logger) *ClientFactory {
	ctx, cancel := context.WithCancel(context.Background())
	return &ClientFactory{
		logger:     log,
		dialCtx:    ctx,
		dialCancel: cancel,
	}
}

// CreateClient dials peer and returns the service stub for it.
func (f *ClientFactory) CreateClient(peer ordering.Peer) (orderingpb.OnDemandOrderingClient, error) {
	ctx, cancel := context.WithTimeout(f.dialCtx, dialTimeout)
	defer cancel()

	f.logger.Infof("dialing ordering peer %s at %s", peer.PubKey, peer.Address)
	conn, err := grpc.DialContext(ctx, peer.Address,
		grpc.WithInsecure(), grpc.WithBlock(),
		grpc.WithUnaryInterceptor(
			otgrpc.OpenTracingClientInterceptor(opentracing.GlobalTracer())),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff: backoff.Config{
				BaseDelay:  1.0 * time.Second,
				Multiplier: 1.5,
				Jitter:     0.2,
				MaxDelay:   5 * time.Second,
			},
		}),
		grpc.WithInitialWindowSize(1<<20),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "dialing ordering peer %s at %s", peer.PubKey, peer.Address)
	}

	f.mu.Lock()
	f.conns = append(f.conns, conn)
	f.mu.Unlock()

	return orderingpb.NewOnDemandOrderingClient(conn), nil
}

// Close aborts in-progress dials and closes every connection handed out.
func (f *ClientFactory) Close() {
	f.dialCancel()
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, conn := range f.conns {
		conn.Close()
	}
	f.conns = nil
}
