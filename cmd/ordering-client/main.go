// Command ordering-client connects to a set of on-demand ordering peers,
// forwards generated transaction batches to each of them and requests a
// proposal per round. It is the development driver for the ordering client
// packages.
package main

import (
	"crypto/rand"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/opentracer"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/ledgernet/ordering/consensus"
	"github.com/ledgernet/ordering/network"
	"github.com/ledgernet/ordering/ordering"
	"github.com/ledgernet/ordering/pkg/logger"
	"github.com/ledgernet/ordering/pkg/worker"
)

var (
	confFile    = flag.StringP("config", "c", "config.yaml", "Path to config")
	metricsAddr = flag.String("metrics-addr", ":9091", "Prometheus metrics listen address")
	pprofAddr   = flag.String("pprof-addr", ":6060", "pprof listen address")
	trace       = flag.Bool("trace", false, "Enable the Datadog opentracing tracer")
)

// rawTransaction is a pre-encoded transaction; the load driver generates
// payloads directly in wire form.
type rawTransaction []byte

func (t rawTransaction) Marshal() ([]byte, error) { return t, nil }

type txBatch []ordering.Transaction

func (b txBatch) Transactions() []ordering.Transaction { return b }

func startMetricsServer() {
	http.Handle("/metrics", promhttp.Handler())
	http.ListenAndServe(*metricsAddr, nil)
}

func main() {
	flag.Parse()

	go func() {
		http.ListenAndServe(*pprofAddr, nil)
	}()
	go startMetricsServer()

	if *trace {
		t := opentracer.New(tracer.WithServiceName("ordering-client"))
		defer tracer.Stop()
		opentracing.SetGlobalTracer(t)
	}

	log := logger.NewDefaultLogger()

	cfg, err := loadConfig(*confFile)
	if err != nil {
		log.Fatalf("Unable to load config: %v", err)
	}
	if cfg.LogVerbose {
		log.EnableDebug()
	}

	keeper := ordering.NewExecutorKeeper(log)
	pool := worker.NewPool(cfg.PoolWorkers)
	pool.Run()

	conns := network.NewClientFactory(log)
	factory := ordering.NewFactory(ordering.FactoryConfig{
		ProposalFactory:        ordering.DefaultProposalFactory{},
		TimeProvider:           time.Now,
		ProposalRequestTimeout: cfg.proposalRequestTimeout(),
		Logger:                 log,
		Connections:            conns,
		Callback: func(ev ordering.ProposalEvent) {
			if ev.Proposal == nil {
				log.Infof("no proposal for round %v", ev.Round)
				return
			}
			log.Infof("proposal for round %v: %d transactions",
				ev.Round, len(ev.Proposal.Transactions))
		},
		Keeper: keeper,
		Pool:   pool,
		Retry: ordering.RetryPolicy{
			MaxAttempts: cfg.SendRetryAttempts,
			Backoff:     cfg.sendRetryBackoff(),
		},
	})

	clients := make([]*ordering.Client, 0, len(cfg.Peers))
	for _, p := range cfg.Peers {
		c, err := factory.Create(ordering.Peer{PubKey: p.PubKey, Address: p.Address})
		if err != nil {
			log.Fatalf("Unable to create client: %v", err)
		}
		clients = append(clients, c)
	}

	stopC := make(chan os.Signal, 1)
	signal.Notify(stopC, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		<-stopC
		close(done)
	}()

	var g errgroup.Group
	for i := range clients {
		c := clients[i]
		g.Go(func() error {
			for r := 1; r <= cfg.Rounds; r++ {
				select {
				case <-done:
					return nil
				default:
				}

				batches := make([]ordering.Batch, cfg.BatchesPerRound)
				for b := range batches {
					txs := make(txBatch, cfg.TxsPerBatch)
					for t := range txs {
						payload := make([]byte, cfg.TxSize)
						rand.Read(payload)
						txs[t] = rawTransaction(payload)
					}
					batches[b] = txs
				}
				c.OnBatches(batches)
				c.OnRequestProposal(consensus.Round{BlockRound: uint64(r)})

				time.Sleep(cfg.roundInterval())
			}
			return nil
		})
	}

	g.Wait()
	for _, c := range clients {
		c.Close()
	}
	keeper.Close()
	pool.Stop()
	conns.Close()
	log.Infof("Done")
}
