package main

import (
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

type peerConfig struct {
	PubKey  string `json:"pubkey"`
	Address string `json:"address"`
}

type config struct {
	Peers []peerConfig `json:"peers"`

	ProposalRequestTimeoutMs int `json:"proposalRequestTimeoutMs"`
	PoolWorkers              int `json:"poolWorkers"`
	SendRetryAttempts        int `json:"sendRetryAttempts"`
	SendRetryBackoffMs       int `json:"sendRetryBackoffMs"`

	// Load profile.
	Rounds          int `json:"rounds"`
	RoundIntervalMs int `json:"roundIntervalMs"`
	BatchesPerRound int `json:"batchesPerRound"`
	TxsPerBatch     int `json:"txsPerBatch"`
	TxSize          int `json:"txSize"`

	LogVerbose bool `json:"logVerbose"`
}

func loadConfig(path string) (*config, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg := &config{
		ProposalRequestTimeoutMs: 1000,
		PoolWorkers:              4,
		Rounds:                   10,
		RoundIntervalMs:          1000,
		BatchesPerRound:          4,
		TxsPerBatch:              16,
		TxSize:                   256,
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if len(cfg.Peers) == 0 {
		return nil, errors.New("config has no peers")
	}
	return cfg, nil
}

func (c *config) proposalRequestTimeout() time.Duration {
	return time.Duration(c.ProposalRequestTimeoutMs) * time.Millisecond
}

func (c *config) sendRetryBackoff() time.Duration {
	return time.Duration(c.SendRetryBackoffMs) * time.Millisecond
}

func (c *config) roundInterval() time.Duration {
	return time.Duration(c.RoundIntervalMs) * time.Millisecond
}
