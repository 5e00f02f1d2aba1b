// =============================
// File: internal/blockchain/solbc/rpc_pool.go
// =============================
package solbc

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"golang.org/x/sync/errgroup"
)

// RPCPool rotates read requests across a set of RPC endpoints.
type RPCPool struct {
	clients []*rpc.Client
	mutex   sync.Mutex
	index   int
}

// NewRPCPool builds a pool from endpoint URLs, one client per endpoint.
func NewRPCPool(rpcList []string) *RPCPool {
	clients := make([]*rpc.Client, 0, len(rpcList))
	for _, url := range rpcList {
		clients = append(clients, rpc.New(url))
	}

	return &RPCPool{
		clients: clients,
		index:   0,
	}
}

// GetClient returns the next client in round-robin order.
func (p *RPCPool) GetClient() *rpc.Client {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	client := p.clients[p.index]
	p.index = (p.index + 1) % len(p.clients)
	return client
}

// Size returns the number of configured endpoints.
func (p *RPCPool) Size() int {
	return len(p.clients)
}

// CheckClientHealth probes a client with a short blockhash query.
func (p *RPCPool) CheckClientHealth(ctx context.Context, client *rpc.Client) bool {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := client.GetLatestBlockhash(cctx, rpc.CommitmentFinalized)
	return err == nil
}

// HealthyClients probes every endpoint concurrently and returns how many
// respond.
func (p *RPCPool) HealthyClients(ctx context.Context) int {
	var healthy atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	for _, client := range p.clients {
		client := client
		g.Go(func() error {
			if p.CheckClientHealth(gctx, client) {
				healthy.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return int(healthy.Load())
}
