package cacheclient

import (
	"time"

	"github.com/QuangTung97/go-memcache/memcache"
)

//go:generate moq -out cacheclient_mocks.go . Cache Pipeline

// LeaseGetType ...
type LeaseGetType int

const (
	// LeaseGetTypeOK when entry is found
	LeaseGetTypeOK LeaseGetType = 1

	// LeaseGetTypeGranted when entry is not found but lease is granted
	LeaseGetTypeGranted LeaseGetType = 2

	// LeaseGetTypeRejected when entry is not found and lease is not granted
	LeaseGetTypeRejected LeaseGetType = 3
)

// GetOutput ...
type GetOutput struct {
	Found bool
	Data  []byte
}

// LeaseGetOutput ...
type LeaseGetOutput struct {
	Type    LeaseGetType
	Data    []byte
	LeaseID uint64
}

// Cache for remote cache (like memcached)
type Cache interface {
	// Pipeline can NOT be shared between goroutines
	Pipeline() Pipeline
}

// Pipeline for batching cache requests, the returned functions wait for the responses
type Pipeline interface {
	Get(key string) func() (GetOutput, error)
	LeaseGet(key string) func() (LeaseGetOutput, error)
	LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) func() error
	Delete(key string) func() error
	Finish()
}

// Client ...
type Client struct {
	client *memcache.Client
}

type memcachePipeline struct {
	pipe *memcache.Pipeline
}

var _ Cache = &Client{}

var _ Pipeline = memcachePipeline{}

// New ...
func New(addr string, numConns int) *Client {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		panic(err)
	}
	return &Client{
		client: client,
	}
}

// UnsafeFlushAll ...
func (c *Client) UnsafeFlushAll() error {
	p := c.client.Pipeline()
	defer p.Finish()
	return p.FlushAll()()
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// Pipeline ...
func (c *Client) Pipeline() Pipeline {
	return memcachePipeline{
		pipe: c.client.Pipeline(),
	}
}

// Get ...
func (p memcachePipeline) Get(key string) func() (GetOutput, error) {
	fn := p.pipe.MGet(key, memcache.MGetOptions{})
	return func() (GetOutput, error) {
		resp, err := fn()
		if err != nil {
			return GetOutput{}, err
		}
		if resp.Type == memcache.MGetResponseTypeVA {
			return GetOutput{
				Found: true,
				Data:  resp.Data,
			}, nil
		}
		return GetOutput{}, nil
	}
}

// LeaseGet grants a lease to the first caller on a miss, other callers are rejected until the lease is set
func (p memcachePipeline) LeaseGet(key string) func() (LeaseGetOutput, error) {
	fn := p.pipe.MGet(key, memcache.MGetOptions{
		N:   5,
		CAS: true,
	})
	return func() (LeaseGetOutput, error) {
		resp, err := fn()
		if err != nil {
			return LeaseGetOutput{}, err
		}
		if resp.Type != memcache.MGetResponseTypeVA || resp.Flags&memcache.MGetFlagZ != 0 {
			return LeaseGetOutput{
				Type: LeaseGetTypeRejected,
			}, nil
		}

		if resp.Flags&memcache.MGetFlagW != 0 {
			return LeaseGetOutput{
				Type:    LeaseGetTypeGranted,
				LeaseID: resp.CAS,
			}, nil
		}

		return LeaseGetOutput{
			Type: LeaseGetTypeOK,
			Data: resp.Data,
		}, nil
	}
}

// LeaseSet ...
func (p memcachePipeline) LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) func() error {
	fn := p.pipe.MSet(key, value, memcache.MSetOptions{
		CAS: leaseID,
		TTL: ttl,
	})
	return func() error {
		_, err := fn()
		return err
	}
}

// Delete ...
func (p memcachePipeline) Delete(key string) func() error {
	fn := p.pipe.MDel(key, memcache.MDelOptions{})
	return func() error {
		_, err := fn()
		return err
	}
}

// Finish ...
func (p memcachePipeline) Finish() {
	p.pipe.Finish()
}
