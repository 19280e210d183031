// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - JSON RPC client for the ledger node
package rpccalls

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/util"
)

// Options - connection settings
type Options struct {
	Connect     string        // host:port
	Fingerprint string        // optional hex SHA3-256 of the server certificate
	PerSecond   float64       // request rate
	Burst       int           // request burst
	Verbose     bool          // dump every request and reply
	Handle      io.Writer     // if verbose is set output items here
	Timeout     time.Duration // dial timeout
}

// Client - to hold RPC connections streams
type Client struct {
	log     *logger.L
	conn    net.Conn
	client  *rpc.Client
	limiter *rate.Limiter
	verbose bool
	handle  io.Writer
}

// NewClient - create a TLS RPC connection to a ledger node
func NewClient(log *logger.L, options Options) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	if "" != options.Fingerprint {
		pin, err := util.ParseFingerprint(options.Fingerprint)
		if nil != err {
			return nil, err
		}
		tlsConfig.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
			if 0 == len(rawCerts) {
				return fault.ErrCertificateMismatch
			}
			if pin != util.Fingerprint(rawCerts[0]) {
				return fault.ErrCertificateMismatch
			}
			return nil
		}
	}

	dialer := &net.Dialer{
		Timeout: options.Timeout,
	}
	conn, err := tls.DialWithDialer(dialer, "tcp", options.Connect, tlsConfig)
	if nil != err {
		log.Errorf("connect: %q  error: %s", options.Connect, err)
		return nil, err
	}
	log.Infof("connected: %q", options.Connect)

	return NewClientFromConn(log, conn, options), nil
}

// NewClientFromConn - wrap an established stream
func NewClientFromConn(log *logger.L, conn net.Conn, options Options) *Client {
	perSecond := rate.Limit(options.PerSecond)
	if options.PerSecond <= 0 {
		perSecond = rate.Inf
	}
	burst := options.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		log:     log,
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		limiter: rate.NewLimiter(perSecond, burst),
		verbose: options.Verbose,
		handle:  options.Handle,
	}
}

// Close - shutdown the connection
func (c *Client) Close() error {
	err := c.client.Close()
	c.conn.Close()
	return err
}

// dump a request or reply when verbose
func (c *Client) printJson(title string, message interface{}) {
	if !c.verbose || nil == c.handle {
		return
	}
	if err := util.PrintJson(c.handle, title, message); nil != err {
		c.log.Warnf("%s  error: %s", title, err)
	}
}

// call - rate limited, cancellable request
//
// the reply is decoded into a value owned by the request and copied out
// only once the request has completed; a cancelled request may still be
// decoding when call returns
func call[T any](ctx context.Context, c *Client, method string, arguments interface{}) (T, error) {
	var reply T

	r := c.limiter.Reserve()
	if !r.OK() {
		return reply, fault.ErrRateLimiting
	}
	if delay := r.Delay(); delay > 0 {
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			r.Cancel()
			return reply, ctx.Err()
		case <-t.C:
		}
	}

	c.printJson(method+" Request", arguments)

	private := new(T)
	request := c.client.Go(method, arguments, private, make(chan *rpc.Call, 1))
	select {
	case <-ctx.Done():
		return reply, ctx.Err()
	case <-request.Done:
	}
	if nil != request.Error {
		c.log.Debugf("%s  error: %s", method, request.Error)
		return reply, request.Error
	}

	reply = *private
	c.printJson(method+" Reply", reply)
	return reply, nil
}
