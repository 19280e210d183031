// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast confirmed settlement events
//
// each event is a two part message: the topic followed by the JSON
// encoded event, so subscribers can filter on the topic prefix
package publish

import (
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/chainaim3003/algoTITANV6-sub000/fault"
	"github.com/chainaim3003/algoTITANV6-sub000/record"
	"github.com/chainaim3003/algoTITANV6-sub000/transactionrecord"
)

// topics
const (
	TradeCreated   = "trade.created"
	TradeFunded    = "trade.funded"
	TradeExecuted  = "trade.executed"
	TradeCancelled = "trade.cancelled"
)

// Configuration - a block of configuration data
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
}

// Event - a confirmed change to a trade
type Event struct {
	OperationId string                    `json:"operationId"`
	TradeId     uint64                    `json:"tradeId,string"`
	GroupId     transactionrecord.GroupId `json:"groupId"`
	Round       uint64                    `json:"round"`
	Trade       *record.Trade             `json:"trade,omitempty"`
}

// Publisher - sink for events
type Publisher interface {
	Publish(topic string, event *Event) error
	Close() error
}

// Broadcaster - zmq PUB socket bound to every configured address
type Broadcaster struct {
	sync.Mutex // socket is not safe for concurrent use
	log        *logger.L
	socket     *zmq.Socket
}

// New - bind a publisher socket
//
// returns nil, nil when no broadcast address is configured
func New(log *logger.L, configuration *Configuration) (*Broadcaster, error) {
	if nil == configuration || 0 == len(configuration.Broadcast) {
		return nil, nil
	}

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}
	socket.SetLinger(0)

	if "" != configuration.PrivateKey {
		privateKey, err := ReadPrivateKey(configuration.PrivateKey)
		if nil != err {
			socket.Close()
			return nil, err
		}
		socket.SetCurveServer(1)
		socket.SetCurveSecretkey(string(privateKey))
	}

	for i, address := range configuration.Broadcast {
		if err := socket.Bind(address); nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, address, err)
			socket.Close()
			return nil, err
		}
		log.Infof("bind[%d]: %q", i, address)
	}

	return &Broadcaster{
		log:    log,
		socket: socket,
	}, nil
}

// Publish - send one event
func (b *Broadcaster) Publish(topic string, event *Event) error {
	if nil == event {
		return fault.ErrInvalidStructPointer
	}
	data, err := json.Marshal(event)
	if nil != err {
		return err
	}

	b.Lock()
	defer b.Unlock()

	if nil == b.socket {
		return fault.ErrMissingConnection
	}
	_, err = b.socket.SendMessage(topic, data)
	if nil != err {
		b.log.Errorf("publish: %s  error: %s", topic, err)
		return err
	}
	b.log.Debugf("publish: %s  trade: %d", topic, event.TradeId)
	return nil
}

// Close - release the socket
func (b *Broadcaster) Close() error {
	b.Lock()
	defer b.Unlock()

	if nil == b.socket {
		return nil
	}
	err := b.socket.Close()
	b.socket = nil
	return err
}
