// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package templates - initial configuration file for the escrow client
package templates

import (
	"io"
	"strconv"
	"text/template"
)

// ConfigurationTemplate - Lua configuration written by setup
const ConfigurationTemplate = `-- escrow.conf  -*- mode: lua -*-

local M = {}

-- relative paths below are relative to this directory
M.data_directory = arg["data_directory"] or "."

M.testnet = {{.Testnet}}

M.connections = {
{{- range .Connections}}
    { address = {{quote .Address}}{{if .Certificate}}, certificate = {{quote .Certificate}}{{end}} },
{{- end}}
}

M.application_id = {{.ApplicationId}}
M.application_address = {{quote .ApplicationAddress}}
M.regulator = {{quote .Regulator}}

M.call_fee = {{.CallFee}}
M.confirmation_rounds = {{.ConfirmationRounds}}
M.decimals = {{.Decimals}}

M.identities_file = "identities.json"
M.journal_directory = "journal"

M.logging = {
    directory = "log",
    file = "escrow.log",
    size = 1048576,
    count = 10,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

// Connection - one endpoint line
type Connection struct {
	Address     string
	Certificate string
}

// ConfigurationData - values substituted into ConfigurationTemplate
type ConfigurationData struct {
	Testnet            bool
	Connections        []Connection
	ApplicationId      uint64
	ApplicationAddress string
	Regulator          string
	CallFee            uint64
	ConfirmationRounds uint64
	Decimals           int32
}

var configuration = template.Must(template.New("configuration").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(ConfigurationTemplate))

// WriteConfiguration - render a configuration file
func WriteConfiguration(w io.Writer, data *ConfigurationData) error {
	return configuration.Execute(w, data)
}
