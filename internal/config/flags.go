// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the destinations of every configuration flag registered on a
// command's flag set. Values become meaningful once the flag set is parsed.
type Flags struct {
	serverAddress  NetAddress
	requestTimeout time.Duration
	notesFile      string
	dsn            string
	onCorrupt      string
	remote         string
	logFile        string
	configPath     string
}

// RegisterFlags defines all configuration flags on fs and returns the
// holder the parsed values are read from.
//
// Flags:
//
//	-a/--address      HTTP server address in format [host]:[port]
//	-f/--file         notes JSON document path
//	-d/--dsn          SQL database DSN (PostgreSQL URL or SQLite file)
//	--on-corrupt      corrupt-store policy: backup | fail
//	--request-timeout server request timeout (e.g. "30s", "1m")
//	--remote          base URL of a running API for console remote mode
//	--log-file        console log file path
//	-c/--config       JSON or YAML config file path
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.serverAddress, "address", "a", "Net address host:port")
	fs.StringVarP(&f.notesFile, "file", "f", "", "Notes file path")
	fs.StringVarP(&f.dsn, "dsn", "d", "", "Database DSN")
	fs.StringVar(&f.onCorrupt, "on-corrupt", "", "Policy for an unreadable notes store (backup|fail)")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&f.remote, "remote", "", "Base URL of a running notes API")
	fs.StringVar(&f.logFile, "log-file", "", "Console log file path")
	fs.StringVarP(&f.configPath, "config", "c", "", "JSON or YAML config file path")

	return f
}

// Config converts the parsed flag values into a partial [StructuredConfig].
func (f *Flags) Config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile: f.logFile,
		},
		Storage: Storage{
			File:      File{Path: f.notesFile},
			DB:        DB{DSN: f.dsn},
			OnCorrupt: f.onCorrupt,
		},
		Server: Server{
			HTTPAddress:    f.serverAddress.String(),
			RequestTimeout: f.requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: f.remote,
		},
		FilePath: f.configPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type names the value kind in flag usage output.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost", or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
