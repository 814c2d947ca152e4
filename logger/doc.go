// Package logger provides structured logging for the s4-go SDK
// using zerolog.
//
// The SDK never logs by default: a client constructed without a logger
// uses Nop(). Applications that want diagnostics pass a configured
// logger instead:
//
//	log := logger.New(&logger.Config{Level: "debug", Format: "json"}, "s4")
//	c, _ := client.New(client.Config{KeyID: id, KeySecret: secret, Logger: log})
package logger
