// Package config provides type-safe environment variable loading with
// per-type caching using Go generics. A .env file is loaded automatically
// on first use; parsing is handled by the caarlos0/env library.
//
//	type ServerConfig struct {
//		Addr    string `env:"SERVER_ADDR" envDefault:":3000"`
//		Workers int    `env:"SERVER_WORKERS" envDefault:"0"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is parsed once per process; later Load calls
// for the same type return the cached value, so independently constructed
// components observe identical configuration.
package config
