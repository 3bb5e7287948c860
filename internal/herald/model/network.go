// Package model defines domain models for eCash block classification and reporting.
package model

type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
)
