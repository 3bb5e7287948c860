package classify

import (
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveTransaction(protocol model.ProtocolTag, status model.TokenStatus)
		ObserveWarning(kind model.WarningKind)
	}
)
