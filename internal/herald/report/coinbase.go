package report

import (
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/script"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/pkg/safe"
)

const (
	// StakingActivationHeight is the first block paying a staking reward.
	StakingActivationHeight = 818670

	stakerPercent        = 10
	stakerPercentPadding = 1
)

// FindStaker returns the coinbase output paying the staking reward: the first
// output worth between 10% and 11% of the coinbase total.
func FindStaker(height uint64, outputs []model.Output) (model.Output, bool) {
	if height < StakingActivationHeight {
		return model.Output{}, false
	}
	total, err := outputTotal(outputs)
	if err != nil {
		return model.Output{}, false
	}
	minValue, maxValue := percentOf(total, stakerPercent), percentOf(total, stakerPercent+stakerPercentPadding)
	for _, out := range outputs {
		if out.Value >= minValue && out.Value <= maxValue {
			return out, true
		}
	}
	return model.Output{}, false
}

// percentOf is floor(total * pct / 100) without intermediate overflow.
func percentOf(total uint64, pct uint64) uint64 {
	return total/100*pct + total%100*pct/100
}

func outputTotal(outputs []model.Output) (uint64, error) {
	var total uint64
	for _, out := range outputs {
		sum, err := safe.AddUint64(total, out.Value)
		if err != nil {
			return 0, err
		}
		total = sum
	}
	return total, nil
}

// summarizeCoinbase describes the block reward of the coinbase transaction tx.
func summarizeCoinbase(height uint64, tx *model.Transaction, opts Options) (*model.CoinbaseSummary, error) {
	reward, err := outputTotal(tx.Outputs)
	if err != nil {
		return nil, err
	}
	summary := &model.CoinbaseSummary{TxID: tx.TxID, Reward: reward}

	best := -1
	for i, out := range tx.Outputs {
		if out.OutputScript.IsDataCarrier() {
			continue
		}
		if best < 0 || out.Value > tx.Outputs[best].Value {
			best = i
		}
	}
	if best >= 0 {
		summary.Recipient = tx.Outputs[best].OutputScript.String()
		summary.Address = encode(opts.Addresses, tx.Outputs[best].OutputScript)
	}

	var coinbaseScript model.Script
	if len(tx.Inputs) > 0 {
		coinbaseScript = tx.Inputs[0].InputScript
	}
	summary.Miner = IdentifyMiner(coinbaseScript, tx.Outputs, opts.Miners, opts.Addresses)

	if staker, ok := FindStaker(height, tx.Outputs); ok {
		summary.Staker = &model.StakerReward{
			Script:  staker.OutputScript.String(),
			Address: encode(opts.Addresses, staker.OutputScript),
			Reward:  staker.Value,
		}
	}
	return summary, nil
}

func encode(addresses *script.AddressEncoder, s model.Script) string {
	if addresses == nil {
		return ""
	}
	return addresses.Encode(s)
}
