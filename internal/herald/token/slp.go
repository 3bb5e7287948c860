package token

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/script"
	"github.com/gaze-network/uint128"
)

const (
	slpFungible  = 0x01
	slpMintVault = 0x02
	slpNFT1Child = 0x41
	slpNFT1Group = 0x81

	maxAmountWidth    = 16
	maxSLPSendOutputs = 19
	vaultScriptHash   = 20
)

// DecodeSLP decodes an SLP payload from the chunks following OP_RETURN.
// Amount fields are read big-endian at whatever width they were pushed with, up to 16 bytes.
func DecodeSLP(chunks []script.Chunk) (model.TokenAction, error) {
	if !IsSLP(chunks) {
		return model.TokenAction{}, decodeErr(ErrInvalidField, "missing SLP lokad")
	}
	for i, c := range chunks {
		if c.Opcode == 0 || !c.IsPush() {
			return model.TokenAction{}, decodeErr(ErrDisallowedPush, "push %d opcode 0x%02x", i, c.Opcode)
		}
	}
	if len(chunks) < 3 {
		return model.TokenAction{}, decodeErr(ErrTruncated, "expected token type and tx type, got %d pushes", len(chunks))
	}

	typeBytes := chunks[1].Data
	if len(typeBytes) == 0 || len(typeBytes) > 2 {
		return model.TokenAction{}, decodeErr(ErrInvalidField, "token type has %d bytes", len(typeBytes))
	}
	action := model.TokenAction{Protocol: model.TokenProtocolSLP}
	if len(typeBytes) == 2 && typeBytes[0] != 0 {
		action.TokenType = typeBytes[1]
		action.TxType = model.TokenTxTypeUnknown
		return action, nil
	}
	action.TokenType = typeBytes[len(typeBytes)-1]
	switch action.TokenType {
	case slpFungible, slpMintVault, slpNFT1Child, slpNFT1Group:
	default:
		action.TxType = model.TokenTxTypeUnknown
		return action, nil
	}

	fields := chunks[3:]
	switch txType := string(chunks[2].Data); txType {
	case string(model.TokenTxTypeGenesis):
		action.TxType = model.TokenTxTypeGenesis
		return decodeSLPGenesis(action, fields)
	case string(model.TokenTxTypeMint):
		action.TxType = model.TokenTxTypeMint
		return decodeSLPMint(action, fields)
	case string(model.TokenTxTypeSend):
		action.TxType = model.TokenTxTypeSend
		return decodeSLPSend(action, fields)
	case string(model.TokenTxTypeBurn):
		action.TxType = model.TokenTxTypeBurn
		return decodeSLPBurn(action, fields)
	default:
		return model.TokenAction{}, decodeErr(ErrUnknownTxType, "%q", txType)
	}
}

func expectFields(fields []script.Chunk, n int, section string) error {
	if len(fields) < n {
		return decodeErr(ErrTruncated, "%s expects %d pushes, got %d", section, n, len(fields))
	}
	if len(fields) > n {
		return decodeErr(ErrSuperfluousBytes, "%s expects %d pushes, got %d", section, n, len(fields))
	}
	return nil
}

func decodeSLPGenesis(action model.TokenAction, fields []script.Chunk) (model.TokenAction, error) {
	if err := expectFields(fields, 7, "GENESIS"); err != nil {
		return model.TokenAction{}, err
	}
	hash := fields[3].Data
	if len(hash) != 0 && len(hash) != 32 {
		return model.TokenAction{}, decodeErr(ErrInvalidField, "document hash has %d bytes", len(hash))
	}
	if len(fields[4].Data) != 1 {
		return model.TokenAction{}, decodeErr(ErrInvalidField, "decimals has %d bytes", len(fields[4].Data))
	}
	decimals := fields[4].Data[0]
	if decimals > maxDecimals {
		return model.TokenAction{}, decodeErr(ErrDecimals, "%d", decimals)
	}
	genesis := &model.GenesisData{
		Ticker:   string(fields[0].Data),
		Name:     string(fields[1].Data),
		URL:      string(fields[2].Data),
		Hash:     hex.EncodeToString(hash),
		Decimals: decimals,
	}

	baton := fields[5].Data
	if action.TokenType == slpMintVault {
		if len(baton) != vaultScriptHash {
			return model.TokenAction{}, decodeErr(ErrInvalidField, "mint vault script hash has %d bytes", len(baton))
		}
		genesis.Data = hex.EncodeToString(baton)
	} else {
		idx, err := batonIndex(baton)
		if err != nil {
			return model.TokenAction{}, err
		}
		action.MintBatonOutIdx = idx
	}

	qty, err := readAmountBE(fields[6].Data)
	if err != nil {
		return model.TokenAction{}, err
	}
	if action.TokenType == slpNFT1Child {
		if decimals != 0 || action.MintBatonOutIdx != 0 || qty.Cmp(model.NewAmount(1)) != 0 {
			return model.TokenAction{}, decodeErr(ErrInvalidField, "nft1 child genesis must have 0 decimals, no baton and quantity 1")
		}
	}
	action.Genesis = genesis
	action.Amounts = []model.Amount{qty}
	return action, nil
}

func decodeSLPMint(action model.TokenAction, fields []script.Chunk) (model.TokenAction, error) {
	if len(fields) == 0 {
		return model.TokenAction{}, decodeErr(ErrTruncated, "MINT expects a token id")
	}
	tokenID, err := slpTokenID(fields[0].Data)
	if err != nil {
		return model.TokenAction{}, err
	}
	action.TokenID = tokenID

	if action.TokenType == slpMintVault {
		amounts, err := readAmountList(fields[1:], "MINT")
		if err != nil {
			return model.TokenAction{}, err
		}
		action.Amounts = amounts
		return action, nil
	}

	if err := expectFields(fields, 3, "MINT"); err != nil {
		return model.TokenAction{}, err
	}
	idx, err := batonIndex(fields[1].Data)
	if err != nil {
		return model.TokenAction{}, err
	}
	qty, err := readAmountBE(fields[2].Data)
	if err != nil {
		return model.TokenAction{}, err
	}
	action.MintBatonOutIdx = idx
	action.Amounts = []model.Amount{qty}
	return action, nil
}

func decodeSLPSend(action model.TokenAction, fields []script.Chunk) (model.TokenAction, error) {
	if len(fields) == 0 {
		return model.TokenAction{}, decodeErr(ErrTruncated, "SEND expects a token id")
	}
	tokenID, err := slpTokenID(fields[0].Data)
	if err != nil {
		return model.TokenAction{}, err
	}
	amounts, err := readAmountList(fields[1:], "SEND")
	if err != nil {
		return model.TokenAction{}, err
	}
	action.TokenID = tokenID
	action.Amounts = amounts
	return action, nil
}

func decodeSLPBurn(action model.TokenAction, fields []script.Chunk) (model.TokenAction, error) {
	if err := expectFields(fields, 2, "BURN"); err != nil {
		return model.TokenAction{}, err
	}
	tokenID, err := slpTokenID(fields[0].Data)
	if err != nil {
		return model.TokenAction{}, err
	}
	amount, err := readAmountBE(fields[1].Data)
	if err != nil {
		return model.TokenAction{}, err
	}
	action.TokenID = tokenID
	action.Amounts = []model.Amount{amount}
	return action, nil
}

func readAmountList(fields []script.Chunk, section string) ([]model.Amount, error) {
	if len(fields) == 0 {
		return nil, decodeErr(ErrTruncated, "%s has no amounts", section)
	}
	if len(fields) > maxSLPSendOutputs {
		return nil, decodeErr(ErrSuperfluousBytes, "%s has %d amounts, max %d", section, len(fields), maxSLPSendOutputs)
	}
	amounts := make([]model.Amount, 0, len(fields))
	for _, f := range fields {
		amount, err := readAmountBE(f.Data)
		if err != nil {
			return nil, err
		}
		amounts = append(amounts, amount)
	}
	return amounts, nil
}

func slpTokenID(b []byte) (string, error) {
	if len(b) != tokenIDSize {
		return "", decodeErr(ErrInvalidField, "token id has %d bytes", len(b))
	}
	return hex.EncodeToString(b), nil
}

func batonIndex(b []byte) (uint8, error) {
	switch len(b) {
	case 0:
		return 0, nil
	case 1:
		if b[0] < 2 {
			return 0, decodeErr(ErrInvalidField, "mint baton output %d", b[0])
		}
		return b[0], nil
	default:
		return 0, decodeErr(ErrInvalidField, "mint baton has %d bytes", len(b))
	}
}

// readAmountBE reads a big-endian unsigned integer of 1 to 16 bytes.
func readAmountBE(b []byte) (model.Amount, error) {
	if len(b) == 0 || len(b) > maxAmountWidth {
		return model.Amount{}, decodeErr(ErrInvalidField, "amount has %d bytes", len(b))
	}
	var buf [maxAmountWidth]byte
	copy(buf[maxAmountWidth-len(b):], b)
	v := uint128.New(binary.BigEndian.Uint64(buf[8:]), binary.BigEndian.Uint64(buf[:8]))
	return model.AmountFromUint128(v), nil
}
