package evm

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNativeToken(t *testing.T) {
	assert.True(t, IsNativeToken(NativeTokenCA))
	assert.True(t, IsNativeToken("0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"))
	assert.True(t, IsNativeToken("0x0000000000000000000000000000000000000000"))
	assert.False(t, IsNativeToken("0x55d398326f99059fF775485246999027B3197955"))
}

func TestParseFormatUnits(t *testing.T) {
	wei := big.NewInt(1500000000000000000)
	assert.Equal(t, "1.5", ParseETH(wei).String())

	amount := decimal.RequireFromString("0.005")
	assert.Equal(t, "5000000000000000", FormatETH(amount).String())

	usdt := decimal.RequireFromString("123.456789")
	assert.Equal(t, "123456789", FormatUnits(usdt, 6).String())
	assert.Equal(t, "123.456789", ParseUnits(big.NewInt(123456789), 6).String())
}

func TestEncodeERC20ApproveInput(t *testing.T) {
	spender := "0x3333333333333333333333333333333333333333"
	data, err := EncodeERC20ApproveInput(spender, MaxUint256)
	require.NoError(t, err)

	// approve(address,uint256) 选择器
	assert.Equal(t, []byte{0x09, 0x5e, 0xa7, 0xb3}, data[:4])
	assert.Len(t, data, 4+32+32)
	assert.Equal(t, common.HexToAddress(spender), common.BytesToAddress(data[4:36]))
	assert.Equal(t, MaxUint256, new(big.Int).SetBytes(data[36:68]))

	_, err = EncodeERC20ApproveInput("", MaxUint256)
	assert.Error(t, err)
	_, err = EncodeERC20ApproveInput(spender, nil)
	assert.Error(t, err)
}

func TestGetAddress(t *testing.T) {
	prv, err := crypto.GenerateKey()
	require.NoError(t, err)

	address, err := GetAddress(prv)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(prv.PublicKey), address)
}

func transferLog(token, from, to common.Address, amount *big.Int) *types.Log {
	return &types.Log{
		Address: token,
		Topics: []common.Hash{
			common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"),
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
		},
		Data: common.LeftPadBytes(amount.Bytes(), 32),
	}
}

func TestGetTokenBalanceChanges(t *testing.T) {
	token := common.HexToAddress("0x1111111111111111111111111111111111111111")
	owner := common.HexToAddress("0x2222222222222222222222222222222222222222")
	pool := common.HexToAddress("0x3333333333333333333333333333333333333333")

	receipt := &types.Receipt{
		Logs: []*types.Log{
			transferLog(token, pool, owner, big.NewInt(1000)),
			transferLog(token, owner, pool, big.NewInt(300)),
			// 与 owner 无关的转账应被忽略
			transferLog(token, pool, common.HexToAddress("0x4444444444444444444444444444444444444444"), big.NewInt(999)),
		},
	}

	changes := GetTokenBalanceChanges(receipt, owner.Hex())
	require.Len(t, changes, 1)
	assert.Equal(t, big.NewInt(700), changes[token])
}
