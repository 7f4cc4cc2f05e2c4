package swap

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/utils/evm"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// AllowanceManager 负责检查与设置代币授权; 授权状态每次实时读取不做缓存,
// 避免外部变更导致的陈旧判断
type AllowanceManager struct {
	chainId int64
	chain   ChainClient
	nonce   NonceSource
}

func NewAllowanceManager(chainId int64, chain ChainClient, nonce NonceSource) *AllowanceManager {
	return &AllowanceManager{chainId: chainId, chain: chain, nonce: nonce}
}

func (m *AllowanceManager) HasSufficientAllowance(ctx context.Context, token, owner, spender string, amount *big.Int) (bool, error) {
	allowance, err := m.chain.TokenAllowance(ctx, token, owner, spender)
	if err != nil {
		return false, err
	}
	return allowance.Cmp(amount) >= 0, nil
}

// Approve 提交授权交易并阻塞等待确认, 调用方确认成功后才能继续兑换
func (m *AllowanceManager) Approve(ctx context.Context, token, spender string, amount *big.Int, prv *ecdsa.PrivateKey) (string, error) {
	owner, err := evm.GetAddress(prv)
	if err != nil {
		return "", err
	}

	input, err := evm.EncodeERC20ApproveInput(spender, amount)
	if err != nil {
		return "", err
	}

	gasFeeCap, gasTipCap, err := m.chain.FeeParams(ctx)
	if err != nil {
		return "", err
	}

	tokenAddr := common.HexToAddress(token)
	gasLimit, err := m.chain.EstimateGas(ctx, ethereum.CallMsg{
		From: owner,
		To:   &tokenAddr,
		Data: input,
	})
	if err != nil {
		return "", err
	}

	var txHash string
	err = m.nonce.Request(ctx, owner, func(ctx context.Context, nonce uint64) (string, error) {
		dynamicFeeTx := ethtypes.DynamicFeeTx{
			ChainID:   big.NewInt(m.chainId),
			Nonce:     nonce,
			GasTipCap: gasTipCap,
			GasFeeCap: gasFeeCap,
			Gas:       gasLimit,
			To:        &tokenAddr,
			Value:     big.NewInt(0),
			Data:      input,
		}

		tx := ethtypes.NewTx(&dynamicFeeTx)
		signedTx, err := ethtypes.SignTx(tx, ethtypes.NewLondonSigner(big.NewInt(m.chainId)), prv)
		if err != nil {
			return "", err
		}

		if err = m.chain.SendTransaction(ctx, signedTx); err != nil {
			return "", err
		}

		txHash = signedTx.Hash().Hex()
		return txHash, nil
	})
	if err != nil {
		return "", err
	}

	logger.Infof("[AllowanceManager] 授权交易已广播, token: %s, spender: %s, hash: %s", token, spender, txHash)

	receipt, err := m.chain.WaitForReceipt(ctx, txHash)
	if err != nil {
		return txHash, err
	}
	if receipt.Status == ethtypes.ReceiptStatusFailed {
		return txHash, errors.New("approve transaction reverted")
	}

	return txHash, nil
}
