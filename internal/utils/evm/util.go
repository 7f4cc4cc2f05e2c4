package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
)

// NativeTokenCA 原生代币哨兵地址, 路由服务约定使用该地址表示链原生资产
const NativeTokenCA = "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE"

var (
	// MaxUint256 represents the maximum value for uint256 (2^256 - 1)
	MaxUint256 *big.Int
)

func init() {
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
}

// IsNativeToken 判断地址是否为原生代币哨兵地址
func IsNativeToken(tokenAddress string) bool {
	if strings.EqualFold(tokenAddress, NativeTokenCA) {
		return true
	}
	return common.HexToAddress(tokenAddress) == (common.Address{})
}

func ParseETH(value *big.Int) decimal.Decimal {
	return ParseUnits(value, 18)
}

func ParseUnits(value *big.Int, decimals uint8) decimal.Decimal {
	mul := decimal.NewFromFloat(float64(10)).Pow(decimal.NewFromInt32(int32(decimals)))
	num, _ := decimal.NewFromString(value.String())
	result := num.DivRound(mul, int32(decimals)).Truncate(int32(decimals))
	return result
}

func FormatETH(amount decimal.Decimal) *big.Int {
	return FormatUnits(amount, 18)
}

func FormatUnits(amount decimal.Decimal, decimals uint8) *big.Int {
	mul := decimal.NewFromFloat(float64(10)).Pow(decimal.NewFromInt32(int32(decimals)))
	result := amount.Mul(mul)

	wei := big.NewInt(0)
	wei.SetString(result.Truncate(0).String(), 10)
	return wei
}

func EncodeERC20ApproveInput(spender string, amount *big.Int) ([]byte, error) {
	if spender == "" {
		return nil, errors.New("spender address cannot be empty")
	}
	if amount == nil {
		return nil, errors.New("amount cannot be nil")
	}

	spenderAddr := common.HexToAddress(spender)
	data, err := ERC20ABI.Pack("approve", spenderAddr, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to pack approve call: %w", err)
	}

	return data, nil
}

func GetAddress(prv *ecdsa.PrivateKey) (common.Address, error) {
	publicKey := prv.Public()
	publicKeyECDSA, ok := publicKey.(*ecdsa.PublicKey)
	if !ok {
		return common.Address{}, errors.New("cannot assert type: publicKey is not of type *ecdsa.PublicKey")
	}

	address := crypto.PubkeyToAddress(*publicKeyECDSA)
	return address, nil
}

// ContractCaller 只读合约调用接口, 测试时可替换真实节点
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

func callERC20(ctx context.Context, caller ContractCaller, token common.Address, method string, out any, args ...any) error {
	data, err := ERC20ABI.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	result, err := caller.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", method, err)
	}

	if err = ERC20ABI.UnpackIntoInterface(out, method, result); err != nil {
		return fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	return nil
}

func GetTokenMeta(ctx context.Context, caller ContractCaller, tokenAddress string) (*Metadata, error) {
	tokenAddr := common.HexToAddress(tokenAddress)

	var meta Metadata
	if err := callERC20(ctx, caller, tokenAddr, "name", &meta.Name); err != nil {
		return nil, err
	}
	if err := callERC20(ctx, caller, tokenAddr, "symbol", &meta.Symbol); err != nil {
		return nil, err
	}
	if err := callERC20(ctx, caller, tokenAddr, "decimals", &meta.Decimals); err != nil {
		return nil, err
	}

	return &meta, nil
}

func GetTokenBalance(ctx context.Context, caller ContractCaller, tokenAddress, ownerAddress string) (*big.Int, error) {
	var balance *big.Int
	err := callERC20(ctx, caller, common.HexToAddress(tokenAddress), "balanceOf", &balance, common.HexToAddress(ownerAddress))
	if err != nil {
		return nil, err
	}
	return balance, nil
}

func GetTokenAllowance(ctx context.Context, caller ContractCaller, tokenAddress, ownerAddress, spenderAddress string) (*big.Int, error) {
	var allowance *big.Int
	err := callERC20(ctx, caller, common.HexToAddress(tokenAddress), "allowance", &allowance,
		common.HexToAddress(ownerAddress), common.HexToAddress(spenderAddress))
	if err != nil {
		return nil, err
	}
	return allowance, nil
}

// GetTokenBalanceChanges 从交易收据的 Transfer 日志计算目标地址的代币余额变化
func GetTokenBalanceChanges(receipt *types.Receipt, ownerAddress string) map[common.Address]*big.Int {
	transferEventSig := common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

	changes := make(map[common.Address]*big.Int)
	ownerAddr := common.HexToAddress(ownerAddress)
	for _, log := range receipt.Logs {
		if len(log.Topics) < 3 || log.Topics[0] != transferEventSig {
			continue
		}

		from := common.BytesToAddress(log.Topics[1].Bytes())
		to := common.BytesToAddress(log.Topics[2].Bytes())
		if from != ownerAddr && to != ownerAddr {
			continue
		}

		amount := new(big.Int).SetBytes(log.Data)
		change := new(big.Int).Set(amount)
		if from == ownerAddr {
			change.Neg(change)
		}

		if v, ok := changes[log.Address]; ok {
			change.Add(change, v)
		}
		changes[log.Address] = change
	}

	return changes
}
