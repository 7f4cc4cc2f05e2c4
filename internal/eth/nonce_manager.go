package eth

import (
	"context"
	"sync"

	"github.com/fachebot/evm-swap-bot/internal/ent"
	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/model"

	"github.com/ethereum/go-ethereum/common"
)

// NonceManager 按账户串行分配nonce, 同一钱包并发交易不会复用nonce
type NonceManager struct {
	mutex        sync.Mutex
	accountLocks map[string]*sync.Mutex
	dbClient     *ent.Client
	backend      Backend
}

type NonceConsumeFunc func(ctx context.Context, nonce uint64) (hash string, err error)

func NewNonceManager(dbClient *ent.Client, backend Backend) *NonceManager {
	return &NonceManager{
		dbClient:     dbClient,
		backend:      backend,
		accountLocks: make(map[string]*sync.Mutex),
	}
}

func (m *NonceManager) Request(ctx context.Context, account common.Address, consume NonceConsumeFunc) error {
	m.mutex.Lock()
	accountMutex, ok := m.accountLocks[account.Hex()]
	if !ok {
		accountMutex = new(sync.Mutex)
		m.accountLocks[account.Hex()] = accountMutex
	}
	m.mutex.Unlock()

	accountMutex.Lock()
	defer accountMutex.Unlock()

	nextNonce, err := m.backend.PendingNonceAt(ctx, account)
	if err != nil {
		return err
	}

	// 节点的 pending nonce 可能落后于已广播交易, 与落库的高水位取大
	nonceModel := model.NewNonceModel(m.dbClient.Nonce)
	storedNonce, findErr := nonceModel.FindOne(ctx, account.Hex())
	if findErr != nil && !ent.IsNotFound(findErr) {
		return findErr
	}

	if findErr == nil && storedNonce.Nonce >= nextNonce {
		nextNonce = storedNonce.Nonce + 1
	}

	_, err = consume(ctx, nextNonce)
	if err == nil {
		var err2 error
		if ent.IsNotFound(findErr) {
			err2 = nonceModel.Save(ctx, account.Hex(), nextNonce)
		} else {
			err2 = nonceModel.UpdateNonce(ctx, account.Hex(), nextNonce)
		}

		if err2 != nil {
			logger.Errorf("[NonceManager] 更新账户nonce失败, account: %s, nonce: %d, %+v", account, nextNonce, err2)
		}
	}

	return err
}
