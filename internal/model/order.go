package model

import (
	"context"

	"github.com/fachebot/evm-swap-bot/internal/ent"
	"github.com/fachebot/evm-swap-bot/internal/ent/order"

	"github.com/shopspring/decimal"
)

type OrderModel struct {
	client *ent.OrderClient
}

func NewOrderModel(client *ent.OrderClient) *OrderModel {
	return &OrderModel{client: client}
}

func (model *OrderModel) Save(ctx context.Context, args ent.Order) (*ent.Order, error) {
	return model.client.Create().
		SetGUID(args.GUID).
		SetUserId(args.UserId).
		SetAccount(args.Account).
		SetToken(args.Token).
		SetSymbol(args.Symbol).
		SetType(args.Type).
		SetInAmount(args.InAmount).
		SetOutAmount(args.OutAmount).
		SetPrice(args.Price).
		SetStatus(args.Status).
		SetNonce(args.Nonce).
		SetTxHash(args.TxHash).
		Save(ctx)
}

func (model *OrderModel) FindPendingOrders(ctx context.Context, limit int) ([]*ent.Order, error) {
	return model.client.Query().
		Where(order.StatusEQ(order.StatusPending)).
		Order(ent.Asc(order.FieldID)).
		Limit(limit).
		All(ctx)
}

func (model *OrderModel) FindLatestByUserId(ctx context.Context, userId int64, limit int) ([]*ent.Order, error) {
	return model.client.Query().
		Where(order.UserIdEQ(userId)).
		Order(ent.Desc(order.FieldID)).
		Limit(limit).
		All(ctx)
}

func (model *OrderModel) SetOrderClosedStatus(ctx context.Context, id int, finalPrice, outAmount decimal.Decimal) error {
	return model.client.UpdateOneID(id).
		SetStatus(order.StatusClosed).
		SetPrice(finalPrice).
		SetOutAmount(outAmount).
		Exec(ctx)
}

func (model *OrderModel) SetOrderRejectedStatus(ctx context.Context, id int, reason string) error {
	return model.client.UpdateOneID(id).
		SetStatus(order.StatusRejected).
		SetFailReason(reason).
		Exec(ctx)
}
