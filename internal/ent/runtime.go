// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fachebot/evm-swap-bot/internal/ent/nonce"
	"github.com/fachebot/evm-swap-bot/internal/ent/order"
	"github.com/fachebot/evm-swap-bot/internal/ent/schema"
	"github.com/fachebot/evm-swap-bot/internal/ent/settings"
	"github.com/fachebot/evm-swap-bot/internal/ent/wallet"
	"github.com/shopspring/decimal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	nonceMixin := schema.Nonce{}.Mixin()
	nonceMixinFields0 := nonceMixin[0].Fields()
	_ = nonceMixinFields0
	nonceFields := schema.Nonce{}.Fields()
	_ = nonceFields
	// nonceDescCreateTime is the schema descriptor for create_time field.
	nonceDescCreateTime := nonceMixinFields0[0].Descriptor()
	// nonce.DefaultCreateTime holds the default value on creation for the create_time field.
	nonce.DefaultCreateTime = nonceDescCreateTime.Default.(func() time.Time)
	// nonceDescUpdateTime is the schema descriptor for update_time field.
	nonceDescUpdateTime := nonceMixinFields0[1].Descriptor()
	// nonce.DefaultUpdateTime holds the default value on creation for the update_time field.
	nonce.DefaultUpdateTime = nonceDescUpdateTime.Default.(func() time.Time)
	// nonce.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	nonce.UpdateDefaultUpdateTime = nonceDescUpdateTime.UpdateDefault.(func() time.Time)
	// nonceDescAccount is the schema descriptor for account field.
	nonceDescAccount := nonceFields[0].Descriptor()
	// nonce.AccountValidator is a validator for the "account" field. It is called by the builders before save.
	nonce.AccountValidator = nonceDescAccount.Validators[0].(func(string) error)
	orderMixin := schema.Order{}.Mixin()
	orderMixinFields0 := orderMixin[0].Fields()
	_ = orderMixinFields0
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescCreateTime is the schema descriptor for create_time field.
	orderDescCreateTime := orderMixinFields0[0].Descriptor()
	// order.DefaultCreateTime holds the default value on creation for the create_time field.
	order.DefaultCreateTime = orderDescCreateTime.Default.(func() time.Time)
	// orderDescUpdateTime is the schema descriptor for update_time field.
	orderDescUpdateTime := orderMixinFields0[1].Descriptor()
	// order.DefaultUpdateTime holds the default value on creation for the update_time field.
	order.DefaultUpdateTime = orderDescUpdateTime.Default.(func() time.Time)
	// order.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	order.UpdateDefaultUpdateTime = orderDescUpdateTime.UpdateDefault.(func() time.Time)
	// orderDescGUID is the schema descriptor for guid field.
	orderDescGUID := orderFields[0].Descriptor()
	// order.GUIDValidator is a validator for the "guid" field. It is called by the builders before save.
	order.GUIDValidator = orderDescGUID.Validators[0].(func(string) error)
	// orderDescAccount is the schema descriptor for account field.
	orderDescAccount := orderFields[2].Descriptor()
	// order.AccountValidator is a validator for the "account" field. It is called by the builders before save.
	order.AccountValidator = orderDescAccount.Validators[0].(func(string) error)
	// orderDescToken is the schema descriptor for token field.
	orderDescToken := orderFields[3].Descriptor()
	// order.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	order.TokenValidator = orderDescToken.Validators[0].(func(string) error)
	// orderDescInAmount is the schema descriptor for inAmount field.
	orderDescInAmount := orderFields[6].Descriptor()
	// order.DefaultInAmount holds the default value on creation for the inAmount field.
	order.DefaultInAmount = orderDescInAmount.Default.(decimal.Decimal)
	// orderDescOutAmount is the schema descriptor for outAmount field.
	orderDescOutAmount := orderFields[7].Descriptor()
	// order.DefaultOutAmount holds the default value on creation for the outAmount field.
	order.DefaultOutAmount = orderDescOutAmount.Default.(decimal.Decimal)
	// orderDescPrice is the schema descriptor for price field.
	orderDescPrice := orderFields[8].Descriptor()
	// order.DefaultPrice holds the default value on creation for the price field.
	order.DefaultPrice = orderDescPrice.Default.(decimal.Decimal)
	// orderDescTxHash is the schema descriptor for txHash field.
	orderDescTxHash := orderFields[11].Descriptor()
	// order.TxHashValidator is a validator for the "txHash" field. It is called by the builders before save.
	order.TxHashValidator = orderDescTxHash.Validators[0].(func(string) error)
	settingsMixin := schema.Settings{}.Mixin()
	settingsMixinFields0 := settingsMixin[0].Fields()
	_ = settingsMixinFields0
	settingsFields := schema.Settings{}.Fields()
	_ = settingsFields
	// settingsDescCreateTime is the schema descriptor for create_time field.
	settingsDescCreateTime := settingsMixinFields0[0].Descriptor()
	// settings.DefaultCreateTime holds the default value on creation for the create_time field.
	settings.DefaultCreateTime = settingsDescCreateTime.Default.(func() time.Time)
	// settingsDescUpdateTime is the schema descriptor for update_time field.
	settingsDescUpdateTime := settingsMixinFields0[1].Descriptor()
	// settings.DefaultUpdateTime holds the default value on creation for the update_time field.
	settings.DefaultUpdateTime = settingsDescUpdateTime.Default.(func() time.Time)
	// settings.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	settings.UpdateDefaultUpdateTime = settingsDescUpdateTime.UpdateDefault.(func() time.Time)
	// settingsDescSlippageBps is the schema descriptor for slippageBps field.
	settingsDescSlippageBps := settingsFields[1].Descriptor()
	// settings.SlippageBpsValidator is a validator for the "slippageBps" field. It is called by the builders before save.
	settings.SlippageBpsValidator = settingsDescSlippageBps.Validators[0].(func(int) error)
	// settingsDescSellSlippageBps is the schema descriptor for sellSlippageBps field.
	settingsDescSellSlippageBps := settingsFields[2].Descriptor()
	// settings.SellSlippageBpsValidator is a validator for the "sellSlippageBps" field. It is called by the builders before save.
	settings.SellSlippageBpsValidator = settingsDescSellSlippageBps.Validators[0].(func(int) error)
	walletMixin := schema.Wallet{}.Mixin()
	walletMixinFields0 := walletMixin[0].Fields()
	_ = walletMixinFields0
	walletFields := schema.Wallet{}.Fields()
	_ = walletFields
	// walletDescCreateTime is the schema descriptor for create_time field.
	walletDescCreateTime := walletMixinFields0[0].Descriptor()
	// wallet.DefaultCreateTime holds the default value on creation for the create_time field.
	wallet.DefaultCreateTime = walletDescCreateTime.Default.(func() time.Time)
	// walletDescUpdateTime is the schema descriptor for update_time field.
	walletDescUpdateTime := walletMixinFields0[1].Descriptor()
	// wallet.DefaultUpdateTime holds the default value on creation for the update_time field.
	wallet.DefaultUpdateTime = walletDescUpdateTime.Default.(func() time.Time)
	// wallet.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	wallet.UpdateDefaultUpdateTime = walletDescUpdateTime.UpdateDefault.(func() time.Time)
	// walletDescAccount is the schema descriptor for account field.
	walletDescAccount := walletFields[1].Descriptor()
	// wallet.AccountValidator is a validator for the "account" field. It is called by the builders before save.
	wallet.AccountValidator = walletDescAccount.Validators[0].(func(string) error)
}
