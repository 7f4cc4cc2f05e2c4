// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/evm-swap-bot/internal/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdateTime, v))
}

// GUID applies equality check predicate on the "guid" field. It's identical to GUIDEQ.
func GUID(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldGUID, v))
}

// UserId applies equality check predicate on the "userId" field. It's identical to UserIdEQ.
func UserId(v int64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUserId, v))
}

// Account applies equality check predicate on the "account" field. It's identical to AccountEQ.
func Account(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldAccount, v))
}

// Token applies equality check predicate on the "token" field. It's identical to TokenEQ.
func Token(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldToken, v))
}

// Symbol applies equality check predicate on the "symbol" field. It's identical to SymbolEQ.
func Symbol(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldSymbol, v))
}

// InAmount applies equality check predicate on the "inAmount" field. It's identical to InAmountEQ.
func InAmount(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldInAmount, v))
}

// OutAmount applies equality check predicate on the "outAmount" field. It's identical to OutAmountEQ.
func OutAmount(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOutAmount, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPrice, v))
}

// Nonce applies equality check predicate on the "nonce" field. It's identical to NonceEQ.
func Nonce(v uint64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldNonce, v))
}

// TxHash applies equality check predicate on the "txHash" field. It's identical to TxHashEQ.
func TxHash(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTxHash, v))
}

// FailReason applies equality check predicate on the "failReason" field. It's identical to FailReasonEQ.
func FailReason(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldFailReason, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldUpdateTime, v))
}

// GUIDEQ applies the EQ predicate on the "guid" field.
func GUIDEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldGUID, v))
}

// GUIDNEQ applies the NEQ predicate on the "guid" field.
func GUIDNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldGUID, v))
}

// GUIDIn applies the In predicate on the "guid" field.
func GUIDIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldGUID, vs...))
}

// GUIDNotIn applies the NotIn predicate on the "guid" field.
func GUIDNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldGUID, vs...))
}

// GUIDGT applies the GT predicate on the "guid" field.
func GUIDGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldGUID, v))
}

// GUIDGTE applies the GTE predicate on the "guid" field.
func GUIDGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldGUID, v))
}

// GUIDLT applies the LT predicate on the "guid" field.
func GUIDLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldGUID, v))
}

// GUIDLTE applies the LTE predicate on the "guid" field.
func GUIDLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldGUID, v))
}

// GUIDContains applies the Contains predicate on the "guid" field.
func GUIDContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldGUID, v))
}

// GUIDHasPrefix applies the HasPrefix predicate on the "guid" field.
func GUIDHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldGUID, v))
}

// GUIDHasSuffix applies the HasSuffix predicate on the "guid" field.
func GUIDHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldGUID, v))
}

// GUIDEqualFold applies the EqualFold predicate on the "guid" field.
func GUIDEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldGUID, v))
}

// GUIDContainsFold applies the ContainsFold predicate on the "guid" field.
func GUIDContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldGUID, v))
}

// UserIdEQ applies the EQ predicate on the "userId" field.
func UserIdEQ(v int64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUserId, v))
}

// UserIdNEQ applies the NEQ predicate on the "userId" field.
func UserIdNEQ(v int64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldUserId, v))
}

// UserIdIn applies the In predicate on the "userId" field.
func UserIdIn(vs ...int64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldUserId, vs...))
}

// UserIdNotIn applies the NotIn predicate on the "userId" field.
func UserIdNotIn(vs ...int64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldUserId, vs...))
}

// UserIdGT applies the GT predicate on the "userId" field.
func UserIdGT(v int64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldUserId, v))
}

// UserIdGTE applies the GTE predicate on the "userId" field.
func UserIdGTE(v int64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldUserId, v))
}

// UserIdLT applies the LT predicate on the "userId" field.
func UserIdLT(v int64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldUserId, v))
}

// UserIdLTE applies the LTE predicate on the "userId" field.
func UserIdLTE(v int64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldUserId, v))
}

// AccountEQ applies the EQ predicate on the "account" field.
func AccountEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldAccount, v))
}

// AccountNEQ applies the NEQ predicate on the "account" field.
func AccountNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldAccount, v))
}

// AccountIn applies the In predicate on the "account" field.
func AccountIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldAccount, vs...))
}

// AccountNotIn applies the NotIn predicate on the "account" field.
func AccountNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldAccount, vs...))
}

// AccountGT applies the GT predicate on the "account" field.
func AccountGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldAccount, v))
}

// AccountGTE applies the GTE predicate on the "account" field.
func AccountGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldAccount, v))
}

// AccountLT applies the LT predicate on the "account" field.
func AccountLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldAccount, v))
}

// AccountLTE applies the LTE predicate on the "account" field.
func AccountLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldAccount, v))
}

// AccountContains applies the Contains predicate on the "account" field.
func AccountContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldAccount, v))
}

// AccountHasPrefix applies the HasPrefix predicate on the "account" field.
func AccountHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldAccount, v))
}

// AccountHasSuffix applies the HasSuffix predicate on the "account" field.
func AccountHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldAccount, v))
}

// AccountEqualFold applies the EqualFold predicate on the "account" field.
func AccountEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldAccount, v))
}

// AccountContainsFold applies the ContainsFold predicate on the "account" field.
func AccountContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldAccount, v))
}

// TokenEQ applies the EQ predicate on the "token" field.
func TokenEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldToken, v))
}

// TokenNEQ applies the NEQ predicate on the "token" field.
func TokenNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldToken, v))
}

// TokenIn applies the In predicate on the "token" field.
func TokenIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldToken, vs...))
}

// TokenNotIn applies the NotIn predicate on the "token" field.
func TokenNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldToken, vs...))
}

// TokenGT applies the GT predicate on the "token" field.
func TokenGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldToken, v))
}

// TokenGTE applies the GTE predicate on the "token" field.
func TokenGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldToken, v))
}

// TokenLT applies the LT predicate on the "token" field.
func TokenLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldToken, v))
}

// TokenLTE applies the LTE predicate on the "token" field.
func TokenLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldToken, v))
}

// TokenContains applies the Contains predicate on the "token" field.
func TokenContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldToken, v))
}

// TokenHasPrefix applies the HasPrefix predicate on the "token" field.
func TokenHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldToken, v))
}

// TokenHasSuffix applies the HasSuffix predicate on the "token" field.
func TokenHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldToken, v))
}

// TokenEqualFold applies the EqualFold predicate on the "token" field.
func TokenEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldToken, v))
}

// TokenContainsFold applies the ContainsFold predicate on the "token" field.
func TokenContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldToken, v))
}

// SymbolEQ applies the EQ predicate on the "symbol" field.
func SymbolEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldSymbol, v))
}

// SymbolNEQ applies the NEQ predicate on the "symbol" field.
func SymbolNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldSymbol, v))
}

// SymbolIn applies the In predicate on the "symbol" field.
func SymbolIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldSymbol, vs...))
}

// SymbolNotIn applies the NotIn predicate on the "symbol" field.
func SymbolNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldSymbol, vs...))
}

// SymbolGT applies the GT predicate on the "symbol" field.
func SymbolGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldSymbol, v))
}

// SymbolGTE applies the GTE predicate on the "symbol" field.
func SymbolGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldSymbol, v))
}

// SymbolLT applies the LT predicate on the "symbol" field.
func SymbolLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldSymbol, v))
}

// SymbolLTE applies the LTE predicate on the "symbol" field.
func SymbolLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldSymbol, v))
}

// SymbolContains applies the Contains predicate on the "symbol" field.
func SymbolContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldSymbol, v))
}

// SymbolHasPrefix applies the HasPrefix predicate on the "symbol" field.
func SymbolHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldSymbol, v))
}

// SymbolHasSuffix applies the HasSuffix predicate on the "symbol" field.
func SymbolHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldSymbol, v))
}

// SymbolEqualFold applies the EqualFold predicate on the "symbol" field.
func SymbolEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldSymbol, v))
}

// SymbolContainsFold applies the ContainsFold predicate on the "symbol" field.
func SymbolContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldSymbol, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldType, vs...))
}

// InAmountEQ applies the EQ predicate on the "inAmount" field.
func InAmountEQ(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldInAmount, v))
}

// InAmountNEQ applies the NEQ predicate on the "inAmount" field.
func InAmountNEQ(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldInAmount, v))
}

// InAmountIn applies the In predicate on the "inAmount" field.
func InAmountIn(vs ...decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldInAmount, vs...))
}

// InAmountNotIn applies the NotIn predicate on the "inAmount" field.
func InAmountNotIn(vs ...decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldInAmount, vs...))
}

// InAmountGT applies the GT predicate on the "inAmount" field.
func InAmountGT(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldInAmount, v))
}

// InAmountGTE applies the GTE predicate on the "inAmount" field.
func InAmountGTE(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldInAmount, v))
}

// InAmountLT applies the LT predicate on the "inAmount" field.
func InAmountLT(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldInAmount, v))
}

// InAmountLTE applies the LTE predicate on the "inAmount" field.
func InAmountLTE(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldInAmount, v))
}

// OutAmountEQ applies the EQ predicate on the "outAmount" field.
func OutAmountEQ(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOutAmount, v))
}

// OutAmountNEQ applies the NEQ predicate on the "outAmount" field.
func OutAmountNEQ(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldOutAmount, v))
}

// OutAmountIn applies the In predicate on the "outAmount" field.
func OutAmountIn(vs ...decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldOutAmount, vs...))
}

// OutAmountNotIn applies the NotIn predicate on the "outAmount" field.
func OutAmountNotIn(vs ...decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldOutAmount, vs...))
}

// OutAmountGT applies the GT predicate on the "outAmount" field.
func OutAmountGT(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldOutAmount, v))
}

// OutAmountGTE applies the GTE predicate on the "outAmount" field.
func OutAmountGTE(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldOutAmount, v))
}

// OutAmountLT applies the LT predicate on the "outAmount" field.
func OutAmountLT(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldOutAmount, v))
}

// OutAmountLTE applies the LTE predicate on the "outAmount" field.
func OutAmountLTE(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldOutAmount, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v decimal.Decimal) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldPrice, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldStatus, vs...))
}

// NonceEQ applies the EQ predicate on the "nonce" field.
func NonceEQ(v uint64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldNonce, v))
}

// NonceNEQ applies the NEQ predicate on the "nonce" field.
func NonceNEQ(v uint64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldNonce, v))
}

// NonceIn applies the In predicate on the "nonce" field.
func NonceIn(vs ...uint64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldNonce, vs...))
}

// NonceNotIn applies the NotIn predicate on the "nonce" field.
func NonceNotIn(vs ...uint64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldNonce, vs...))
}

// NonceGT applies the GT predicate on the "nonce" field.
func NonceGT(v uint64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldNonce, v))
}

// NonceGTE applies the GTE predicate on the "nonce" field.
func NonceGTE(v uint64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldNonce, v))
}

// NonceLT applies the LT predicate on the "nonce" field.
func NonceLT(v uint64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldNonce, v))
}

// NonceLTE applies the LTE predicate on the "nonce" field.
func NonceLTE(v uint64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldNonce, v))
}

// TxHashEQ applies the EQ predicate on the "txHash" field.
func TxHashEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTxHash, v))
}

// TxHashNEQ applies the NEQ predicate on the "txHash" field.
func TxHashNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldTxHash, v))
}

// TxHashIn applies the In predicate on the "txHash" field.
func TxHashIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldTxHash, vs...))
}

// TxHashNotIn applies the NotIn predicate on the "txHash" field.
func TxHashNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldTxHash, vs...))
}

// TxHashGT applies the GT predicate on the "txHash" field.
func TxHashGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldTxHash, v))
}

// TxHashGTE applies the GTE predicate on the "txHash" field.
func TxHashGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldTxHash, v))
}

// TxHashLT applies the LT predicate on the "txHash" field.
func TxHashLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldTxHash, v))
}

// TxHashLTE applies the LTE predicate on the "txHash" field.
func TxHashLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldTxHash, v))
}

// TxHashContains applies the Contains predicate on the "txHash" field.
func TxHashContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldTxHash, v))
}

// TxHashHasPrefix applies the HasPrefix predicate on the "txHash" field.
func TxHashHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldTxHash, v))
}

// TxHashHasSuffix applies the HasSuffix predicate on the "txHash" field.
func TxHashHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldTxHash, v))
}

// TxHashEqualFold applies the EqualFold predicate on the "txHash" field.
func TxHashEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldTxHash, v))
}

// TxHashContainsFold applies the ContainsFold predicate on the "txHash" field.
func TxHashContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldTxHash, v))
}

// FailReasonEQ applies the EQ predicate on the "failReason" field.
func FailReasonEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldFailReason, v))
}

// FailReasonNEQ applies the NEQ predicate on the "failReason" field.
func FailReasonNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldFailReason, v))
}

// FailReasonIn applies the In predicate on the "failReason" field.
func FailReasonIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldFailReason, vs...))
}

// FailReasonNotIn applies the NotIn predicate on the "failReason" field.
func FailReasonNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldFailReason, vs...))
}

// FailReasonGT applies the GT predicate on the "failReason" field.
func FailReasonGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldFailReason, v))
}

// FailReasonGTE applies the GTE predicate on the "failReason" field.
func FailReasonGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldFailReason, v))
}

// FailReasonLT applies the LT predicate on the "failReason" field.
func FailReasonLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldFailReason, v))
}

// FailReasonLTE applies the LTE predicate on the "failReason" field.
func FailReasonLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldFailReason, v))
}

// FailReasonContains applies the Contains predicate on the "failReason" field.
func FailReasonContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldFailReason, v))
}

// FailReasonHasPrefix applies the HasPrefix predicate on the "failReason" field.
func FailReasonHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldFailReason, v))
}

// FailReasonHasSuffix applies the HasSuffix predicate on the "failReason" field.
func FailReasonHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldFailReason, v))
}

// FailReasonIsNil applies the IsNil predicate on the "failReason" field.
func FailReasonIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldFailReason))
}

// FailReasonNotNil applies the NotNil predicate on the "failReason" field.
func FailReasonNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldFailReason))
}

// FailReasonEqualFold applies the EqualFold predicate on the "failReason" field.
func FailReasonEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldFailReason, v))
}

// FailReasonContainsFold applies the ContainsFold predicate on the "failReason" field.
func FailReasonContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldFailReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Order) predicate.Order {
	return predicate.Order(sql.NotPredicates(p))
}
