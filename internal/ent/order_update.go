// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/evm-swap-bot/internal/ent/order"
	"github.com/fachebot/evm-swap-bot/internal/ent/predicate"
	"github.com/shopspring/decimal"
)

// OrderUpdate is the builder for updating Order entities.
type OrderUpdate struct {
	config
	hooks    []Hook
	mutation *OrderMutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdate) Where(ps ...predicate.Order) *OrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *OrderUpdate) SetUpdateTime(v time.Time) *OrderUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetGUID sets the "guid" field.
func (_u *OrderUpdate) SetGUID(v string) *OrderUpdate {
	_u.mutation.SetGUID(v)
	return _u
}

// SetNillableGUID sets the "guid" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableGUID(v *string) *OrderUpdate {
	if v != nil {
		_u.SetGUID(*v)
	}
	return _u
}

// SetUserId sets the "userId" field.
func (_u *OrderUpdate) SetUserId(v int64) *OrderUpdate {
	_u.mutation.ResetUserId()
	_u.mutation.SetUserId(v)
	return _u
}

// SetNillableUserId sets the "userId" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableUserId(v *int64) *OrderUpdate {
	if v != nil {
		_u.SetUserId(*v)
	}
	return _u
}

// AddUserId adds value to the "userId" field.
func (_u *OrderUpdate) AddUserId(v int64) *OrderUpdate {
	_u.mutation.AddUserId(v)
	return _u
}

// SetAccount sets the "account" field.
func (_u *OrderUpdate) SetAccount(v string) *OrderUpdate {
	_u.mutation.SetAccount(v)
	return _u
}

// SetNillableAccount sets the "account" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableAccount(v *string) *OrderUpdate {
	if v != nil {
		_u.SetAccount(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *OrderUpdate) SetToken(v string) *OrderUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableToken(v *string) *OrderUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetSymbol sets the "symbol" field.
func (_u *OrderUpdate) SetSymbol(v string) *OrderUpdate {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableSymbol(v *string) *OrderUpdate {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *OrderUpdate) SetType(v order.Type) *OrderUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableType(v *order.Type) *OrderUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetInAmount sets the "inAmount" field.
func (_u *OrderUpdate) SetInAmount(v decimal.Decimal) *OrderUpdate {
	_u.mutation.SetInAmount(v)
	return _u
}

// SetNillableInAmount sets the "inAmount" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableInAmount(v *decimal.Decimal) *OrderUpdate {
	if v != nil {
		_u.SetInAmount(*v)
	}
	return _u
}

// SetOutAmount sets the "outAmount" field.
func (_u *OrderUpdate) SetOutAmount(v decimal.Decimal) *OrderUpdate {
	_u.mutation.SetOutAmount(v)
	return _u
}

// SetNillableOutAmount sets the "outAmount" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableOutAmount(v *decimal.Decimal) *OrderUpdate {
	if v != nil {
		_u.SetOutAmount(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *OrderUpdate) SetPrice(v decimal.Decimal) *OrderUpdate {
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *OrderUpdate) SetNillablePrice(v *decimal.Decimal) *OrderUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdate) SetStatus(v order.Status) *OrderUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableStatus(v *order.Status) *OrderUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNonce sets the "nonce" field.
func (_u *OrderUpdate) SetNonce(v uint64) *OrderUpdate {
	_u.mutation.ResetNonce()
	_u.mutation.SetNonce(v)
	return _u
}

// SetNillableNonce sets the "nonce" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableNonce(v *uint64) *OrderUpdate {
	if v != nil {
		_u.SetNonce(*v)
	}
	return _u
}

// AddNonce adds value to the "nonce" field.
func (_u *OrderUpdate) AddNonce(v int64) *OrderUpdate {
	_u.mutation.AddNonce(v)
	return _u
}

// SetTxHash sets the "txHash" field.
func (_u *OrderUpdate) SetTxHash(v string) *OrderUpdate {
	_u.mutation.SetTxHash(v)
	return _u
}

// SetNillableTxHash sets the "txHash" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableTxHash(v *string) *OrderUpdate {
	if v != nil {
		_u.SetTxHash(*v)
	}
	return _u
}

// SetFailReason sets the "failReason" field.
func (_u *OrderUpdate) SetFailReason(v string) *OrderUpdate {
	_u.mutation.SetFailReason(v)
	return _u
}

// SetNillableFailReason sets the "failReason" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableFailReason(v *string) *OrderUpdate {
	if v != nil {
		_u.SetFailReason(*v)
	}
	return _u
}

// ClearFailReason clears the value of the "failReason" field.
func (_u *OrderUpdate) ClearFailReason() *OrderUpdate {
	_u.mutation.ClearFailReason()
	return _u
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdate) Mutation() *OrderMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := order.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdate) check() error {
	if v, ok := _u.mutation.GUID(); ok {
		if err := order.GUIDValidator(v); err != nil {
			return &ValidationError{Name: "guid", err: fmt.Errorf(`ent: validator failed for field "Order.guid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Account(); ok {
		if err := order.AccountValidator(v); err != nil {
			return &ValidationError{Name: "account", err: fmt.Errorf(`ent: validator failed for field "Order.account": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Token(); ok {
		if err := order.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "Order.token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := order.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Order.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Order.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TxHash(); ok {
		if err := order.TxHashValidator(v); err != nil {
			return &ValidationError{Name: "txHash", err: fmt.Errorf(`ent: validator failed for field "Order.txHash": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(order.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GUID(); ok {
		_spec.SetField(order.FieldGUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserId(); ok {
		_spec.SetField(order.FieldUserId, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserId(); ok {
		_spec.AddField(order.FieldUserId, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Account(); ok {
		_spec.SetField(order.FieldAccount, field.TypeString, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(order.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(order.FieldSymbol, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(order.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InAmount(); ok {
		_spec.SetField(order.FieldInAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.OutAmount(); ok {
		_spec.SetField(order.FieldOutAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(order.FieldPrice, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Nonce(); ok {
		_spec.SetField(order.FieldNonce, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedNonce(); ok {
		_spec.AddField(order.FieldNonce, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.TxHash(); ok {
		_spec.SetField(order.FieldTxHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailReason(); ok {
		_spec.SetField(order.FieldFailReason, field.TypeString, value)
	}
	if _u.mutation.FailReasonCleared() {
		_spec.ClearField(order.FieldFailReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderUpdateOne is the builder for updating a single Order entity.
type OrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *OrderUpdateOne) SetUpdateTime(v time.Time) *OrderUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetGUID sets the "guid" field.
func (_u *OrderUpdateOne) SetGUID(v string) *OrderUpdateOne {
	_u.mutation.SetGUID(v)
	return _u
}

// SetNillableGUID sets the "guid" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableGUID(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetGUID(*v)
	}
	return _u
}

// SetUserId sets the "userId" field.
func (_u *OrderUpdateOne) SetUserId(v int64) *OrderUpdateOne {
	_u.mutation.ResetUserId()
	_u.mutation.SetUserId(v)
	return _u
}

// SetNillableUserId sets the "userId" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableUserId(v *int64) *OrderUpdateOne {
	if v != nil {
		_u.SetUserId(*v)
	}
	return _u
}

// AddUserId adds value to the "userId" field.
func (_u *OrderUpdateOne) AddUserId(v int64) *OrderUpdateOne {
	_u.mutation.AddUserId(v)
	return _u
}

// SetAccount sets the "account" field.
func (_u *OrderUpdateOne) SetAccount(v string) *OrderUpdateOne {
	_u.mutation.SetAccount(v)
	return _u
}

// SetNillableAccount sets the "account" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableAccount(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetAccount(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *OrderUpdateOne) SetToken(v string) *OrderUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableToken(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetSymbol sets the "symbol" field.
func (_u *OrderUpdateOne) SetSymbol(v string) *OrderUpdateOne {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableSymbol(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *OrderUpdateOne) SetType(v order.Type) *OrderUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableType(v *order.Type) *OrderUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetInAmount sets the "inAmount" field.
func (_u *OrderUpdateOne) SetInAmount(v decimal.Decimal) *OrderUpdateOne {
	_u.mutation.SetInAmount(v)
	return _u
}

// SetNillableInAmount sets the "inAmount" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableInAmount(v *decimal.Decimal) *OrderUpdateOne {
	if v != nil {
		_u.SetInAmount(*v)
	}
	return _u
}

// SetOutAmount sets the "outAmount" field.
func (_u *OrderUpdateOne) SetOutAmount(v decimal.Decimal) *OrderUpdateOne {
	_u.mutation.SetOutAmount(v)
	return _u
}

// SetNillableOutAmount sets the "outAmount" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableOutAmount(v *decimal.Decimal) *OrderUpdateOne {
	if v != nil {
		_u.SetOutAmount(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *OrderUpdateOne) SetPrice(v decimal.Decimal) *OrderUpdateOne {
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillablePrice(v *decimal.Decimal) *OrderUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdateOne) SetStatus(v order.Status) *OrderUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableStatus(v *order.Status) *OrderUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNonce sets the "nonce" field.
func (_u *OrderUpdateOne) SetNonce(v uint64) *OrderUpdateOne {
	_u.mutation.ResetNonce()
	_u.mutation.SetNonce(v)
	return _u
}

// SetNillableNonce sets the "nonce" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableNonce(v *uint64) *OrderUpdateOne {
	if v != nil {
		_u.SetNonce(*v)
	}
	return _u
}

// AddNonce adds value to the "nonce" field.
func (_u *OrderUpdateOne) AddNonce(v int64) *OrderUpdateOne {
	_u.mutation.AddNonce(v)
	return _u
}

// SetTxHash sets the "txHash" field.
func (_u *OrderUpdateOne) SetTxHash(v string) *OrderUpdateOne {
	_u.mutation.SetTxHash(v)
	return _u
}

// SetNillableTxHash sets the "txHash" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableTxHash(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetTxHash(*v)
	}
	return _u
}

// SetFailReason sets the "failReason" field.
func (_u *OrderUpdateOne) SetFailReason(v string) *OrderUpdateOne {
	_u.mutation.SetFailReason(v)
	return _u
}

// SetNillableFailReason sets the "failReason" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableFailReason(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetFailReason(*v)
	}
	return _u
}

// ClearFailReason clears the value of the "failReason" field.
func (_u *OrderUpdateOne) ClearFailReason() *OrderUpdateOne {
	_u.mutation.ClearFailReason()
	return _u
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdateOne) Mutation() *OrderMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdateOne) Where(ps ...predicate.Order) *OrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderUpdateOne) Select(field string, fields ...string) *OrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Order entity.
func (_u *OrderUpdateOne) Save(ctx context.Context) (*Order, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdateOne) SaveX(ctx context.Context) *Order {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := order.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdateOne) check() error {
	if v, ok := _u.mutation.GUID(); ok {
		if err := order.GUIDValidator(v); err != nil {
			return &ValidationError{Name: "guid", err: fmt.Errorf(`ent: validator failed for field "Order.guid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Account(); ok {
		if err := order.AccountValidator(v); err != nil {
			return &ValidationError{Name: "account", err: fmt.Errorf(`ent: validator failed for field "Order.account": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Token(); ok {
		if err := order.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "Order.token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := order.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Order.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Order.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TxHash(); ok {
		if err := order.TxHashValidator(v); err != nil {
			return &ValidationError{Name: "txHash", err: fmt.Errorf(`ent: validator failed for field "Order.txHash": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderUpdateOne) sqlSave(ctx context.Context) (_node *Order, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Order.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, order.FieldID)
		for _, f := range fields {
			if !order.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != order.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(order.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GUID(); ok {
		_spec.SetField(order.FieldGUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserId(); ok {
		_spec.SetField(order.FieldUserId, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserId(); ok {
		_spec.AddField(order.FieldUserId, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Account(); ok {
		_spec.SetField(order.FieldAccount, field.TypeString, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(order.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(order.FieldSymbol, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(order.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InAmount(); ok {
		_spec.SetField(order.FieldInAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.OutAmount(); ok {
		_spec.SetField(order.FieldOutAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(order.FieldPrice, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Nonce(); ok {
		_spec.SetField(order.FieldNonce, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedNonce(); ok {
		_spec.AddField(order.FieldNonce, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.TxHash(); ok {
		_spec.SetField(order.FieldTxHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailReason(); ok {
		_spec.SetField(order.FieldFailReason, field.TypeString, value)
	}
	if _u.mutation.FailReasonCleared() {
		_spec.ClearField(order.FieldFailReason, field.TypeString)
	}
	_node = &Order{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
