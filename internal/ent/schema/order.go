package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"

	"github.com/shopspring/decimal"
)

// Order holds the schema definition for the Order entity.
type Order struct {
	ent.Schema
}

func (Order) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

func decimalField(name string) ent.Field {
	return field.Other(name, decimal.Decimal{}).
		SchemaType(map[string]string{
			dialect.SQLite: "decimal(32,18)",
		}).
		Default(decimal.Decimal{})
}

// Fields of the Order.
func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.String("guid").MaxLen(36).Unique(),
		field.Int64("userId"),
		field.String("account").MaxLen(42),
		field.String("token").MaxLen(42),
		field.String("symbol"),
		field.Enum("type").Values("buy", "sell"),
		decimalField("inAmount"),
		decimalField("outAmount"),
		decimalField("price"),
		field.Enum("status").Values("pending", "closed", "rejected"),
		field.Uint64("nonce"),
		field.String("txHash").MaxLen(66),
		field.String("failReason").Nillable().Optional(),
	}
}

// Edges of the Order.
func (Order) Edges() []ent.Edge {
	return nil
}

// Indexes of the Order.
func (Order) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("userId"),
		index.Fields("status"),
		index.Fields("txHash"),
	}
}
