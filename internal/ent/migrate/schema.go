// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// NoncesColumns holds the columns for the "nonces" table.
	NoncesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "account", Type: field.TypeString, Unique: true, Size: 42},
		{Name: "nonce", Type: field.TypeUint64},
	}
	// NoncesTable holds the schema information for the "nonces" table.
	NoncesTable = &schema.Table{
		Name:       "nonces",
		Columns:    NoncesColumns,
		PrimaryKey: []*schema.Column{NoncesColumns[0]},
	}
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "guid", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "account", Type: field.TypeString, Size: 42},
		{Name: "token", Type: field.TypeString, Size: 42},
		{Name: "symbol", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"buy", "sell"}},
		{Name: "in_amount", Type: field.TypeOther, SchemaType: map[string]string{"sqlite3": "decimal(32,18)"}},
		{Name: "out_amount", Type: field.TypeOther, SchemaType: map[string]string{"sqlite3": "decimal(32,18)"}},
		{Name: "price", Type: field.TypeOther, SchemaType: map[string]string{"sqlite3": "decimal(32,18)"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "closed", "rejected"}},
		{Name: "nonce", Type: field.TypeUint64},
		{Name: "tx_hash", Type: field.TypeString, Size: 66},
		{Name: "fail_reason", Type: field.TypeString, Nullable: true},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "order_user_id",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[4]},
			},
			{
				Name:    "order_status",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[12]},
			},
			{
				Name:    "order_tx_hash",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[14]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "slippage_bps", Type: field.TypeInt},
		{Name: "sell_slippage_bps", Type: field.TypeInt, Nullable: true},
		{Name: "enable_infinite_approval", Type: field.TypeBool, Nullable: true},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "settings_user_id",
				Unique:  true,
				Columns: []*schema.Column{SettingsColumns[3]},
			},
		},
	}
	// WalletsColumns holds the columns for the "wallets" table.
	WalletsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "account", Type: field.TypeString, Size: 42},
		{Name: "private_key", Type: field.TypeString},
	}
	// WalletsTable holds the schema information for the "wallets" table.
	WalletsTable = &schema.Table{
		Name:       "wallets",
		Columns:    WalletsColumns,
		PrimaryKey: []*schema.Column{WalletsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "wallet_user_id",
				Unique:  true,
				Columns: []*schema.Column{WalletsColumns[3]},
			},
			{
				Name:    "wallet_account",
				Unique:  true,
				Columns: []*schema.Column{WalletsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		NoncesTable,
		OrdersTable,
		SettingsTable,
		WalletsTable,
	}
)

func init() {
}
