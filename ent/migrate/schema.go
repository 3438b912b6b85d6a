// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DiscoveryEventsColumns holds the columns for the "discovery_events" table.
	DiscoveryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "rarity", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64, Default: 1},
		{Name: "near_misses", Type: field.TypeInt, Default: 0},
	}
	// DiscoveryEventsTable holds the schema information for the "discovery_events" table.
	DiscoveryEventsTable = &schema.Table{
		Name:       "discovery_events",
		Columns:    DiscoveryEventsColumns,
		PrimaryKey: []*schema.Column{DiscoveryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "discoveryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DiscoveryEventsColumns[1]},
			},
			{
				Name:    "discoveryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DiscoveryEventsColumns[2]},
			},
			{
				Name:    "discoveryevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{DiscoveryEventsColumns[3]},
			},
			{
				Name:    "discoveryevent_category",
				Unique:  false,
				Columns: []*schema.Column{DiscoveryEventsColumns[5]},
			},
			{
				Name:    "discoveryevent_rarity",
				Unique:  false,
				Columns: []*schema.Column{DiscoveryEventsColumns[6]},
			},
			{
				Name:    "discoveryevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{DiscoveryEventsColumns[7]},
			},
		},
	}
	// HintEventsColumns holds the columns for the "hint_events" table.
	HintEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString},
		{Name: "hint_index", Type: field.TypeInt},
		{Name: "hint_text", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// HintEventsTable holds the schema information for the "hint_events" table.
	HintEventsTable = &schema.Table{
		Name:       "hint_events",
		Columns:    HintEventsColumns,
		PrimaryKey: []*schema.Column{HintEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[1]},
			},
			{
				Name:    "hintevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[2]},
			},
			{
				Name:    "hintevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[3]},
			},
			{
				Name:    "hintevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[6]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "events_seen", Type: field.TypeInt, Default: 0},
		{Name: "discoveries", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DiscoveryEventsTable,
		HintEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
