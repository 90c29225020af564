// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "age", Type: field.TypeInt, Default: 0},
		{Name: "gender", Type: field.TypeString, Default: "Non spécifié"},
		{Name: "is_guest", Type: field.TypeBool, Default: false},
		{Name: "session_token", Type: field.TypeString, Unique: true, Nullable: true, Size: 100},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
	}
	// AnalysesColumns holds the columns for the "analyses" table.
	AnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "session_token", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "raw_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ai_summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "disclaimer", Type: field.TypeString, Default: "Ce résumé est informatif et ne remplace pas un avis médical."},
		{Name: "account_id", Type: field.TypeUUID},
	}
	// AnalysesTable holds the schema information for the "analyses" table.
	AnalysesTable = &schema.Table{
		Name:       "analyses",
		Columns:    AnalysesColumns,
		PrimaryKey: []*schema.Column{AnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analyses_accounts_analyses",
				Columns:    []*schema.Column{AnalysesColumns[7]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysis_session_token",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[1]},
			},
			{
				Name:    "analysis_account_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[7], AnalysesColumns[2]},
			},
		},
	}
	// AnalysisDetailsColumns holds the columns for the "analysis_details" table.
	AnalysisDetailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "parameter_name", Type: field.TypeString, Size: 100},
		{Name: "value", Type: field.TypeFloat64, Nullable: true},
		{Name: "unit", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "reference_range", Type: field.TypeString, Size: 100, Default: ""},
		{Name: "status", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "analysis_id", Type: field.TypeUUID},
	}
	// AnalysisDetailsTable holds the schema information for the "analysis_details" table.
	AnalysisDetailsTable = &schema.Table{
		Name:       "analysis_details",
		Columns:    AnalysisDetailsColumns,
		PrimaryKey: []*schema.Column{AnalysisDetailsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_details_analyses_details",
				Columns:    []*schema.Column{AnalysisDetailsColumns[7]},
				RefColumns: []*schema.Column{AnalysesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysisdetail_analysis_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisDetailsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		AnalysesTable,
		AnalysisDetailsTable,
	}
)

func init() {
	AccountsTable.Annotation = &entsql.Annotation{
		Table: "accounts",
	}
	AnalysesTable.ForeignKeys[0].RefTable = AccountsTable
	AnalysesTable.Annotation = &entsql.Annotation{
		Table: "analyses",
	}
	AnalysisDetailsTable.ForeignKeys[0].RefTable = AnalysesTable
	AnalysisDetailsTable.Annotation = &entsql.Annotation{
		Table: "analysis_details",
	}
}
