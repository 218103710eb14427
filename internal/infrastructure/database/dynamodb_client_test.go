package database

import (
	"testing"

	appconfig "catering_backoffice/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	specs := Tables(appconfig.TablesConfig{
		QuoteRequests:     "quote_requests",
		Invoices:          "invoices",
		PaymentMilestones: "payment_milestones",
		ChangeRequests:    "change_requests",
		Payments:          "payments",
	})

	require.Len(t, specs, 5)
	require.Equal(t, "payment_milestones", specs[2].Name)
	require.Equal(t, "invoice_id-index", specs[2].GSIName)
	require.Equal(t, "milestone_id", specs[4].GSIField)
}

func TestCreateTableInput(t *testing.T) {
	t.Run("plain table", func(t *testing.T) {
		in := createTableInput(TableSpec{Name: "invoices"})
		require.Equal(t, "invoices", aws.ToString(in.TableName))
		require.Len(t, in.AttributeDefinitions, 1)
		require.Empty(t, in.GlobalSecondaryIndexes)
		require.Equal(t, types.BillingModePayPerRequest, in.BillingMode)
	})

	t.Run("table with index", func(t *testing.T) {
		in := createTableInput(TableSpec{Name: "payments", GSIName: "milestone_id-index", GSIField: "milestone_id"})
		require.Len(t, in.AttributeDefinitions, 2)
		require.Len(t, in.GlobalSecondaryIndexes, 1)
		require.Equal(t, "milestone_id-index", aws.ToString(in.GlobalSecondaryIndexes[0].IndexName))
	})
}
