package database

import (
	"context"
	"errors"
	"fmt"

	appconfig "catering_backoffice/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ConnectDynamoDB creates a DynamoDB client from the AWS section of the config.
// A non-empty DynamoDBEndpoint points the client at DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.AWSConfig) (*dynamodb.Client, error) {
	awsCfg, err := newAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database: aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	}), nil
}

func newAWSConfig(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	// DynamoDB Local ignores credentials, but the SDK still requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}

// TableSpec describes a table and its optional single-attribute GSI.
type TableSpec struct {
	Name     string
	GSIName  string
	GSIField string
}

// Tables lists the service's tables with their secondary indexes.
func Tables(t appconfig.TablesConfig) []TableSpec {
	return []TableSpec{
		{Name: t.QuoteRequests},
		{Name: t.Invoices},
		{Name: t.PaymentMilestones, GSIName: "invoice_id-index", GSIField: "invoice_id"},
		{Name: t.ChangeRequests, GSIName: "invoice_id-index", GSIField: "invoice_id"},
		{Name: t.Payments, GSIName: "milestone_id-index", GSIField: "milestone_id"},
	}
}

// EnsureTables creates any missing table. Intended for local development.
func EnsureTables(ctx context.Context, client *dynamodb.Client, specs []TableSpec, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, spec := range specs {
		_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("database: describe %s: %w", spec.Name, err)
		}

		if _, err := client.CreateTable(ctx, createTableInput(spec)); err != nil {
			return fmt.Errorf("database: create %s: %w", spec.Name, err)
		}
		logger.Info("dynamodb table created", zap.String("table", spec.Name))
	}
	return nil
}

func createTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(spec.Name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}
	if spec.GSIName == "" {
		return in
	}

	in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
		AttributeName: aws.String(spec.GSIField),
		AttributeType: types.ScalarAttributeTypeS,
	})
	in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
		IndexName: aws.String(spec.GSIName),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(spec.GSIField), KeyType: types.KeyTypeHash},
		},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}}
	return in
}
