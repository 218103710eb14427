package repository

import (
	"context"
	"time"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuoteRequestsTableName = "quote_requests"

type quoteRequestItem struct {
	ID             string   `dynamodbav:"id"`
	ContactName    string   `dynamodbav:"contact_name"`
	Email          string   `dynamodbav:"email"`
	Phone          string   `dynamodbav:"phone,omitempty"`
	EventType      string   `dynamodbav:"event_type,omitempty"`
	EventDate      string   `dynamodbav:"event_date"`
	EventTime      string   `dynamodbav:"event_time,omitempty"`
	Location       string   `dynamodbav:"location,omitempty"`
	GuestCount     int      `dynamodbav:"guest_count"`
	MenuSelections []string `dynamodbav:"menu_selections,omitempty"`
	Notes          string   `dynamodbav:"notes,omitempty"`
	Status         string   `dynamodbav:"status"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// QuoteRequestDynamoRepository persists QuoteRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type QuoteRequestDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestDynamoRepository)(nil)

func NewQuoteRequestDynamoRepository(ddb DynamoAPI, table string) *QuoteRequestDynamoRepository {
	return &QuoteRequestDynamoRepository{
		ddb:       ddb,
		tableName: tableOr(table, defaultQuoteRequestsTableName),
	}
}

func (r *QuoteRequestDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	av, err := attributevalue.MarshalMap(toQuoteRequestItem(q))
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuoteRequest{}, conditionErr(err)
	}
	return q, nil
}

func (r *QuoteRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	it, ok, err := getItem[quoteRequestItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

// ListByStatus scans with a status filter; the table has no status index.
func (r *QuoteRequestDynamoRepository) ListByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.QuoteRequest, error) {
	items, err := scanAll[quoteRequestItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.QuoteRequest, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuoteRequestItem(it))
	}
	return out, nil
}

// UpdateStatus writes to only while the stored status is still from.
func (r *QuoteRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.QuoteRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.QuoteRequest{}, conditionErr(err)
	}

	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

func quotePut(table string, q entities.QuoteRequest) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toQuoteRequestItem(q))
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}, nil
}

func toQuoteRequestItem(q entities.QuoteRequest) quoteRequestItem {
	return quoteRequestItem{
		ID:             q.ID,
		ContactName:    q.ContactName,
		Email:          q.Email,
		Phone:          q.Phone,
		EventType:      q.EventType,
		EventDate:      formatTime(q.EventDate),
		EventTime:      q.EventTime,
		Location:       q.Location,
		GuestCount:     q.GuestCount,
		MenuSelections: q.MenuSelections,
		Notes:          q.Notes,
		Status:         string(q.WorkflowStatus),
		CreatedAt:      formatTime(q.CreatedAt),
		UpdatedAt:      formatTime(q.UpdatedAt),
	}
}

func fromQuoteRequestItem(it quoteRequestItem) entities.QuoteRequest {
	return entities.QuoteRequest{
		ID:             it.ID,
		ContactName:    it.ContactName,
		Email:          it.Email,
		Phone:          it.Phone,
		EventType:      it.EventType,
		EventDate:      parseTime(it.EventDate),
		EventTime:      it.EventTime,
		Location:       it.Location,
		GuestCount:     it.GuestCount,
		MenuSelections: it.MenuSelections,
		Notes:          it.Notes,
		WorkflowStatus: entities.QuoteStatus(it.Status),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
