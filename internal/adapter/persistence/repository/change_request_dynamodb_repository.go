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

const defaultChangeRequestsTableName = "change_requests"

type requestedChangesItem struct {
	GuestCount *int     `dynamodbav:"guest_count,omitempty"`
	MenuItems  []string `dynamodbav:"menu_items,omitempty"`
	EventDate  string   `dynamodbav:"event_date,omitempty"`
	Notes      string   `dynamodbav:"notes,omitempty"`
}

type changeRequestItem struct {
	ID               string               `dynamodbav:"id"`
	InvoiceID        string               `dynamodbav:"invoice_id"`
	QuoteRequestID   string               `dynamodbav:"quote_request_id,omitempty"`
	RequestedChanges requestedChangesItem `dynamodbav:"requested_changes"`
	CustomerComments string               `dynamodbav:"customer_comments,omitempty"`
	Priority         string               `dynamodbav:"priority"`
	Status           string               `dynamodbav:"status"`
	AdminResponse    string               `dynamodbav:"admin_response,omitempty"`
	FinalCostChange  int64                `dynamodbav:"final_cost_change"`
	ResolvedAt       string               `dynamodbav:"resolved_at,omitempty"`
	CreatedAt        string               `dynamodbav:"created_at"`
	UpdatedAt        string               `dynamodbav:"updated_at"`
}

// ChangeRequestDynamoRepository persists ChangeRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
type ChangeRequestDynamoRepository struct {
	ddb           DynamoAPI
	tableName     string
	invoicesTable string
	quotesTable   string
}

var _ interfaces.IChangeRequestRepository = (*ChangeRequestDynamoRepository)(nil)

// NewChangeRequestDynamoRepository needs the invoice and quote tables too:
// resolving a request writes all three atomically.
func NewChangeRequestDynamoRepository(ddb DynamoAPI, table, invoicesTable, quotesTable string) *ChangeRequestDynamoRepository {
	return &ChangeRequestDynamoRepository{
		ddb:           ddb,
		tableName:     tableOr(table, defaultChangeRequestsTableName),
		invoicesTable: tableOr(invoicesTable, defaultInvoicesTableName),
		quotesTable:   tableOr(quotesTable, defaultQuoteRequestsTableName),
	}
}

// Submit stores a new request and moves its invoice from invoiceFrom to
// under_review in one transaction. It fails with ErrConditionFailed when the
// id is taken or the invoice left invoiceFrom.
func (r *ChangeRequestDynamoRepository) Submit(ctx context.Context, cr entities.ChangeRequest, invoiceFrom entities.InvoiceStatus) (entities.ChangeRequest, error) {
	av, err := attributevalue.MarshalMap(toChangeRequestItem(cr))
	if err != nil {
		return entities.ChangeRequest{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(r.invoicesTable),
					Key:                 idKey(cr.InvoiceID),
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
					UpdateExpression:    aws.String("SET #status = :to, #updated_at = :at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":from": &types.AttributeValueMemberS{Value: string(invoiceFrom)},
						":to":   &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusUnderReview)},
						":at":   &types.AttributeValueMemberS{Value: formatTime(cr.CreatedAt)},
					},
				},
			},
		},
	})
	if err != nil {
		return entities.ChangeRequest{}, conditionErr(err)
	}
	return cr, nil
}

func (r *ChangeRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ChangeRequest, error) {
	it, ok, err := getItem[changeRequestItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.ChangeRequest{}, err
	}
	return fromChangeRequestItem(it), nil
}

func (r *ChangeRequestDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.ChangeRequest, error) {
	items, err := queryAll[changeRequestItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.ChangeRequest, 0, len(items))
	for _, it := range items {
		out = append(out, fromChangeRequestItem(it))
	}
	return out, nil
}

// ApplyResolution writes the resolved request, the invoice and (optionally) the
// quote request in one transaction. It fails with ErrConditionFailed when the
// request is no longer pending or the invoice moved since it was read.
func (r *ChangeRequestDynamoRepository) ApplyResolution(ctx context.Context, res interfaces.ChangeRequestResolution) error {
	reqAV, err := attributevalue.MarshalMap(toChangeRequestItem(res.Request))
	if err != nil {
		return err
	}

	actions := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                reqAV,
			ConditionExpression: aws.String("#status = :pending"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending": &types.AttributeValueMemberS{Value: string(entities.ChangeRequestStatusPending)},
			},
		},
	}}

	if res.Invoice.ID != "" {
		put, err := invoicePut(r.invoicesTable, res.Invoice, res.PreviousInvoiceUpdated)
		if err != nil {
			return err
		}
		actions = append(actions, types.TransactWriteItem{Put: put})
	}

	if res.Quote.ID != "" {
		put, err := quotePut(r.quotesTable, res.Quote)
		if err != nil {
			return err
		}
		actions = append(actions, types.TransactWriteItem{Put: put})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: actions,
	})
	return conditionErr(err)
}

func toChangeRequestItem(cr entities.ChangeRequest) changeRequestItem {
	var eventDate string
	if cr.RequestedChanges.EventDate != nil {
		eventDate = formatTime(*cr.RequestedChanges.EventDate)
	}
	return changeRequestItem{
		ID:             cr.ID,
		InvoiceID:      cr.InvoiceID,
		QuoteRequestID: cr.QuoteRequestID,
		RequestedChanges: requestedChangesItem{
			GuestCount: cr.RequestedChanges.GuestCount,
			MenuItems:  cr.RequestedChanges.MenuItems,
			EventDate:  eventDate,
			Notes:      cr.RequestedChanges.Notes,
		},
		CustomerComments: cr.CustomerComments,
		Priority:         string(cr.Priority),
		Status:           string(cr.WorkflowStatus),
		AdminResponse:    cr.AdminResponse,
		FinalCostChange:  cr.FinalCostChange,
		ResolvedAt:       formatTimePtr(cr.ResolvedAt),
		CreatedAt:        formatTime(cr.CreatedAt),
		UpdatedAt:        formatTime(cr.UpdatedAt),
	}
}

func fromChangeRequestItem(it changeRequestItem) entities.ChangeRequest {
	var eventDate *time.Time
	if it.RequestedChanges.EventDate != "" {
		eventDate = parseTimePtr(it.RequestedChanges.EventDate)
	}
	return entities.ChangeRequest{
		ID:             it.ID,
		InvoiceID:      it.InvoiceID,
		QuoteRequestID: it.QuoteRequestID,
		RequestedChanges: entities.RequestedChanges{
			GuestCount: it.RequestedChanges.GuestCount,
			MenuItems:  it.RequestedChanges.MenuItems,
			EventDate:  eventDate,
			Notes:      it.RequestedChanges.Notes,
		},
		CustomerComments: it.CustomerComments,
		Priority:         entities.ChangeRequestPriority(it.Priority),
		WorkflowStatus:   entities.ChangeRequestStatus(it.Status),
		AdminResponse:    it.AdminResponse,
		FinalCostChange:  it.FinalCostChange,
		ResolvedAt:       parseTimePtr(it.ResolvedAt),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
