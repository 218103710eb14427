package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvoicesTableName = "invoices"

type lineItemItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Category    string `dynamodbav:"category,omitempty"`
	Unit        string `dynamodbav:"unit"`
	Quantity    int64  `dynamodbav:"quantity"`
	UnitPrice   int64  `dynamodbav:"unit_price"`
	TotalPrice  int64  `dynamodbav:"total_price"`
	TaxExempt   bool   `dynamodbav:"tax_exempt,omitempty"`
}

type invoiceItem struct {
	ID                   string         `dynamodbav:"id"`
	QuoteRequestID       string         `dynamodbav:"quote_request_id,omitempty"`
	InvoiceNumber        string         `dynamodbav:"invoice_number"`
	DocumentType         string         `dynamodbav:"document_type"`
	Status               string         `dynamodbav:"status"`
	CustomerName         string         `dynamodbav:"customer_name"`
	CustomerEmail        string         `dynamodbav:"customer_email"`
	CustomerPhone        string         `dynamodbav:"customer_phone,omitempty"`
	EventDate            string         `dynamodbav:"event_date,omitempty"`
	GuestCount           int            `dynamodbav:"guest_count"`
	IsGovernmentContract bool           `dynamodbav:"is_government_contract"`
	LineItems            []lineItemItem `dynamodbav:"line_items"`
	Subtotal             int64          `dynamodbav:"subtotal"`
	HospitalityTax       int64          `dynamodbav:"hospitality_tax"`
	ServiceTax           int64          `dynamodbav:"service_tax"`
	TaxAmount            int64          `dynamodbav:"tax_amount"`
	TotalAmount          int64          `dynamodbav:"total_amount"`
	DueDate              string         `dynamodbav:"due_date,omitempty"`
	SentAt               string         `dynamodbav:"sent_at,omitempty"`
	ViewedAt             string         `dynamodbav:"viewed_at,omitempty"`
	CreatedAt            string         `dynamodbav:"created_at"`
	UpdatedAt            string         `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB. Line items
// live inside the invoice item so totals and lines are always written together.
//
// Table requirements:
//   - PK: id (string)
type InvoiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI, table string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: tableOr(table, defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, conditionErr(err)
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	it, ok, err := getItem[invoiceItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

// Update replaces the stored invoice. The write is refused when the stored
// status differs from inv's, so edits never undo a concurrent transition.
func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(inv.WorkflowStatus)},
		},
	})
	if err != nil {
		return entities.Invoice{}, conditionErr(err)
	}
	return inv, nil
}

// UpdateStatus moves the invoice from -> to. Reaching sent or viewed stamps
// sent_at / viewed_at the first time only.
func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.InvoiceStatus, at time.Time) (entities.Invoice, error) {
	set := []string{"#status = :to", "#updated_at = :at"}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	switch to {
	case entities.InvoiceStatusSent:
		set = append(set, "#sent_at = if_not_exists(#sent_at, :at)")
		names["#sent_at"] = "sent_at"
	case entities.InvoiceStatusViewed:
		set = append(set, "#viewed_at = if_not_exists(#viewed_at, :at)")
		names["#viewed_at"] = "viewed_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      idKey(id),
		ConditionExpression:      aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:         aws.String("SET " + strings.Join(set, ", ")),
		ExpressionAttributeNames: mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":at":   &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Invoice{}, conditionErr(err)
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByStatuses(ctx context.Context, statuses []entities.InvoiceStatus) ([]entities.Invoice, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(statuses))
	values := make(map[string]types.AttributeValue, len(statuses))
	for i, s := range statuses {
		key := fmt.Sprintf(":s%d", i)
		placeholders[i] = key
		values[key] = &types.AttributeValueMemberS{Value: string(s)}
	}

	items, err := scanAll[invoiceItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String("#status IN (" + strings.Join(placeholders, ", ") + ")"),
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Invoice, 0, len(items))
	for _, it := range items {
		out = append(out, fromInvoiceItem(it))
	}
	return out, nil
}

// invoicePut is the transactional write used when a change request resolves:
// it only succeeds if nobody touched the invoice since previousUpdated.
func invoicePut(table string, inv entities.Invoice, previousUpdated time.Time) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #updated_at = :previous"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":previous": &types.AttributeValueMemberS{Value: formatTime(previousUpdated)},
		},
	}, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	lines := make([]lineItemItem, 0, len(inv.LineItems))
	for _, li := range inv.LineItems {
		lines = append(lines, lineItemItem{
			ID:          li.ID,
			Description: li.Description,
			Category:    li.Category,
			Unit:        string(li.Unit),
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			TotalPrice:  li.TotalPrice,
			TaxExempt:   li.TaxExempt,
		})
	}
	return invoiceItem{
		ID:                   inv.ID,
		QuoteRequestID:       inv.QuoteRequestID,
		InvoiceNumber:        inv.InvoiceNumber,
		DocumentType:         string(inv.DocumentType),
		Status:               string(inv.WorkflowStatus),
		CustomerName:         inv.CustomerName,
		CustomerEmail:        inv.CustomerEmail,
		CustomerPhone:        inv.CustomerPhone,
		EventDate:            formatTime(inv.EventDate),
		GuestCount:           inv.GuestCount,
		IsGovernmentContract: inv.IsGovernmentContract,
		LineItems:            lines,
		Subtotal:             inv.Subtotal,
		HospitalityTax:       inv.HospitalityTax,
		ServiceTax:           inv.ServiceTax,
		TaxAmount:            inv.TaxAmount,
		TotalAmount:          inv.TotalAmount,
		DueDate:              formatTime(inv.DueDate),
		SentAt:               formatTimePtr(inv.SentAt),
		ViewedAt:             formatTimePtr(inv.ViewedAt),
		CreatedAt:            formatTime(inv.CreatedAt),
		UpdatedAt:            formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	lines := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		lines = append(lines, entities.LineItem{
			ID:          li.ID,
			Description: li.Description,
			Category:    li.Category,
			Unit:        entities.LineUnit(li.Unit),
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			TotalPrice:  li.TotalPrice,
			TaxExempt:   li.TaxExempt,
		})
	}
	return entities.Invoice{
		ID:                   it.ID,
		QuoteRequestID:       it.QuoteRequestID,
		InvoiceNumber:        it.InvoiceNumber,
		DocumentType:         entities.DocumentType(it.DocumentType),
		WorkflowStatus:       entities.InvoiceStatus(it.Status),
		CustomerName:         it.CustomerName,
		CustomerEmail:        it.CustomerEmail,
		CustomerPhone:        it.CustomerPhone,
		EventDate:            parseTime(it.EventDate),
		GuestCount:           it.GuestCount,
		IsGovernmentContract: it.IsGovernmentContract,
		LineItems:            lines,
		Subtotal:             it.Subtotal,
		HospitalityTax:       it.HospitalityTax,
		ServiceTax:           it.ServiceTax,
		TaxAmount:            it.TaxAmount,
		TotalAmount:          it.TotalAmount,
		DueDate:              parseTime(it.DueDate),
		SentAt:               parseTimePtr(it.SentAt),
		ViewedAt:             parseTimePtr(it.ViewedAt),
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}
