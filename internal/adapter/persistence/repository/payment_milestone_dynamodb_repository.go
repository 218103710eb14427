package repository

import (
	"context"
	"strconv"
	"time"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentMilestonesTableName = "payment_milestones"
	// DynamoDB caps a transaction at 100 actions.
	maxTransactItems = 100
)

type paymentMilestoneItem struct {
	ID          string `dynamodbav:"id"`
	InvoiceID   string `dynamodbav:"invoice_id"`
	Sequence    int    `dynamodbav:"sequence"`
	Kind        string `dynamodbav:"kind"`
	Description string `dynamodbav:"description"`
	Percentage  int64  `dynamodbav:"percentage"`
	Amount      int64  `dynamodbav:"amount"`
	DueAnchor   string `dynamodbav:"due_anchor"`
	OffsetDays  int    `dynamodbav:"offset_days"`
	DueDate     string `dynamodbav:"due_date,omitempty"`
	Status      string `dynamodbav:"status"`
	PaidAt      string `dynamodbav:"paid_at,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// PaymentMilestoneDynamoRepository persists PaymentMilestone entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
type PaymentMilestoneDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentMilestoneRepository = (*PaymentMilestoneDynamoRepository)(nil)

func NewPaymentMilestoneDynamoRepository(ddb DynamoAPI, table string) *PaymentMilestoneDynamoRepository {
	return &PaymentMilestoneDynamoRepository{
		ddb:       ddb,
		tableName: tableOr(table, defaultPaymentMilestonesTableName),
	}
}

func (r *PaymentMilestoneDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentMilestone, error) {
	it, ok, err := getItem[paymentMilestoneItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.PaymentMilestone{}, err
	}
	return fromPaymentMilestoneItem(it), nil
}

func (r *PaymentMilestoneDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentMilestone, error) {
	items, err := queryAll[paymentMilestoneItem](ctx, r.ddb, &dynamodb.QueryInput{
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

	out := make([]entities.PaymentMilestone, 0, len(items))
	for _, it := range items {
		out = append(out, fromPaymentMilestoneItem(it))
	}
	return out, nil
}

// ReplaceForInvoice swaps the unpaid part of the schedule in one transaction.
// Paid milestones in next are not rewritten; every put and delete carries a
// "not paid" condition so a payment landing mid-write cancels the transaction.
func (r *PaymentMilestoneDynamoRepository) ReplaceForInvoice(ctx context.Context, invoiceID string, previous, next []entities.PaymentMilestone) error {
	keep := make(map[string]bool, len(next))
	var actions []types.TransactWriteItem

	for _, m := range next {
		keep[m.ID] = true
		if m.Status == entities.MilestoneStatusPaid {
			continue
		}
		m.InvoiceID = invoiceID
		av, err := attributevalue.MarshalMap(toPaymentMilestoneItem(m))
		if err != nil {
			return err
		}
		actions = append(actions, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                 aws.String(r.tableName),
				Item:                      av,
				ConditionExpression:       aws.String(notPaidCondition),
				ExpressionAttributeNames:  notPaidNames(),
				ExpressionAttributeValues: notPaidValues(),
			},
		})
	}

	for _, m := range previous {
		if keep[m.ID] || m.Status == entities.MilestoneStatusPaid {
			continue
		}
		actions = append(actions, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName:                 aws.String(r.tableName),
				Key:                       idKey(m.ID),
				ConditionExpression:       aws.String(notPaidCondition),
				ExpressionAttributeNames:  notPaidNames(),
				ExpressionAttributeValues: notPaidValues(),
			},
		})
	}

	if len(actions) == 0 {
		return nil
	}
	if len(actions) > maxTransactItems {
		return errTooManyMilestones
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: actions,
	})
	return conditionErr(err)
}

// UpdateStatus writes the milestone's status, paid_at and updated_at while the
// stored status is still from.
func (r *PaymentMilestoneDynamoRepository) UpdateStatus(ctx context.Context, milestone entities.PaymentMilestone, from entities.MilestoneStatus) (entities.PaymentMilestone, error) {
	values := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(milestone.Status)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(milestone.UpdatedAt)},
	}
	expr := "SET #status = :to, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if milestone.PaidAt != nil {
		expr += ", #paid_at = :paid_at"
		names["#paid_at"] = "paid_at"
		values[":paid_at"] = &types.AttributeValueMemberS{Value: formatTimePtr(milestone.PaidAt)}
	}

	return r.update(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(milestone.ID),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
}

// MarkPaid settles the milestone while the stored row is unpaid and still
// carries the amount that was charged.
func (r *PaymentMilestoneDynamoRepository) MarkPaid(ctx context.Context, milestone entities.PaymentMilestone, paidAt time.Time) (entities.PaymentMilestone, error) {
	return r.update(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(milestone.ID),
		ConditionExpression: aws.String(markPaidCondition),
		UpdateExpression:    aws.String("SET #status = :paid, #paid_at = :paid_at, #updated_at = :paid_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#amount":     "amount",
			"#paid_at":    "paid_at",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":    &types.AttributeValueMemberS{Value: string(entities.MilestoneStatusPaid)},
			":pending": &types.AttributeValueMemberS{Value: string(entities.MilestoneStatusPending)},
			":due":     &types.AttributeValueMemberS{Value: string(entities.MilestoneStatusDue)},
			":amount":  &types.AttributeValueMemberN{Value: strconv.FormatInt(milestone.Amount, 10)},
			":paid_at": &types.AttributeValueMemberS{Value: formatTime(paidAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
}

func (r *PaymentMilestoneDynamoRepository) update(ctx context.Context, in *dynamodb.UpdateItemInput) (entities.PaymentMilestone, error) {
	out, err := r.ddb.UpdateItem(ctx, in)
	if err != nil {
		return entities.PaymentMilestone{}, conditionErr(err)
	}

	var it paymentMilestoneItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentMilestone{}, err
	}
	return fromPaymentMilestoneItem(it), nil
}

const markPaidCondition = "attribute_exists(#id) AND #amount = :amount AND #status IN (:pending, :due)"

const notPaidCondition = "attribute_not_exists(#id) OR #status <> :paid"

func notPaidNames() map[string]string {
	return map[string]string{"#id": "id", "#status": "status"}
}

func notPaidValues() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		":paid": &types.AttributeValueMemberS{Value: string(entities.MilestoneStatusPaid)},
	}
}

func toPaymentMilestoneItem(m entities.PaymentMilestone) paymentMilestoneItem {
	return paymentMilestoneItem{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		Sequence:    m.Sequence,
		Kind:        string(m.Kind),
		Description: m.Description,
		Percentage:  m.Percentage,
		Amount:      m.Amount,
		DueAnchor:   string(m.DueAnchor),
		OffsetDays:  m.OffsetDays,
		DueDate:     formatTime(m.DueDate),
		Status:      string(m.Status),
		PaidAt:      formatTimePtr(m.PaidAt),
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func fromPaymentMilestoneItem(it paymentMilestoneItem) entities.PaymentMilestone {
	return entities.PaymentMilestone{
		ID:          it.ID,
		InvoiceID:   it.InvoiceID,
		Sequence:    it.Sequence,
		Kind:        entities.MilestoneKind(it.Kind),
		Description: it.Description,
		Percentage:  it.Percentage,
		Amount:      it.Amount,
		DueAnchor:   entities.DueAnchor(it.DueAnchor),
		OffsetDays:  it.OffsetDays,
		DueDate:     parseTime(it.DueDate),
		Status:      entities.MilestoneStatus(it.Status),
		PaidAt:      parseTimePtr(it.PaidAt),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
