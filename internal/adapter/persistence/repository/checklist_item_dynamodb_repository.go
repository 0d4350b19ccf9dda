package repository

import (
	"context"
	"time"

	"permitpro/internal/domain/entities"
	"permitpro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultChecklistItemsTableName = "checklist_items"

type checklistItemItem struct {
	PackageID string `dynamodbav:"package_id"`
	ID        string `dynamodbav:"id"`
	Label     string `dynamodbav:"label"`
	Completed bool   `dynamodbav:"completed"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ChecklistItemDynamoRepository persists ChecklistItem entities in DynamoDB.
//
// Table requirements:
//   - PK: package_id (string)
//   - SK: id (string)

type ChecklistItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChecklistItemRepository = (*ChecklistItemDynamoRepository)(nil)

func NewChecklistItemDynamoRepository(ddb *dynamodb.Client) *ChecklistItemDynamoRepository {
	return &ChecklistItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKLIST_ITEMS_TABLE", defaultChecklistItemsTableName),
	}
}

func (r *ChecklistItemDynamoRepository) ListByPackageID(ctx context.Context, packageID string) ([]entities.ChecklistItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("package_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: packageID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ChecklistItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it checklistItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromChecklistItemItem(it))
	}
	return items, nil
}

func fromChecklistItemItem(it checklistItemItem) entities.ChecklistItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ChecklistItem{
		ID:        it.ID,
		PackageID: it.PackageID,
		Label:     it.Label,
		Completed: it.Completed,
		CreatedAt: createdAt,
	}
}
