package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"permitpro/internal/domain/entities"
	"permitpro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDocumentsTableName = "documents"

type documentItem struct {
	PackageID  string `dynamodbav:"package_id"`
	SK         string `dynamodbav:"sk"`
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	URL        string `dynamodbav:"url"`
	Version    int    `dynamodbav:"version"`
	UploaderID string `dynamodbav:"uploader_id"`
	UploadedAt string `dynamodbav:"uploaded_at"`
}

// DocumentDynamoRepository persists Document entities in DynamoDB.
//
// Table requirements:
//   - PK: package_id (string)
//   - SK: sk (string) = name + "#" + zero-padded version
//
// The sort key encodes the (name, version) pair, so the conditional put on
// Create makes a duplicate pair structurally impossible: the second of two
// racing attaches fails with ErrConflict.

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func documentSortKey(name string, version int) string {
	return fmt.Sprintf("%s#%06d", name, version)
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	it := toDocumentItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Document{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "sk",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Document{}, interfaces.ErrConflict
		}
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) ListByPackageID(ctx context.Context, packageID string) ([]entities.Document, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("package_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: packageID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	docs := make([]entities.Document, 0, len(out.Items))
	for _, raw := range out.Items {
		var it documentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		docs = append(docs, fromDocumentItem(it))
	}
	return docs, nil
}

func toDocumentItem(d entities.Document) documentItem {
	return documentItem{
		PackageID:  d.PackageID,
		SK:         documentSortKey(d.Name, d.Version),
		ID:         d.ID,
		Name:       d.Name,
		URL:        d.URL,
		Version:    d.Version,
		UploaderID: d.UploaderID,
		UploadedAt: formatTime(d.UploadedAt),
	}
}

func fromDocumentItem(it documentItem) entities.Document {
	uploadedAt, _ := time.Parse(time.RFC3339Nano, it.UploadedAt)
	return entities.Document{
		ID:         it.ID,
		PackageID:  it.PackageID,
		Name:       it.Name,
		URL:        it.URL,
		Version:    it.Version,
		UploaderID: it.UploaderID,
		UploadedAt: uploadedAt,
	}
}
