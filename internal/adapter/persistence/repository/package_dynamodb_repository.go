package repository

import (
	"context"
	"errors"
	"time"

	"permitpro/internal/domain/entities"
	"permitpro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPackagesTableName = "packages"
	packagesOwnerIDIndex     = "owner_id-index"
)

type packageItem struct {
	ID              string `dynamodbav:"id"`
	CustomerName    string `dynamodbav:"customer_name"`
	PropertyAddress string `dynamodbav:"property_address"`
	County          string `dynamodbav:"county"`
	Status          string `dynamodbav:"status"`
	OwnerID         string `dynamodbav:"owner_id"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// PackageDynamoRepository persists Package entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//
// Status changes and updated_at refreshes are conditional on the previously
// read updated_at so concurrent writers on the same package serialize.

type PackageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPackageRepository = (*PackageDynamoRepository)(nil)

func NewPackageDynamoRepository(ddb *dynamodb.Client) *PackageDynamoRepository {
	return &PackageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PACKAGES_TABLE", defaultPackagesTableName),
	}
}

func (r *PackageDynamoRepository) Create(ctx context.Context, p entities.Package) (entities.Package, error) {
	it := toPackageItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Package{}, err
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
		return entities.Package{}, err
	}
	return p, nil
}

func (r *PackageDynamoRepository) GetByID(ctx context.Context, id string) (entities.Package, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Package{}, err
	}
	if len(out.Item) == 0 {
		return entities.Package{}, nil
	}

	var it packageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Package{}, err
	}
	return fromPackageItem(it), nil
}

func (r *PackageDynamoRepository) List(ctx context.Context) ([]entities.Package, error) {
	var (
		pkgs     []entities.Package
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it packageItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			pkgs = append(pkgs, fromPackageItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return pkgs, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *PackageDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Package, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(packagesOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	pkgs := make([]entities.Package, 0, len(out.Items))
	for _, raw := range out.Items {
		var it packageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		pkgs = append(pkgs, fromPackageItem(it))
	}
	return pkgs, nil
}

func (r *PackageDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PackageStatus, expectedUpdatedAt, updatedAt time.Time) (entities.Package, error) {
	return r.update(ctx, id, expectedUpdatedAt, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *PackageDynamoRepository) TouchUpdatedAt(ctx context.Context, id string, expectedUpdatedAt, updatedAt time.Time) (entities.Package, error) {
	return r.update(ctx, id, expectedUpdatedAt, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *PackageDynamoRepository) update(
	ctx context.Context,
	id string,
	expectedUpdatedAt time.Time,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Package, error) {
	updateExpr, values, names := build()
	values[":expected_updated_at"] = &types.AttributeValueMemberS{Value: formatTime(expectedUpdatedAt)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #updated_at = :expected_updated_at"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Package{}, interfaces.ErrConflict
		}
		return entities.Package{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Package{}, nil
	}
	var it packageItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Package{}, err
	}
	return fromPackageItem(it), nil
}

func toPackageItem(p entities.Package) packageItem {
	return packageItem{
		ID:              p.ID,
		CustomerName:    p.CustomerName,
		PropertyAddress: p.PropertyAddress,
		County:          p.County,
		Status:          string(p.Status),
		OwnerID:         p.OwnerID,
		CreatedAt:       formatTime(p.CreatedAt),
		UpdatedAt:       formatTime(p.UpdatedAt),
	}
}

func fromPackageItem(it packageItem) entities.Package {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Package{
		ID:              it.ID,
		CustomerName:    it.CustomerName,
		PropertyAddress: it.PropertyAddress,
		County:          it.County,
		Status:          entities.PackageStatus(it.Status),
		OwnerID:         it.OwnerID,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
