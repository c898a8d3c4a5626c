package dynamo

import (
	"context"

	"streesilk/config"
	"streesilk/internal/domain/entity"
	"streesilk/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// productRepository implements repository.ProductRepository. Products are
// keyed by identity alone.
type productRepository struct {
	client *dynamodb.Client
	table  string
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *dynamodb.Client, cfg *config.Config) repository.ProductRepository {
	return &productRepository{
		client: client,
		table:  cfg.AWS.Tables.Products,
	}
}

// FindByID retrieves a single product by its identity.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	out, err := repo.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(repo.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}
	if out.Item == nil {
		return nil, repository.ErrProductNotFound
	}

	product := new(entity.Product)
	if err := attributevalue.UnmarshalMap(out.Item, product); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal product")
	}

	return product, nil
}

// FindAll performs a full table scan, following pagination until the whole
// product set has been read. The catalog query engine does the rest in
// memory.
func (repo *productRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	var startKey map[string]types.AttributeValue

	for {
		out, err := repo.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(repo.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan products")
		}

		var page []entity.Product
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal products")
		}
		products = append(products, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return products, nil
}

// Put upserts a product record.
func (repo *productRepository) Put(ctx context.Context, product *entity.Product) error {
	item, err := attributevalue.MarshalMap(product)
	if err != nil {
		return errors.Wrap(err, "failed to marshal product")
	}

	if _, err := repo.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(repo.table),
		Item:      item,
	}); err != nil {
		return errors.Wrap(err, "failed to put product")
	}

	return nil
}

// Delete removes a product. DynamoDB deletes are no-ops on absent keys.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(repo.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	}); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}
