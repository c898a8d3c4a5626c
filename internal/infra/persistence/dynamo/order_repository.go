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

// orderRepository implements repository.OrderRepository. Orders are keyed by
// identity alone and written exactly once.
type orderRepository struct {
	client *dynamodb.Client
	table  string
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(client *dynamodb.Client, cfg *config.Config) repository.OrderRepository {
	return &orderRepository{
		client: client,
		table:  cfg.AWS.Tables.Orders,
	}
}

// Put persists a new order record.
func (repo *orderRepository) Put(ctx context.Context, order *entity.Order) error {
	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		return errors.Wrap(err, "failed to marshal order")
	}

	if _, err := repo.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(repo.table),
		Item:      item,
	}); err != nil {
		return errors.Wrap(err, "failed to put order")
	}

	return nil
}

// FindByID retrieves a single order by its identity.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	out, err := repo.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(repo.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}
	if out.Item == nil {
		return nil, repository.ErrOrderNotFound
	}

	order := new(entity.Order)
	if err := attributevalue.UnmarshalMap(out.Item, order); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal order")
	}

	return order, nil
}
