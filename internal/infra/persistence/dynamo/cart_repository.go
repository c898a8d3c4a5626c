package dynamo

import (
	"context"
	"strconv"

	"streesilk/config"
	"streesilk/internal/domain/entity"
	"streesilk/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// cartRepository implements repository.CartRepository. Lines are keyed by
// the (ownerId, productId) compound key.
type cartRepository struct {
	client *dynamodb.Client
	table  string
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(client *dynamodb.Client, cfg *config.Config) repository.CartRepository {
	return &cartRepository{
		client: client,
		table:  cfg.AWS.Tables.Cart,
	}
}

func cartKey(ownerID, productID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"ownerId":   &types.AttributeValueMemberS{Value: ownerID},
		"productId": &types.AttributeValueMemberS{Value: productID},
	}
}

// FindByOwner retrieves every line of one owner's cart.
func (repo *cartRepository) FindByOwner(ctx context.Context, ownerID string) (entity.CartLines, error) {
	out, err := repo.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(repo.table),
		KeyConditionExpression: aws.String("ownerId = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query cart")
	}

	var lines entity.CartLines
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &lines); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal cart lines")
	}

	return lines, nil
}

// AddQuantity upserts a line in one atomic UpdateItem: ADD increments the
// quantity whether or not the line exists, and if_not_exists keeps the
// display snapshot and createdAt from the first add. Concurrent adds for the
// same key therefore both land, unlike a read-modify-write.
func (repo *cartRepository) AddQuantity(ctx context.Context, line *entity.CartLine) error {
	values := map[string]types.AttributeValue{
		":q":        &types.AttributeValueMemberN{Value: strconv.Itoa(line.Quantity)},
		":id":       &types.AttributeValueMemberS{Value: line.ProductID},
		":name":     &types.AttributeValueMemberS{Value: line.Name},
		":price":    &types.AttributeValueMemberN{Value: strconv.FormatInt(line.Price, 10)},
		":original": &types.AttributeValueMemberN{Value: strconv.FormatInt(line.OriginalPrice, 10)},
		":image":    &types.AttributeValueMemberS{Value: line.Image},
		":category": &types.AttributeValueMemberS{Value: line.Category},
		":size":     &types.AttributeValueMemberS{Value: line.Size},
		":color":    &types.AttributeValueMemberS{Value: line.Color},
		":now":      &types.AttributeValueMemberN{Value: strconv.FormatInt(line.UpdatedAt, 10)},
	}

	// name and size are DynamoDB reserved words.
	names := map[string]string{
		"#name": "name",
		"#size": "size",
	}

	update := "SET id = if_not_exists(id, :id), " +
		"#name = if_not_exists(#name, :name), " +
		"price = if_not_exists(price, :price), " +
		"originalPrice = if_not_exists(originalPrice, :original), " +
		"image = if_not_exists(image, :image), " +
		"category = if_not_exists(category, :category), " +
		"#size = if_not_exists(#size, :size), " +
		"color = if_not_exists(color, :color), " +
		"createdAt = if_not_exists(createdAt, :now), " +
		"updatedAt = :now " +
		"ADD quantity :q"

	if _, err := repo.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(repo.table),
		Key:                       cartKey(line.OwnerID, line.ProductID),
		UpdateExpression:          aws.String(update),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}); err != nil {
		return errors.Wrap(err, "failed to add cart quantity")
	}

	return nil
}

// SetQuantity overwrites a line's quantity with a write conditioned on the
// line existing, so updating a vanished line reports ErrLineNotFound instead
// of silently creating a bare record.
func (repo *cartRepository) SetQuantity(ctx context.Context, ownerID, productID string, quantity int, updatedAt int64) error {
	_, err := repo.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(repo.table),
		Key:                 cartKey(ownerID, productID),
		UpdateExpression:    aws.String("SET quantity = :q, updatedAt = :u"),
		ConditionExpression: aws.String("attribute_exists(ownerId)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberN{Value: strconv.Itoa(quantity)},
			":u": &types.AttributeValueMemberN{Value: strconv.FormatInt(updatedAt, 10)},
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return repository.ErrLineNotFound
		}

		return errors.Wrap(err, "failed to set cart quantity")
	}

	return nil
}

// Delete removes a line unconditionally; absent keys are a no-op.
func (repo *cartRepository) Delete(ctx context.Context, ownerID, productID string) error {
	if _, err := repo.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(repo.table),
		Key:       cartKey(ownerID, productID),
	}); err != nil {
		return errors.Wrap(err, "failed to delete cart line")
	}

	return nil
}
