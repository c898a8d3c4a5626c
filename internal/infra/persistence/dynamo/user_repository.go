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

// userRepository implements repository.UserRepository. Profiles are keyed by
// the identity provider's subject id.
type userRepository struct {
	client *dynamodb.Client
	table  string
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *dynamodb.Client, cfg *config.Config) repository.UserRepository {
	return &userRepository{
		client: client,
		table:  cfg.AWS.Tables.Users,
	}
}

// FindByOwnerID retrieves a single profile by subject id.
func (repo *userRepository) FindByOwnerID(ctx context.Context, ownerID string) (*entity.User, error) {
	out, err := repo.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(repo.table),
		Key: map[string]types.AttributeValue{
			"ownerId": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}
	if out.Item == nil {
		return nil, repository.ErrUserNotFound
	}

	user := new(entity.User)
	if err := attributevalue.UnmarshalMap(out.Item, user); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal user")
	}

	return user, nil
}

// Put upserts a profile record.
func (repo *userRepository) Put(ctx context.Context, user *entity.User) error {
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return errors.Wrap(err, "failed to marshal user")
	}

	if _, err := repo.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(repo.table),
		Item:      item,
	}); err != nil {
		return errors.Wrap(err, "failed to put user")
	}

	return nil
}
