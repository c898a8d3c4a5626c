package dynamo

import (
	"context"
	"sort"

	"streesilk/config"
	"streesilk/internal/domain/entity"
	"streesilk/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// contactRepository implements repository.ContactRepository. Messages are
// keyed by identity alone.
type contactRepository struct {
	client *dynamodb.Client
	table  string
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(client *dynamodb.Client, cfg *config.Config) repository.ContactRepository {
	return &contactRepository{
		client: client,
		table:  cfg.AWS.Tables.Contacts,
	}
}

// Put persists a new contact message.
func (repo *contactRepository) Put(ctx context.Context, message *entity.ContactMessage) error {
	item, err := attributevalue.MarshalMap(message)
	if err != nil {
		return errors.Wrap(err, "failed to marshal contact message")
	}

	if _, err := repo.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(repo.table),
		Item:      item,
	}); err != nil {
		return errors.Wrap(err, "failed to put contact message")
	}

	return nil
}

// FindAll scans the whole table and returns messages newest first. The admin
// console is the only reader and the table stays small.
func (repo *contactRepository) FindAll(ctx context.Context) ([]entity.ContactMessage, error) {
	var messages []entity.ContactMessage
	var startKey map[string]types.AttributeValue

	for {
		out, err := repo.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(repo.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan contact messages")
		}

		var page []entity.ContactMessage
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal contact messages")
		}
		messages = append(messages, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt > messages[j].CreatedAt
	})

	return messages, nil
}
