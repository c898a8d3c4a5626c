// Package dynamo contains the concrete implementation of the persistence
// layer on top of AWS DynamoDB. Every record kind lives in its own table;
// keys follow the schemas in the repository interfaces.
package dynamo

import (
	"context"

	"streesilk/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"
)

// New builds the shared DynamoDB client. Static credentials from the config
// take precedence; otherwise the default provider chain (environment,
// instance role) applies.
func New(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	if cfg.AWS == nil {
		return nil, errors.New("aws configuration is missing")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWS.Region),
	}
	if cfg.AWS.AccessKeyID != "" && cfg.AWS.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS configuration")
	}

	return dynamodb.NewFromConfig(awsCfg), nil
}
