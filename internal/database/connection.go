// internal/database/connection.go
package database

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/sirupsen/logrus"

	"github.com/tpcguild/pointsbot/internal/config"
)

// Initialize builds the DynamoDB client that backs every record table.
// When no static credentials are configured the default AWS credential
// chain (instance role, shared config) is used instead.
func Initialize(cfg config.AWSConfig) (*dynamodb.DynamoDB, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}

	if cfg.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	logrus.WithField("region", cfg.Region).Info("DynamoDB client initialized")
	return dynamodb.New(sess), nil
}
