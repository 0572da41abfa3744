// internal/common/aws/sns.go
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// TopicPublisher publishes messages to an SNS topic. Satisfied by *SNSClient.
type TopicPublisher interface {
	Publish(ctx context.Context, topicARN, subject, message string) error
}

type SNSClient struct {
	client *sns.Client
}

func NewSNSClient(ctx context.Context, region string) (*SNSClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SNSClient{client: sns.NewFromConfig(cfg)}, nil
}

// Publish sends a message to the given topic. SNS caps subjects at 100
// characters, longer subjects are truncated rather than rejected here.
func (s *SNSClient) Publish(ctx context.Context, topicARN, subject, message string) error {
	if len(subject) > 100 {
		subject = subject[:100]
	}
	_, err := s.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	return err
}
