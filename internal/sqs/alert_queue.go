package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"sportapp/internal/domain"
	"sportapp/pkg/e"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
)

// API is the part of *sqs.Client used here.
type API interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// AlertQueue sends AdverseIncidentMessage bodies to an SQS queue.
type AlertQueue struct {
	api    API
	url    string
	fifo   bool
	logger *slog.Logger
}

// NewClient builds an SQS client from the default AWS credential chain.
func NewClient(ctx context.Context, region string) (*sqs.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, e.Wrap("sqs.NewClient", err)
	}
	return sqs.NewFromConfig(cfg), nil
}

// NewAlertQueue resolves the URL of queueName. A name ending in ".fifo" enables
// message groups per user.
func NewAlertQueue(ctx context.Context, api API, queueName string, logger *slog.Logger) (*AlertQueue, error) {
	const op = "sqs.NewAlertQueue"

	out, err := api.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(queueName)})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, errors.Join(e.ErrExternalService, err))
	}
	url := aws.ToString(out.QueueUrl)
	logger.Info("SQS alert queue resolved", slog.String("queue", queueName), slog.String("url", url))

	return &AlertQueue{
		api:    api,
		url:    url,
		fifo:   strings.HasSuffix(queueName, ".fifo"),
		logger: logger,
	}, nil
}

func (q *AlertQueue) Send(ctx context.Context, msg domain.AdverseIncidentMessage) error {
	const op = "sqs.AlertQueue.Send"

	body, err := json.Marshal(msg)
	if err != nil {
		return e.Wrap(op, err)
	}

	in := &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.url),
		MessageBody: aws.String(string(body)),
	}
	if q.fifo {
		in.MessageGroupId = aws.String(msg.UserID)
		in.MessageDeduplicationId = aws.String(uuid.NewString())
	}

	out, err := q.api.SendMessage(ctx, in)
	if err != nil {
		return fmt.Errorf("%s: %w", op, errors.Join(e.ErrExternalService, err))
	}
	q.logger.Debug("alert queued",
		slog.String("user_id", msg.UserID),
		slog.String("message_id", aws.ToString(out.MessageId)))
	return nil
}
