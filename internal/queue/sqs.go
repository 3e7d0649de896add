package queue

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// Message is one leased queue message. The receipt handle is what the
// consumer needs to acknowledge it.
type Message struct {
	ID            string
	Body          string
	ReceiptHandle string
}

// Consumer receives and acknowledges messages from one queue.
type Consumer interface {
	Receive(ctx context.Context, max int32) ([]Message, error)
	Delete(ctx context.Context, receiptHandle string) error
}

// Publisher sends messages to one queue.
type Publisher interface {
	Publish(ctx context.Context, body string) error
}

// SQSQueue is an SQS-backed Consumer and Publisher sharing one client
// for the lifetime of the stage.
type SQSQueue struct {
	client *sqs.Client
	url    string
}

func NewSQSQueue(client *sqs.Client, url string) *SQSQueue {
	return &SQSQueue{
		client: client,
		url:    url,
	}
}

func (q *SQSQueue) Receive(ctx context.Context, max int32) ([]Message, error) {
	result, err := q.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.url),
		MaxNumberOfMessages: max,
		WaitTimeSeconds:     20,
	})
	if err != nil {
		return nil, fmt.Errorf("receive from %s: %w", q.url, err)
	}

	messages := make([]Message, 0, len(result.Messages))
	for _, m := range result.Messages {
		if m.Body == nil || m.ReceiptHandle == nil {
			continue
		}
		messages = append(messages, Message{
			ID:            aws.ToString(m.MessageId),
			Body:          *m.Body,
			ReceiptHandle: *m.ReceiptHandle,
		})
	}
	return messages, nil
}

func (q *SQSQueue) Delete(ctx context.Context, receiptHandle string) error {
	_, err := q.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.url),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		return fmt.Errorf("delete from %s: %w", q.url, err)
	}
	return nil
}

func (q *SQSQueue) Publish(ctx context.Context, body string) error {
	_, err := q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.url),
		MessageBody: aws.String(body),
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", q.url, err)
	}
	return nil
}
