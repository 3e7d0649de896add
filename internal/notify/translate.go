package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"
)

// AWSTranslator translates notification text with Amazon Translate.
type AWSTranslator struct {
	client *translate.Client
}

func NewAWSTranslator(client *translate.Client) *AWSTranslator {
	return &AWSTranslator{client: client}
}

func (t *AWSTranslator) Translate(ctx context.Context, text, targetCode string) (string, error) {
	result, err := t.client.TranslateText(ctx, &translate.TranslateTextInput{
		Text:               aws.String(text),
		SourceLanguageCode: aws.String("en"),
		TargetLanguageCode: aws.String(targetCode),
	})
	if err != nil {
		return "", fmt.Errorf("translate text to %s: %w", targetCode, err)
	}
	return aws.ToString(result.TranslatedText), nil
}
