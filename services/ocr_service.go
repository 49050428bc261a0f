package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lappanawat/flowmind-ranocturia/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	textypes "github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// OCREngine turns a photographed diary page into plain text, one
// recognized table row per output line.
type OCREngine interface {
	DetectText(ctx context.Context, image []byte) (string, error)
}

// NewOCREngine builds the engine named in the config. Textract handles a
// full diary page; Rekognition's text detection is capped at 100 words
// but is cheaper for small charts.
func NewOCREngine(cfg *config.Config) (OCREngine, error) {
	switch cfg.OCREngine {
	case "", "textract":
		return NewTextractService(cfg)
	case "rekognition":
		return NewRekognitionService(cfg)
	default:
		return nil, fmt.Errorf("unknown OCR engine %q", cfg.OCREngine)
	}
}

type TextractService struct {
	client *textract.Client
}

func NewTextractService(cfg *config.Config) (*TextractService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, err
	}
	return &TextractService{client: textract.NewFromConfig(awsCfg)}, nil
}

func (s *TextractService) DetectText(ctx context.Context, image []byte) (string, error) {
	out, err := s.client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &textypes.Document{Bytes: image},
	})
	if err != nil {
		return "", err
	}

	var lines []string
	for _, b := range out.Blocks {
		if b.BlockType == textypes.BlockTypeLine && b.Text != nil {
			lines = append(lines, *b.Text)
		}
	}
	return strings.Join(lines, "\n"), nil
}

type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService(cfg *config.Config) (*RekognitionService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(awsCfg)}, nil
}

func (s *RekognitionService) DetectText(ctx context.Context, image []byte) (string, error) {
	out, err := s.client.DetectText(ctx, &rekognition.DetectTextInput{
		Image: &rektypes.Image{Bytes: image},
		Filters: &rektypes.DetectTextFilters{
			WordFilter: &rektypes.DetectionFilter{MinConfidence: aws.Float32(50)},
		},
	})
	if err != nil {
		return "", err
	}

	var lines []string
	for _, td := range out.TextDetections {
		if td.Type == rektypes.TextTypesLine && td.DetectedText != nil {
			lines = append(lines, *td.DetectedText)
		}
	}
	return strings.Join(lines, "\n"), nil
}
