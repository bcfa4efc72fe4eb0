// Package vision provides a handwriting OCR client backed by the Google
// Cloud Vision API.
package vision

import (
	"context"
	"fmt"
	"strings"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/domain/entity"
	"github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/usecase"
)

// methodName identifies the OCR engine in recognition results.
const methodName = "Google Cloud Vision API"

// overallConfidence is pinned because Vision reports confidence per block,
// not per document.
const overallConfidence = 0.9

// VisionTextRecognizer extracts handwritten text using document text
// detection.
type VisionTextRecognizer struct {
	client *gvision.ImageAnnotatorClient
}

// Compile-time check that VisionTextRecognizer implements TextRecognizer.
var _ usecase.TextRecognizer = (*VisionTextRecognizer)(nil)

// NewVisionTextRecognizer creates a Vision client using application default
// credentials.
func NewVisionTextRecognizer(ctx context.Context) (*VisionTextRecognizer, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionTextRecognizer{client: client}, nil
}

// Close releases the Vision API client.
func (v *VisionTextRecognizer) Close() error {
	return v.client.Close()
}

// RecognizeText runs DOCUMENT_TEXT_DETECTION over the image bytes. An image
// with no detectable text yields an empty result, not an error.
func (v *VisionTextRecognizer) RecognizeText(ctx context.Context, imageData []byte) (*entity.RecognitionResult, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return &entity.RecognitionResult{Method: methodName}, nil
	}
	if resp.Responses[0].Error != nil {
		return nil, fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	annotation := resp.Responses[0].FullTextAnnotation
	if annotation == nil {
		return &entity.RecognitionResult{Method: methodName}, nil
	}

	text := strings.TrimSpace(annotation.Text)

	var words []entity.Word
	for _, page := range annotation.Pages {
		for _, block := range page.Blocks {
			for _, paragraph := range block.Paragraphs {
				for _, word := range paragraph.Words {
					var sb strings.Builder
					for _, symbol := range word.Symbols {
						sb.WriteString(symbol.Text)
					}
					words = append(words, entity.Word{
						Text:       sb.String(),
						Confidence: block.Confidence,
					})
				}
			}
		}
	}

	result := &entity.RecognitionResult{
		Text:       text,
		Words:      words,
		Confidence: overallConfidence,
		Method:     methodName,
	}
	if text != "" {
		result.Lines = []entity.Line{{Line: text, Confidence: overallConfidence}}
	}

	return result, nil
}
