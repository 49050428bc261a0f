package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Lappanawat/flowmind-ranocturia/models"
	"github.com/Lappanawat/flowmind-ranocturia/utils"
)

// rowPattern matches one recognized diary line: a free-form activity
// label, an HH:MM time, intake and output in ml, and a Y/N leak mark.
// Anchored at both ends, so trailing garbage fails the whole line.
var rowPattern = regexp.MustCompile(`^(.*?)(\d{2}:\d{2})\s+(\d+)\s+(\d+)\s+([YN])$`)

type DiaryService struct {
	ocr OCREngine
}

func NewDiaryService(ocr OCREngine) *DiaryService {
	return &DiaryService{ocr: ocr}
}

// ParseText converts raw recognizer output into a diary. Every non-empty
// line yields exactly one row: matched lines become normalized events,
// unmatched lines become Unknown placeholders the user can fix in the
// table editor. Lines are never dropped, so the table stays reviewable
// row-for-row against the photo.
func (s *DiaryService) ParseText(text string) models.VoidingDiary {
	diary := models.VoidingDiary{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := rowPattern.FindStringSubmatch(line)
		if m == nil {
			diary = append(diary, models.VoidingEvent{
				Activity: models.ActivityUnknown,
				Leak:     models.LeakUnknown,
			})
			continue
		}

		intake, _ := strconv.Atoi(m[3])
		output, _ := strconv.Atoi(m[4])
		diary = append(diary, models.VoidingEvent{
			Activity: models.NormalizeActivity(strings.TrimSpace(m[1])),
			Time:     m[2],
			IntakeMl: intake,
			OutputMl: output,
			Leak:     m[5],
		})
	}
	return diary
}

// ExtractFromImage runs the decode → recognize → parse pipeline on a
// base64 image payload and returns the table together with the raw
// recognizer text for display.
func (s *DiaryService) ExtractFromImage(ctx context.Context, payload string) (models.VoidingDiary, string, error) {
	img, err := utils.DecodeImagePayload(payload)
	if err != nil {
		return nil, "", err
	}

	text, err := s.ocr.DetectText(ctx, img)
	if err != nil {
		return nil, "", fmt.Errorf("text recognition failed: %w", err)
	}
	return s.ParseText(text), text, nil
}
