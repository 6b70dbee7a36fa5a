package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-to-sky/onelife/internal/adapter/http/dto"
	"github.com/go-to-sky/onelife/internal/core/domain"
)

var ErrInvalidPayload = errors.New("invalid payload")

// ParseExhibitDate accepts a full RFC 3339 timestamp or a bare day;
// the day form means midnight UTC.
func ParseExhibitDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// BuildUpdateExhibitInput turns a PATCH body into the partial update
// the service expects. The raw message map distinguishes an omitted
// field from one sent as null: omitted fields stay untouched, null
// clears the optional ones.
func BuildUpdateExhibitInput(req dto.UpdateExhibitRequest, raw map[string]json.RawMessage) (domain.UpdateExhibitInput, error) {
	if len(raw) == 0 {
		return domain.UpdateExhibitInput{}, ErrInvalidPayload
	}

	var input domain.UpdateExhibitInput

	if hasJSONField(raw, "title") {
		if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
			return domain.UpdateExhibitInput{}, ErrInvalidPayload
		}
		input.Title = *req.Title
		input.TitleSet = true
	}

	if hasJSONField(raw, "content") {
		if req.Content == nil || strings.TrimSpace(*req.Content) == "" {
			return domain.UpdateExhibitInput{}, ErrInvalidPayload
		}
		input.Content = *req.Content
		input.ContentSet = true
	}

	if hasJSONField(raw, "description") {
		if !isJSONNull(raw["description"]) && req.Description == nil {
			return domain.UpdateExhibitInput{}, ErrInvalidPayload
		}
		input.Description = req.Description
		input.DescriptionSet = true
	}

	if hasJSONField(raw, "cover_image") {
		if !isJSONNull(raw["cover_image"]) && req.CoverImage == nil {
			return domain.UpdateExhibitInput{}, ErrInvalidPayload
		}
		input.CoverImage = req.CoverImage
		input.CoverImageSet = true
	}

	if hasJSONField(raw, "category_id") {
		if req.CategoryID == nil || *req.CategoryID == "" {
			return domain.UpdateExhibitInput{}, ErrInvalidPayload
		}
		input.CategoryRef = *req.CategoryID
		input.CategorySet = true
	}

	if hasJSONField(raw, "visibility") {
		if req.Visibility == nil {
			return domain.UpdateExhibitInput{}, ErrInvalidPayload
		}
		input.Visibility = domain.Visibility(*req.Visibility)
		input.VisibilitySet = true
	}

	if hasJSONField(raw, "emotion_score") {
		if !isJSONNull(raw["emotion_score"]) && req.EmotionScore == nil {
			return domain.UpdateExhibitInput{}, ErrInvalidPayload
		}
		input.EmotionScore = req.EmotionScore
		input.EmotionScoreSet = true
	}

	if hasJSONField(raw, "exhibit_date") {
		if !isJSONNull(raw["exhibit_date"]) {
			if req.ExhibitDate == nil {
				return domain.UpdateExhibitInput{}, ErrInvalidPayload
			}
			parsed, err := ParseExhibitDate(*req.ExhibitDate)
			if err != nil {
				return domain.UpdateExhibitInput{}, ErrInvalidPayload
			}
			input.ExhibitDate = &parsed
		}
		input.ExhibitDateSet = true
	}

	if hasJSONField(raw, "tags") {
		input.Tags = req.Tags
		input.TagsSet = true
	}

	if hasJSONField(raw, "special_tags") {
		input.Payload = domain.ExhibitPayload{SpecialTags: req.SpecialTags}
		input.PayloadSet = true
	}

	return input, nil
}

// BuildUpdateCategoryInput is the category counterpart; name is
// required when present, color and icon may be cleared with null.
func BuildUpdateCategoryInput(req dto.UpdateCategoryRequest, raw map[string]json.RawMessage) (domain.UpdateCategoryInput, error) {
	if len(raw) == 0 {
		return domain.UpdateCategoryInput{}, ErrInvalidPayload
	}

	var input domain.UpdateCategoryInput

	if hasJSONField(raw, "name") {
		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			return domain.UpdateCategoryInput{}, ErrInvalidPayload
		}
		input.Name = *req.Name
		input.NameSet = true
	}

	if hasJSONField(raw, "color") {
		if !isJSONNull(raw["color"]) && req.Color == nil {
			return domain.UpdateCategoryInput{}, ErrInvalidPayload
		}
		input.Color = req.Color
		input.ColorSet = true
	}

	if hasJSONField(raw, "icon") {
		if !isJSONNull(raw["icon"]) && req.Icon == nil {
			return domain.UpdateCategoryInput{}, ErrInvalidPayload
		}
		input.Icon = req.Icon
		input.IconSet = true
	}

	return input, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
