// file: internals/features/lessons/python_lessons/dto/python_lesson_dto.go
package dto

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	"btec_backend/internals/features/lessons/python_lessons/model"
	helper "btec_backend/internals/helpers"
)

const (
	MsgTitleRequired  = "عنوان الدرس مطلوب"
	MsgSlidesRequired = "لازم تضيف على الأقل شريحة واحدة"

	// SlideTitlePlaceholder replaces a blank slide title.
	SlideTitlePlaceholder = "شريحة"
)

// CreatePythonLessonRequest keeps slides untyped until NormalizeSlides has
// checked its shape; clients send loosely formed slide objects.
type CreatePythonLessonRequest struct {
	Title  string `json:"title" validate:"notblank"`
	Slides any    `json:"slides"`
}

func (r *CreatePythonLessonRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

// Validate checks the title, then the slides, and returns the cleaned slides.
func (r *CreatePythonLessonRequest) Validate() ([]model.Slide, error) {
	if err := helper.ValidateStruct(r, map[string]string{"Title": MsgTitleRequired}); err != nil {
		return nil, err
	}
	slides, ok := NormalizeSlides(r.Slides)
	if !ok {
		return nil, helper.BadRequest(MsgSlidesRequired)
	}
	return slides, nil
}

func (r CreatePythonLessonRequest) ToModel(id string, slides []model.Slide, createdAt int64) model.PythonLessonModel {
	return model.PythonLessonModel{
		ID:        id,
		Title:     r.Title,
		CreatedAt: createdAt,
		Slides:    datatypes.NewJSONType(slides),
	}
}

/* =========================================================
   Slide normalization
   ========================================================= */

// NormalizeSlides accepts a non-empty JSON array. Each element becomes a
// Slide: title trimmed (placeholder when blank), bullets trimmed with blanks
// and nulls dropped, code trimmed. Numbers and booleans in bullets are
// printed as text; object and array bullets are kept as their JSON encoding
// (e.g. {"a":1}), never as "null" or "[object Object]". Elements that are not
// objects become empty slides. ok is false for anything that is not a
// non-empty array.
func NormalizeSlides(raw any) (slides []model.Slide, ok bool) {
	items, isArr := raw.([]any)
	if !isArr || len(items) == 0 {
		return nil, false
	}

	slides = make([]model.Slide, 0, len(items))
	for _, it := range items {
		obj, _ := it.(map[string]any)
		slides = append(slides, normalizeSlide(obj))
	}
	return slides, true
}

func normalizeSlide(obj map[string]any) model.Slide {
	title := strings.TrimSpace(asString(obj["title"]))
	if title == "" {
		title = SlideTitlePlaceholder
	}

	bullets := []string{}
	if arr, ok := obj["bullets"].([]any); ok {
		for _, b := range arr {
			if b == nil {
				continue
			}
			if s := strings.TrimSpace(scalarString(b)); s != "" {
				bullets = append(bullets, s)
			}
		}
	}

	return model.Slide{
		Title:   title,
		Bullets: bullets,
		Code:    strings.TrimSpace(asString(obj["code"])),
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// scalarString renders one bullet entry as text.
func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool, float64, float32, int, int64, uint64:
		return fmt.Sprint(x)
	default:
		b, err := sonic.MarshalString(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return b
	}
}
