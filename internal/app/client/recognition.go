package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/exp/slog"

	"plantkeeper/internal/app/client/config"
)

// Значения по умолчанию, когда модель не вернула режим ухода
const (
	defaultWaterIntervalDays   = 7
	defaultSunlightHoursNeeded = 6.0
)

const identifyPrompt = `You are a botanist. Identify the plant in the photo.
Respond with a single JSON object and nothing else:
{"commonName": string, "scientificName": string, "info": string (2-3 sentences of care advice), "waterDays": integer (days between waterings), "sunlightHours": number (hours of light per day)}
If no plant is visible, set commonName to an empty string.`

const diagnosePrompt = `You are a plant pathologist. Inspect the plant in the photo for health problems.
Respond with a single JSON object and nothing else:
{"diseaseName": string (or "Healthy" if no problems), "affectedPlant": string (plant name if recognizable), "severity": string (none|mild|moderate|severe), "cause": string, "treatment": [string] (recommended actions), "prevention": [string] (how to avoid recurrence)}`

// Identification — результат распознавания растения по фотографии.
type Identification struct {
	CommonName          string  `json:"commonName"`
	ScientificName      string  `json:"scientificName"`
	Info                string  `json:"info"`
	WaterIntervalDays   int     `json:"waterDays"`
	SunlightHoursNeeded float64 `json:"sunlightHours"`
}

// Diagnosis — результат осмотра растения на предмет болезней.
type Diagnosis struct {
	DiseaseName   string   `json:"diseaseName"`
	AffectedPlant string   `json:"affectedPlant"`
	Severity      string   `json:"severity"`
	Cause         string   `json:"cause"`
	Treatment     []string `json:"treatment"`
	Prevention    []string `json:"prevention"`
}

// Recognizer ходит во внешнюю мультимодальную модель. Сетевые и парсинговые
// сбои транслируются в типизированные ошибки ядра, чтобы вызывающий мог
// отличить "нет сети" от "кончилась квота".
type Recognizer struct {
	client anthropic.Client
	model  anthropic.Model
	log    *slog.Logger
}

func NewRecognizer(cfg *config.Config, log *slog.Logger) *Recognizer {
	return &Recognizer{
		client: anthropic.NewClient(option.WithAPIKey(cfg.VisionAPIKey)),
		model:  anthropic.Model(cfg.VisionModel),
		log:    log.With("component", "recognition"),
	}
}

// Identify распознает растение на фотографии. Недостающие поля ухода
// заполняются значениями по умолчанию; пустое commonName означает, что
// модель не нашла растение, и считается ошибкой разбора.
func (r *Recognizer) Identify(ctx context.Context, image []byte) (*Identification, error) {
	text, err := r.ask(ctx, image, identifyPrompt)
	if err != nil {
		return nil, err
	}

	result, err := parseIdentification(text)
	if err != nil {
		r.log.Warn("Ответ модели не разобран", "error", err)
		return nil, err
	}
	return result, nil
}

// Diagnose осматривает растение на фотографии на предмет проблем.
func (r *Recognizer) Diagnose(ctx context.Context, image []byte) (*Diagnosis, error) {
	text, err := r.ask(ctx, image, diagnosePrompt)
	if err != nil {
		return nil, err
	}

	diagnosis, err := parseDiagnosis(text)
	if err != nil {
		r.log.Warn("Ответ модели не разобран", "error", err)
		return nil, err
	}
	return diagnosis, nil
}

func (r *Recognizer) ask(ctx context.Context, image []byte, prompt string) (string, error) {
	mediaType := http.DetectContentType(image)
	encoded := base64.StdEncoding.EncodeToString(image)

	message, err := r.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     r.model,
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(mediaType, encoded),
				anthropic.NewTextBlock(prompt),
			),
		},
	})
	if err != nil {
		return "", r.mapError(err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: модель вернула пустой ответ", ErrParse)
	}
	return text.String(), nil
}

// mapError переводит ошибки SDK в типизированные ошибки ядра.
func (r *Recognizer) mapError(err error) error {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	switch apiErr.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrAuth, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ErrQuota, err)
	default:
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
}

func parseIdentification(text string) (*Identification, error) {
	result := &Identification{
		WaterIntervalDays:   defaultWaterIntervalDays,
		SunlightHoursNeeded: defaultSunlightHoursNeeded,
	}
	if err := json.Unmarshal(extractJSON(text), result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if result.CommonName == "" {
		return nil, fmt.Errorf("%w: растение не распознано", ErrParse)
	}
	if result.WaterIntervalDays <= 0 {
		result.WaterIntervalDays = defaultWaterIntervalDays
	}
	if result.SunlightHoursNeeded <= 0 {
		result.SunlightHoursNeeded = defaultSunlightHoursNeeded
	}
	return result, nil
}

func parseDiagnosis(text string) (*Diagnosis, error) {
	var diagnosis Diagnosis
	if err := json.Unmarshal(extractJSON(text), &diagnosis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if diagnosis.DiseaseName == "" {
		return nil, fmt.Errorf("%w: в ответе нет вердикта", ErrParse)
	}
	return &diagnosis, nil
}

// extractJSON вырезает первый JSON-объект из ответа: модели любят
// оборачивать его в пояснения или code fence.
func extractJSON(text string) []byte {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return []byte(text)
	}
	return []byte(text[start : end+1])
}
