package writer

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/openny/stylemind/internal/llm"
	"github.com/openny/stylemind/internal/logging"
	"github.com/openny/stylemind/internal/prompts"
)

const promptFile = "writer.json"

// Request holds everything needed to write one post.
type Request struct {
	Topic            string `validate:"required"`
	ImageDescription string `validate:"required"`
	StyleDirective   string `validate:"required"`
}

// Writer drives the generation model with the embedded writer prompts.
type Writer struct {
	client   llm.Client
	validate *validator.Validate
	logger   logging.Logger
}

// New creates a Writer. The caller owns client and closes it.
func New(client llm.Client, logger logging.Logger) *Writer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Writer{client: client, validate: validator.New(), logger: logger}
}

// DescribeImage asks the model for a detailed Korean description of an image.
// An empty mimeType is sniffed from the image bytes.
func (w *Writer) DescribeImage(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", &GenerationError{Step: "describe-image", Message: "image is empty"}
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return "", &GenerationError{Step: "describe-image", Message: fmt.Sprintf("unsupported content type %q", mimeType)}
	}

	prompt, err := prompts.Get(promptFile, "describe-image")
	if err != nil {
		return "", &GenerationError{Step: "describe-image", Message: "prompt unavailable", Cause: err}
	}

	w.logger.Debug("describing image", logging.String("mime_type", mimeType), logging.Int("bytes", len(image)))
	text, err := w.client.DescribeImage(ctx, image, mimeType, prompt, llm.TierLite, llm.DefaultDescribeOptions())
	if err != nil {
		return "", &GenerationError{Step: "describe-image", Message: "model call failed", Cause: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &GenerationError{Step: "describe-image", Message: "model returned no text"}
	}
	return text, nil
}

// WritePost generates a markdown post about req.Topic in the style given by req.StyleDirective.
func (w *Writer) WritePost(ctx context.Context, req Request) (string, error) {
	if err := w.validate.Struct(req); err != nil {
		return "", &GenerationError{Step: "write-post", Message: "invalid request", Cause: err}
	}

	prompt, err := prompts.Render(promptFile, "write-post", map[string]string{
		"Topic":            req.Topic,
		"StyleDirective":   req.StyleDirective,
		"ImageDescription": req.ImageDescription,
	})
	if err != nil {
		return "", &GenerationError{Step: "write-post", Message: "prompt unavailable", Cause: err}
	}

	w.logger.Debug("writing post", logging.String("topic", req.Topic), logging.Int("prompt_runes", len([]rune(prompt))))
	text, err := w.client.GenerateContent(ctx, prompt, llm.TierStandard, llm.DefaultWritingOptions())
	if err != nil {
		return "", &GenerationError{Step: "write-post", Message: "model call failed", Cause: err}
	}

	post := llm.StripCodeFence(text)
	if post == "" {
		return "", &GenerationError{Step: "write-post", Message: "model returned no text"}
	}
	return post, nil
}
