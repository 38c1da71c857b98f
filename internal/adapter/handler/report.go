package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-reporter/errors"
	"github.com/johnquangdev/meeting-reporter/internal/adapter/dto"
	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
	"github.com/johnquangdev/meeting-reporter/internal/infrastructure/ingest"
	"github.com/johnquangdev/meeting-reporter/internal/usecase/classifier"
	"github.com/johnquangdev/meeting-reporter/internal/usecase/pipeline"
)

// Report handles transcript to report requests
type Report struct {
	svc        pipeline.Service
	classifier classifier.Classifier
	maxBytes   int64
	logger     *zap.Logger
}

// NewReportHandler creates a report handler. A nil classifier disables the meeting-content gate.
func NewReportHandler(svc pipeline.Service, cls classifier.Classifier, maxBytes int64, logger *zap.Logger) *Report {
	return &Report{
		svc:        svc,
		classifier: cls,
		maxBytes:   maxBytes,
		logger:     logger,
	}
}

// CreateReport handles POST /v1/reports
// @Summary      Generate a meeting report
// @Description  Runs the report pipeline over a pasted transcript. Send Accept: text/markdown to receive the raw Markdown.
// @Tags         Reports
// @Accept       json
// @Produce      json,text/markdown
// @Param        request  body      dto.GenerateReportRequest  true  "Meeting transcript"
// @Success      200      {object}  common.SuccessResponse{data=dto.ReportResponse}
// @Failure      400      {object}  common.ErrorResponse  "Missing or empty transcript"
// @Failure      422      {object}  common.ErrorResponse  "Text is not meeting-related"
// @Failure      500      {object}  common.ErrorResponse  "Report generation failed"
// @Router       /v1/reports [post]
func (h *Report) CreateReport(c echo.Context) error {
	var req dto.GenerateReportRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrTranscriptEmpty(pipeline.MsgEmptyInput).WithDetail("validation", err.Error()))
	}

	return h.generate(c, req.Transcript, "")
}

// UploadReport handles POST /v1/reports/upload
// @Summary      Generate a meeting report from a file
// @Description  Extracts text from an uploaded .txt or .pdf transcript and runs the report pipeline.
// @Tags         Reports
// @Accept       multipart/form-data
// @Produce      json,text/markdown
// @Param        file  formData  file  true  "Transcript file (.txt or .pdf)"
// @Success      200   {object}  common.SuccessResponse{data=dto.ReportResponse}
// @Failure      400   {object}  common.ErrorResponse  "Missing file or empty transcript"
// @Failure      413   {object}  common.ErrorResponse  "File too large"
// @Failure      415   {object}  common.ErrorResponse  "Unsupported file type"
// @Failure      422   {object}  common.ErrorResponse  "Unreadable file or off-topic text"
// @Failure      500   {object}  common.ErrorResponse  "Report generation failed"
// @Router       /v1/reports/upload [post]
func (h *Report) UploadReport(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("file is required"))
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return HandleError(h.logger, c, errors.ErrTranscriptTooLarge(h.maxBytes))
	}
	if !ingest.IsSupported(fh.Filename) {
		return HandleError(h.logger, c, errors.ErrUnsupportedFileType(fh.Filename))
	}

	f, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer f.Close()

	text, err := ingest.ExtractText(fh.Filename, f, fh.Size)
	if err != nil {
		if stdErrors.Is(err, ingest.ErrUnsupportedFile) {
			return HandleError(h.logger, c, errors.ErrUnsupportedFileType(fh.Filename))
		}
		return HandleError(h.logger, c, errors.ErrFileExtractionFailed(fh.Filename, err))
	}

	return h.generate(c, text, fh.Filename)
}

func (h *Report) generate(c echo.Context, transcript, source string) error {
	ctx := c.Request().Context()
	markdown := wantsMarkdown(c)

	if entities.IsBlank(transcript) {
		return h.fail(c, markdown, errors.ErrTranscriptEmpty(pipeline.MsgEmptyInput), pipeline.MsgEmptyInput)
	}

	if h.classifier != nil && !h.classifier.IsMeetingContent(ctx, transcript) {
		return h.fail(c, markdown, errors.ErrTranscriptOffTopic(classifier.RejectionMessage), classifier.RejectionMessage)
	}

	state, err := h.svc.Generate(ctx, transcript)
	if err != nil {
		message := pipeline.RenderError(err)
		if stdErrors.Is(err, entities.ErrEmptyInput) {
			return h.fail(c, markdown, errors.ErrTranscriptEmpty(message), message)
		}
		appErr := errors.ErrReportGenerationFailed(err)
		appErr.Message = message
		return h.fail(c, markdown, appErr, message)
	}

	if markdown {
		return respondMarkdown(c, http.StatusOK, *state.FinalReport)
	}

	resp := dto.NewReportResponse(state)
	resp.Source = source
	return HandleSuccess(h.logger, c, resp)
}

// fail renders appErr as JSON, or message as Markdown when the client asked for it
func (h *Report) fail(c echo.Context, markdown bool, appErr errors.AppError, message string) error {
	if !markdown {
		return HandleError(h.logger, c, appErr)
	}
	if h.logger != nil {
		h.logger.Warn("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Stringer("app_code", appErr.Code),
			zap.Error(appErr),
		)
	}
	return respondMarkdown(c, appErr.HTTPCode, message)
}
