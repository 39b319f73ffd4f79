package router

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/DjordjeVuckovic/rpn/internal/apperr"
	"github.com/DjordjeVuckovic/rpn/internal/dto"
	"github.com/DjordjeVuckovic/rpn/internal/evaluator"
	"github.com/DjordjeVuckovic/rpn/internal/postfix"
	"github.com/DjordjeVuckovic/rpn/internal/report"
	"github.com/DjordjeVuckovic/rpn/internal/storage"
	"github.com/DjordjeVuckovic/rpn/internal/suite"
	"github.com/DjordjeVuckovic/rpn/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxSuiteBytes = 1 << 20

type ConversionRouterOption func(*ConversionRouter)

// WithPrecedence serves conversions with a custom operator table.
func WithPrecedence(table postfix.PrecedenceTable) ConversionRouterOption {
	return func(r *ConversionRouter) {
		r.table = &table
	}
}

type ConversionRouter struct {
	e     *echo.Echo
	store storage.Store
	table *postfix.PrecedenceTable

	converter       *postfix.Converter
	singleConverter *postfix.Converter
	runner          *suite.Runner
}

func NewConversionRouter(e *echo.Echo, store storage.Store, opts ...ConversionRouterOption) *ConversionRouter {
	r := &ConversionRouter{
		e:     e,
		store: store,
	}
	for _, opt := range opts {
		opt(r)
	}

	var convOpts []postfix.Option
	var runnerOpts []suite.RunnerOption
	if r.table != nil {
		convOpts = append(convOpts, postfix.WithPrecedence(*r.table))
		runnerOpts = append(runnerOpts, suite.WithPrecedence(*r.table))
	}
	r.converter = postfix.NewConverter(convOpts...)
	r.singleConverter = postfix.NewConverter(append(convOpts, postfix.WithSingleRuneOperands())...)
	r.runner = suite.NewRunner(append(runnerOpts, suite.WithRecorder(store))...)

	return r
}

func (r *ConversionRouter) Bind() {
	v1 := r.e.Group("/api/v1")
	v1.POST("/convert", r.convertHandler)
	v1.POST("/evaluate", r.evaluateHandler)
	v1.GET("/conversions", r.listHandler)
	v1.GET("/conversions/:id", r.getHandler)
	v1.POST("/suites/run", r.runSuiteHandler)
}

// convertHandler godoc
// @Summary Convert an infix expression to postfix
// @Description Converts an infix arithmetic expression to Reverse Polish notation with the shunting-yard algorithm. Every attempt is stored in the conversion history.
// @Tags conversions
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Expression to convert"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/convert [post]
func (r *ConversionRouter) convertHandler(c echo.Context) error {
	var req dto.ConvertRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	conv := r.converter
	if req.SingleRune {
		conv = r.singleConverter
	}

	p, convErr := conv.Convert(req.Expression)
	id, err := r.store.Save(c.Request().Context(), postfix.Record(req.Expression, p, convErr))
	if err != nil {
		return fmt.Errorf("failed to save conversion: %w", err)
	}

	if convErr != nil {
		return c.JSON(http.StatusUnprocessableEntity, syntaxErrorResponse(convErr))
	}

	return c.JSON(http.StatusOK, dto.ConvertResponse{
		ID:      id,
		Infix:   req.Expression,
		Postfix: p.String(),
		Spaced:  p.Spaced(),
		Tokens:  p.Values(),
	})
}

// evaluateHandler godoc
// @Summary Evaluate an infix expression
// @Description Converts the expression to postfix and evaluates it. Operands made of digits are numbers, other operands are looked up in vars.
// @Tags conversions
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Expression and variable bindings"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/evaluate [post]
func (r *ConversionRouter) evaluateHandler(c echo.Context) error {
	var req dto.EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	p, err := r.converter.Convert(req.Expression)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, syntaxErrorResponse(err))
	}

	v, err := evaluator.Evaluate(p, req.Vars)
	if err != nil {
		resp := dto.ErrorResponse{Error: err.Error(), Kind: "evaluation"}
		var ee *evaluator.EvaluationError
		if errors.As(err, &ee) {
			pos := ee.Pos
			resp.Position = &pos
		}
		return c.JSON(http.StatusUnprocessableEntity, resp)
	}

	return c.JSON(http.StatusOK, dto.EvaluateResponse{
		Infix:   req.Expression,
		Postfix: p.Spaced(),
		Value:   v,
	})
}

// listHandler godoc
// @Summary List conversion history
// @Description Returns stored conversions, newest first
// @Tags conversions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.ConversionPage
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/conversions [get]
func (r *ConversionRouter) listHandler(c echo.Context) error {
	var page pagination.OffsetRequest
	err := echo.QueryParamsBinder(c).
		Int("page", &page.Page).
		Int("size", &page.Size).
		BindError()
	if err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	if err := page.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}

	res, err := r.store.List(c.Request().Context(), page)
	if err != nil {
		return fmt.Errorf("failed to list conversions: %w", err)
	}

	return c.JSON(http.StatusOK, dto.FromConversionPage(res))
}

// getHandler godoc
// @Summary Get a conversion
// @Tags conversions
// @Produce json
// @Param id path string true "Conversion ID" format(uuid)
// @Success 200 {object} dto.Conversion
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/conversions/{id} [get]
func (r *ConversionRouter) getHandler(c echo.Context) error {
	rawID := c.Param("id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		return apperr.NewValidationWrap("invalid conversion id", err)
	}

	conv, err := r.store.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NewNotFound("conversion", rawID, err)
		}
		return fmt.Errorf("failed to get conversion: %w", err)
	}

	return c.JSON(http.StatusOK, dto.FromConversion(*conv))
}

// runSuiteHandler godoc
// @Summary Run a conversion suite
// @Description Runs a YAML conversion suite and returns the report. The conversions are stored in the history.
// @Tags suites
// @Accept application/x-yaml
// @Produce json
// @Produce plain
// @Param format query string false "Report format" Enums(json, table)
// @Success 200 {object} report.Report
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /api/v1/suites/run [post]
func (r *ConversionRouter) runSuiteHandler(c echo.Context) error {
	data, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, maxSuiteBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
				fmt.Sprintf("suite exceeds %d bytes", tooLarge.Limit))
		}
		return apperr.NewValidationWrap("failed to read suite", err)
	}

	s, err := suite.Parse(data)
	if err != nil {
		return apperr.NewValidationWrap("invalid suite", err)
	}

	rep, err := r.runner.Run(c.Request().Context(), s)
	if err != nil {
		return fmt.Errorf("failed to run suite %q: %w", s.Name, err)
	}

	if c.QueryParam("format") == "table" {
		var buf bytes.Buffer
		if err := report.WriteTable(rep, &buf); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		return c.String(http.StatusOK, buf.String())
	}

	return c.JSON(http.StatusOK, rep)
}

func syntaxErrorResponse(err error) dto.ErrorResponse {
	resp := dto.ErrorResponse{
		Error: err.Error(),
		Kind:  string(postfix.KindOf(err)),
	}
	var se *postfix.SyntaxError
	if errors.As(err, &se) {
		pos := se.Pos
		resp.Position = &pos
	}
	return resp
}
