package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"math"
	"net/http"
	"reflect"
	"strings"

	"payroll/models"

	"github.com/go-playground/validator/v10"
)

// errorDetail locates one problem in a rejected request body.
type errorDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})
	return v
}

// decode reads a JSON request body into target and checks required fields.
// On failure it writes the error response and returns false.
func (h *PayrollHandler) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil {
		writeDecodeError(w, err)
		return false
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeDetail(w, http.StatusUnprocessableEntity, []errorDetail{{Loc: []string{"body"}, Msg: "unexpected data after JSON body", Type: "value_error.jsondecode"}})
		return false
	}
	if err := h.validate.Struct(target); err != nil {
		writeValidationError(w, err)
		return false
	}
	return true
}

// checkComputed sets the derived field of record and rejects the request
// when the result cannot be represented, such as an overflow to ±Inf.
func (h *PayrollHandler) checkComputed(w http.ResponseWriter, record interface{ Recompute() }) bool {
	record.Recompute()
	if err := h.validate.Struct(record); err != nil {
		writeValidationError(w, err)
		return false
	}
	return true
}

// writeJSON encodes body before committing status, so an unencodable body
// becomes a 500 instead of a success with no content.
func writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		log.Printf("write json failed: status=%d body_type=%T err=%v", status, body, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"internal server error"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}

func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var (
		maxBytesErr *http.MaxBytesError
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		dateErr     *models.DateError
		detail      errorDetail
	)

	switch {
	case errors.As(err, &maxBytesErr):
		writeDetail(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	case errors.Is(err, io.EOF):
		detail = errorDetail{Loc: []string{"body"}, Msg: "field required", Type: "value_error.missing"}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		detail = errorDetail{Loc: []string{"body"}, Msg: "invalid JSON", Type: "value_error.jsondecode"}
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		detail = errorDetail{Loc: loc, Msg: "value is not a valid " + typeErr.Type.String(), Type: "type_error"}
	case errors.As(err, &dateErr):
		detail = errorDetail{Loc: []string{"body"}, Msg: dateErr.Error(), Type: "value_error.date"}
	default:
		detail = errorDetail{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}
	}
	writeDetail(w, http.StatusUnprocessableEntity, []errorDetail{detail})
}

func writeValidationError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		writeDetail(w, http.StatusUnprocessableEntity, []errorDetail{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}})
		return
	}

	details := make([]errorDetail, 0, len(validationErrs))
	for _, fe := range validationErrs {
		detail := errorDetail{
			Loc:  []string{"body", fe.Field()},
			Msg:  "field required",
			Type: "value_error.missing",
		}
		if fe.Tag() == "finite" {
			detail.Msg = "computed value is not a finite number"
			detail.Type = "value_error.number.not_finite"
		}
		details = append(details, detail)
	}
	writeDetail(w, http.StatusUnprocessableEntity, details)
}

func writeServerError(w http.ResponseWriter, err error) {
	log.Printf("request failed: %v", err)
	writeDetail(w, http.StatusInternalServerError, "internal server error")
}
