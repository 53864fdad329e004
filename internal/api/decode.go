package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"arith-service/internal/types"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeOperands reads exactly one JSON object from the body and validates
// that both operands are present.
func (h *Handler) decodeOperands(w http.ResponseWriter, r *http.Request) (float64, float64, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	var members map[string]json.RawMessage
	if err := dec.Decode(&members); err != nil {
		return 0, 0, decodeError(err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if tooLarge(err) {
			return 0, 0, decodeError(err)
		}
		return 0, 0, badRequest("malformed JSON: unexpected data after the request object")
	}

	req, err := operands(members)
	if err != nil {
		return 0, 0, err
	}

	if err := h.validate.Struct(req); err != nil {
		return 0, 0, validationError(err)
	}

	return *req.A, *req.B, nil
}

// operands picks the operands out of the object by exact key. A null value
// counts as absent.
func operands(members map[string]json.RawMessage) (types.OperandsRequest, error) {
	var req types.OperandsRequest
	fields := []struct {
		key string
		dst **float64
	}{
		{key: "a", dst: &req.A},
		{key: "b", dst: &req.B},
	}

	for _, f := range fields {
		raw, ok := members[f.key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}

		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				return req, badRequest("field %q must be a number, got %s", f.key, typeErr.Value)
			}
			return req, errors.Wrapf(err, "decode field %q", f.key)
		}
		*f.dst = &v
	}
	return req, nil
}

func decodeError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.Is(err, io.EOF):
		return badRequest("request body is empty")
	case tooLarge(err):
		return errors.Mark(errors.Wrap(err, "request body too large"), ErrPayloadTooLarge)
	case errors.As(err, &syntaxErr):
		return badRequest("malformed JSON at offset %d: %s", syntaxErr.Offset, syntaxErr.Error())
	case errors.Is(err, io.ErrUnexpectedEOF):
		return badRequest("malformed JSON: unexpected end of body")
	case errors.As(err, &typeErr):
		return badRequest("request body must be a JSON object, got %s", typeErr.Value)
	default:
		return errors.Wrap(err, "decode request body")
	}
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validate request")
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			msgs = append(msgs, "missing required field \""+fe.Field()+"\"")
			continue
		}
		msgs = append(msgs, "invalid field \""+fe.Field()+"\"")
	}
	sort.Strings(msgs)
	return badRequest("%s", strings.Join(msgs, "; "))
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
