package transport

import (
	"encoding/json"
	"net/http"

	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/utils/errors"
)

// Response is the uniform JSON envelope for every endpoint.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	if ce, ok := err.(errors.CustomError); ok {
		w.WriteHeader(ce.ErrorHTTPCode())
		_ = json.NewEncoder(w).Encode(Response{
			Code:    ce.ErrorCode(),
			Message: ce.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(Response{
		Code:    constant.ErrorTypeCode[constant.ErrInternal],
		Message: constant.ErrorTypeMessage[constant.ErrInternal],
	})
}
