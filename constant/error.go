package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrOutOfStock
	ErrTooManyFiles
	ErrFileTooLarge
	ErrUploadFailed
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "error internal",
	ErrNotFound:       "data not found",
	ErrInvalidRequest: "invalid request",
	ErrUnauthorize:    "unauthorize request",
	ErrOutOfStock:     "item is currently out of stock",
	ErrTooManyFiles:   "too many files attached",
	ErrFileTooLarge:   "file exceeds the maximum allowed size",
	ErrUploadFailed:   "image upload failed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:        http.StatusOK,
	ErrInternal:       http.StatusInternalServerError,
	ErrNotFound:       http.StatusNotFound,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrUnauthorize:    http.StatusUnauthorized,
	ErrOutOfStock:     http.StatusBadRequest,
	ErrTooManyFiles:   http.StatusBadRequest,
	ErrFileTooLarge:   http.StatusBadRequest,
	ErrUploadFailed:   http.StatusBadGateway,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:        "0000",
	ErrInternal:       "0001",
	ErrNotFound:       "0002",
	ErrInvalidRequest: "0003",
	ErrUnauthorize:    "0004",
	ErrOutOfStock:     "0005",
	ErrTooManyFiles:   "0006",
	ErrFileTooLarge:   "0007",
	ErrUploadFailed:   "0008",
}
