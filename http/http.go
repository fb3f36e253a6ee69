// Package http provides the HTTP-facing surface of the verification SDK:
// a gin handler exposing the verification pipeline and middleware that
// authenticates requests with a personal-message signature.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"

	personalsign "github.com/blip-labs/personalsign-go"
)

// Machine-readable error codes returned in 4xx responses
const (
	ErrCodeInvalidRequest         = "invalid_request"
	ErrCodeInvalidSignatureLength = "invalid_signature_length"
	ErrCodeInvalidSignatureFormat = "invalid_signature_format"
	ErrCodeInvalidSignature       = "invalid_signature"
)

// verifyRequestSchema constrains the POST /verify body. Signature and address
// lengths are checked here only loosely; the pipeline performs the
// authoritative validation.
const verifyRequestSchema = `{
	"type": "object",
	"required": ["message", "signature", "address"],
	"properties": {
		"message":   { "type": "string" },
		"signature": { "type": "string", "pattern": "^(0x|0X)?[0-9a-fA-F]+$" },
		"address":   { "type": "string", "pattern": "^(0x|0X)?[0-9a-fA-F]{40}$" }
	},
	"additionalProperties": false
}`

var verifySchema = gojsonschema.NewStringLoader(verifyRequestSchema)

// VerifyRequest is the POST /verify body
type VerifyRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Address   string `json:"address"`
}

// VerifyResponse is the POST /verify success response
type VerifyResponse struct {
	Valid   bool   `json:"valid"`
	Address string `json:"address"`
}

// ErrorResponse is returned with a 4xx status when the input is malformed.
// A well-formed signature that recovers to a different address is NOT an
// error; it yields a 200 with valid=false.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// NewVerifyHandler returns a gin handler for POST /verify.
//
// The body is validated against a JSON schema before it reaches the
// pipeline, so schema violations and malformed signatures both surface as
// 400s with a machine-readable code rather than 500s.
func NewVerifyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body", Code: ErrCodeInvalidRequest})
			return
		}

		result, err := gojsonschema.Validate(verifySchema, gojsonschema.NewBytesLoader(body))
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body is not valid JSON", Code: ErrCodeInvalidRequest})
			return
		}
		if !result.Valid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: result.Errors()[0].String(), Code: ErrCodeInvalidRequest})
			return
		}

		var req VerifyRequest
		if err := json.Unmarshal(body, &req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body is not valid JSON", Code: ErrCodeInvalidRequest})
			return
		}

		valid, err := personalsign.Verify([]byte(req.Message), req.Signature, req.Address)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: errorCode(err)})
			return
		}

		c.JSON(http.StatusOK, VerifyResponse{
			Valid:   valid,
			Address: personalsign.NormalizeAddress(req.Address),
		})
	}
}

// errorCode maps pipeline error kinds to wire codes
func errorCode(err error) string {
	switch {
	case errors.Is(err, personalsign.ErrInvalidSignatureLength):
		return ErrCodeInvalidSignatureLength
	case errors.Is(err, personalsign.ErrInvalidSignatureFormat):
		return ErrCodeInvalidSignatureFormat
	case errors.Is(err, personalsign.ErrInvalidSignature):
		return ErrCodeInvalidSignature
	default:
		return ErrCodeInvalidRequest
	}
}
