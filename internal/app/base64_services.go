package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
)

// base64Service implements the Base64Service interface
type base64Service struct {
	base64Processor crypto.Base64Processor
	logger          logger.Logger
}

// NewBase64Service creates a new instance of Base64Service
func NewBase64Service(base64Processor crypto.Base64Processor, logger logger.Logger) (Base64Service, error) {
	if base64Processor == nil {
		return nil, fmt.Errorf("base64 processor cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &base64Service{
		base64Processor: base64Processor,
		logger:          logger,
	}, nil
}

// EncodeBasic encodes UTF-8 text as standard Base64.
func (s *base64Service) EncodeBasic(text string) (*Result, error) {
	return s.Encode(Base64Request{Text: text})
}

// DecodeBasic decodes standard Base64 into UTF-8 text.
func (s *base64Service) DecodeBasic(text string) (*Result, error) {
	return s.Decode(Base64Request{Text: text})
}

// Encode parses req.Text in req.InputFormat and Base64 encodes the bytes. Text and base64 output
// return the Base64 text as is; hex and binary output render the characters of that text.
func (s *base64Service) Encode(req Base64Request) (*Result, error) {
	req = req.WithDefaults(true)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inputFormat, err := codec.ParseFormat(req.InputFormat)
	if err != nil {
		return nil, err
	}
	data, err := codec.Decode(req.Text, inputFormat)
	if err != nil {
		return nil, err
	}

	encoded, err := s.base64Processor.Encode(data, crypto.Base64Options{Variant: req.Variant, LineBreaks: req.LineBreaks})
	if err != nil {
		return nil, fmt.Errorf("failed to encode: %w", err)
	}

	output, err := renderEncoded(encoded, req.OutputFormat)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Base64 encoded ", len(data), " bytes")
	return &Result{Output: output, Info: base64Info(req)}, nil
}

// Decode parses req.Text as Base64 and renders the decoded bytes in req.OutputFormat.
// Text output requires the decoded bytes to be valid UTF-8.
func (s *base64Service) Decode(req Base64Request) (*Result, error) {
	req = req.WithDefaults(false)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	decoded, err := s.base64Processor.Decode(strings.TrimSpace(req.Text), crypto.Base64Options{Variant: req.Variant, LineBreaks: req.LineBreaks})
	if err != nil {
		return nil, fmt.Errorf("failed to decode: %w", err)
	}

	output, err := render(decoded, req.OutputFormat)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Base64 decoded ", len(decoded), " bytes")
	return &Result{Output: output, Info: base64Info(req)}, nil
}

func renderEncoded(encoded, name string) (string, error) {
	format, err := codec.ParseFormat(name)
	if err != nil {
		return "", err
	}
	switch format {
	case codec.FormatHex, codec.FormatBinary:
		return codec.Encode([]byte(encoded), format)
	default:
		return encoded, nil
	}
}

// render encodes b in the named format. Text output must be valid UTF-8.
func render(b []byte, name string) (string, error) {
	format, err := codec.ParseFormat(name)
	if err != nil {
		return "", err
	}
	if format == codec.FormatText && !utf8.Valid(b) {
		return "", &codec.FormatError{Format: codec.FormatText, Input: string(b), Reason: "decoded bytes are not valid UTF-8"}
	}
	return codec.Encode(b, format)
}

func base64Info(req Base64Request) string {
	lineBreaks := "None"
	if req.LineBreaks > 0 {
		lineBreaks = fmt.Sprintf("Every %d characters", req.LineBreaks)
	} else if req.Variant == crypto.Base64MIME {
		lineBreaks = fmt.Sprintf("Every %d characters", crypto.MIMELineLength)
	}
	return fmt.Sprintf("Encoding Type: %s\nLine Breaks: %s\nInput Format: %s\nOutput Format: %s",
		req.Variant, lineBreaks, req.InputFormat, req.OutputFormat)
}
