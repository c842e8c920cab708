package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// UploadFieldName is the multipart form field that carries uploaded files.
const UploadFieldName = "file"

// Request describes one dispatch through a Transport.
type Request struct {
	Method string
	Path   string
	Query  url.Values

	// Body encodes the request payload. Nil sends no body.
	Body BodyEncoder

	// Accept overrides the Accept header. Empty means application/json.
	Accept string
}

// Response is a completed HTTP exchange with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport dispatches requests with the client's base URL and headers.
// Every completed exchange is returned as a Response, whatever its status;
// an error means no response was obtained.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// BodyEncoder turns a request payload into bytes and a content type.
type BodyEncoder interface {
	Encode() ([]byte, string, error)
}

// JSONBody encodes Value as JSON.
type JSONBody struct {
	Value interface{}
}

// Encode implements BodyEncoder.
func (b JSONBody) Encode() ([]byte, string, error) {
	data, err := json.Marshal(b.Value)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrEncodeRequest, err)
	}

	return data, "application/json", nil
}

// MultipartFile encodes a single file as multipart/form-data.
type MultipartFile struct {
	FieldName string
	FileName  string
	Data      []byte
}

// Encode implements BodyEncoder.
func (b MultipartFile) Encode() ([]byte, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	field := b.FieldName
	if field == "" {
		field = UploadFieldName
	}

	part, err := writer.CreateFormFile(field, b.FileName)
	if err != nil {
		return nil, "", fmt.Errorf("%w: creating form file: %w", ErrEncodeRequest, err)
	}

	_, err = part.Write(b.Data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: writing file to form: %w", ErrEncodeRequest, err)
	}

	err = writer.Close()
	if err != nil {
		return nil, "", fmt.Errorf("%w: closing multipart writer: %w", ErrEncodeRequest, err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

// Decoder turns a completed response into an envelope.
type Decoder[T any] func(resp *Response) (*Envelope[T], error)

// DecodeJSON parses 2xx bodies into T and everything else into an
// ErrorResult. An empty 2xx body yields the zero T.
func DecodeJSON[T any](resp *Response) (*Envelope[T], error) {
	if !IsSuccessStatus(resp.StatusCode) {
		return withHeader(NewEnvelope[T](resp.StatusCode, nil, ParseErrorResult(resp.StatusCode, resp.Body)), resp), nil
	}

	value := new(T)

	if len(bytes.TrimSpace(resp.Body)) > 0 {
		err := json.Unmarshal(resp.Body, value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
		}
	}

	return withHeader(NewEnvelope(resp.StatusCode, value, nil), resp), nil
}

// DecodeBlob passes the body through untouched. It never parses JSON, not
// even for error responses.
func DecodeBlob(resp *Response) (*Envelope[Blob], error) {
	if !IsSuccessStatus(resp.StatusCode) {
		return withHeader(NewEnvelope[Blob](resp.StatusCode, nil, rawErrorResult(resp.StatusCode, resp.Body)), resp), nil
	}

	blob := &Blob{
		ContentType: resp.Header.Get("Content-Type"),
		Data:        resp.Body,
	}

	return withHeader(NewEnvelope(resp.StatusCode, blob, nil), resp), nil
}

func withHeader[T any](env *Envelope[T], resp *Response) *Envelope[T] {
	env.Header = resp.Header

	return env
}

// Dispatch sends req through t and decodes the response with decode. It is
// the single pipeline behind Send, Upload, and Download.
func Dispatch[T any](ctx context.Context, t Transport, req *Request, decode Decoder[T]) (*Envelope[T], error) {
	resp, err := t.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	return decode(resp)
}

// Send makes a JSON call. A nil body sends no payload.
func Send[T any](ctx context.Context, t Transport, method, path string, query url.Values, body interface{}) (*Envelope[T], error) {
	req := &Request{
		Method: method,
		Path:   path,
		Query:  query,
	}

	if body != nil {
		req.Body = JSONBody{Value: body}
	}

	return Dispatch(ctx, t, req, DecodeJSON[T])
}

// Upload reads the local file at filename and posts it as multipart form data
// under the "file" field. The file is read before anything is sent, so a
// missing file never reaches the network.
func Upload[T any](ctx context.Context, t Transport, method, path string, query url.Values, filename string) (*Envelope[T], error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadUploadFile, err)
	}

	req := &Request{
		Method: method,
		Path:   path,
		Query:  query,
		Body: MultipartFile{
			FieldName: UploadFieldName,
			FileName:  filepath.Base(filename),
			Data:      data,
		},
	}

	return Dispatch(ctx, t, req, DecodeJSON[T])
}

// Download makes a call whose response body is returned as an opaque Blob.
func Download(ctx context.Context, t Transport, method, path string, query url.Values, body interface{}) (*Envelope[Blob], error) {
	req := &Request{
		Method: method,
		Path:   path,
		Query:  query,
		Accept: "*/*",
	}

	if body != nil {
		req.Body = JSONBody{Value: body}
	}

	return Dispatch(ctx, t, req, DecodeBlob)
}
