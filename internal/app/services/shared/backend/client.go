package backend

import (
	"bytes"
	"context"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type bearerTokenKey struct{}

// WithBearerToken makes every backend call made with the returned context
// carry the given access token.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey{}, token)
}

func BearerToken(ctx context.Context) string {
	token, _ := ctx.Value(bearerTokenKey{}).(string)
	return token
}

// Client is the single HTTP client shared by every resource client. It
// attaches the bearer token, encodes bodies and maps failures into
// exceptions.CustomError.
type Client struct {
	BaseUrl    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewClient(baseUrl string, timeout time.Duration, logger *zap.Logger) *Client {
	if !strings.HasSuffix(baseUrl, "/") {
		baseUrl += "/"
	}
	return &Client{
		BaseUrl:    baseUrl,
		Timeout:    timeout,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

type Request struct {
	Method    string
	Endpoint  string
	Query     url.Values
	Body      interface{}
	Multipart *MultipartFile
	Resource  string
}

type MultipartFile struct {
	Fields      map[string]string
	FieldName   string
	FileName    string
	ContentType string
	Content     []byte
}

// Do sends the request and returns the raw body of a 2xx response.
func (c *Client) Do(ctx context.Context, request *Request) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := c.BaseUrl + strings.TrimPrefix(request.Endpoint, "/")
	if len(request.Query) > 0 {
		endpoint += "?" + request.Query.Encode()
	}

	body, contentType, err := encodeBody(request)
	if err != nil {
		c.Log.Error("backendClient.Do error encoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, request.Resource),
			zap.Error(err),
		)
		return nil, err
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, endpoint, body)
	if err != nil {
		c.Log.Error("backendClient.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBackendURLKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	if token := BearerToken(ctx); token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("backendClient.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, request.Method),
			zap.String(constvars.LoggingBackendURLKey, endpoint),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err, request.Resource)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("backendClient.Do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBackendURLKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadResponse(err, request.Resource)
	}

	c.Log.Debug("backendClient.Do completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, request.Method),
		zap.String(constvars.LoggingBackendURLKey, endpoint),
		zap.Int(constvars.LoggingBackendStatusKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := ErrorMessage(respBody)
		c.Log.Warn("backendClient.Do backend returned an error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBackendURLKey, endpoint),
			zap.Int(constvars.LoggingBackendStatusKey, resp.StatusCode),
			zap.String("backend_message", message),
		)
		return nil, exceptions.ErrBackendResponse(fmt.Errorf("%s", message), resp.StatusCode, request.Resource, message)
	}

	return respBody, nil
}

// DoJSON sends the request and decodes the response into out. Empty bodies
// are accepted and leave out untouched.
func (c *Client) DoJSON(ctx context.Context, request *Request, out interface{}) error {
	body, err := c.Do(ctx, request)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return exceptions.ErrDecodeResponse(err, request.Resource)
	}
	return nil
}

func encodeBody(request *Request) (io.Reader, string, error) {
	if request.Multipart != nil {
		return encodeMultipart(request.Multipart)
	}
	if request.Body == nil {
		return nil, "", nil
	}
	payload, err := json.Marshal(request.Body)
	if err != nil {
		return nil, "", exceptions.ErrCannotMarshalJSON(err)
	}
	return bytes.NewReader(payload), constvars.MIMEApplicationJSON, nil
}

func encodeMultipart(file *MultipartFile) (io.Reader, string, error) {
	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)

	for key, value := range file.Fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", exceptions.ErrCreateHTTPRequest(err)
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set(constvars.HeaderContentDisposition, fmt.Sprintf(`form-data; name=%q; filename=%q`, file.FieldName, file.FileName))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set(constvars.HeaderContentType, contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", exceptions.ErrCreateHTTPRequest(err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return nil, "", exceptions.ErrCreateHTTPRequest(err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", exceptions.ErrCreateHTTPRequest(err)
	}

	return buf, writer.FormDataContentType(), nil
}
