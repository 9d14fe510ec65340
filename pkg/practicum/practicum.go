package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

const (
	QueryKeyFromDate = "from_date"
	HeaderAuthPrefix = "OAuth "
)

// Response сырой ответ API, проверка структуры выполняется вызывающей стороной
type Response map[string]any

// TransportError запрос не дошёл до сервера или ответ не был получен
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("practicum request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError сервер ответил кодом, отличным от 200
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("practicum responded with status code %d", e.StatusCode)
}

// DecodeError тело ответа не является JSON-объектом
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("practicum response decoding failed: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type Client interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (Response, error)
}

type Option func(c *client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

type client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

func NewClient(endpoint, token string, opts ...Option) Client {
	c := &client{
		httpClient: &http.Client{},
		endpoint:   endpoint,
		token:      token,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *client) HomeworkStatuses(ctx context.Context, fromDate int64) (Response, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}

	query := u.Query()
	query.Set(QueryKeyFromDate, strconv.FormatInt(fromDate, 10))
	u.RawQuery = query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	request.Header.Set("Authorization", HeaderAuthPrefix+c.token)
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil, &ServerError{StatusCode: response.StatusCode}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("io.ReadAll (response.Body): %w", err)}
	}

	var decoded Response
	if err = json.Unmarshal(body, &decoded); err != nil {
		return nil, &DecodeError{Err: err}
	}
	// null декодируется в nil map без ошибки
	if decoded == nil {
		return nil, &DecodeError{Err: fmt.Errorf("response body is %q, object expected", string(body))}
	}

	return decoded, nil
}
