package metaclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

// Transport executa uma única requisição GET no Graph e devolve o corpo bruto.
// Erros já saem classificados na taxonomia de internal/domain.
type Transport interface {
	Request(ctx context.Context, path string, params url.Values) ([]byte, error)
}

type HTTPTransport struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPTransport(baseURL string, timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (t *HTTPTransport) Request(ctx context.Context, path string, params url.Values) ([]byte, error) {
	requestURL := t.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &domain.RemoteError{Path: path, Message: err.Error()}
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// A URL contém o access_token, então o erro do net/http não é propagado como texto
		return nil, &domain.TransientRemoteError{Path: path, Message: "falha de rede", Err: unwrapURLError(err)}
	}
	defer resp.Body.Close()

	return HandleResponse(path, resp)
}

func unwrapURLError(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Err
	}
	return err
}
