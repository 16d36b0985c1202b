package metaclient

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-pipeline/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-pipeline/internal/config"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
	"golang.org/x/time/rate"
)

type Client interface {
	Call(ctx context.Context, path string, params url.Values) (*Response, error)
	CallAll(ctx context.Context, path string, params url.Values) ([]jsoniter.RawMessage, error)
	GetMyAdAccounts(ctx context.Context) ([]metadomain.AdAccount, error)
	GetMyBusinesses(ctx context.Context) ([]metadomain.Business, error)
	GetOwnedAdAccounts(ctx context.Context, businessID string) ([]metadomain.AdAccount, error)
	GetAdsByAccountID(ctx context.Context, accountID string) ([]metadomain.Ad, error)
	GetAdInsights(ctx context.Context, adID string, params url.Values) ([]metadomain.AdInsight, error)
}

type Options struct {
	RequestsPerSecond float64
	Burst             int
	PageLimit         int
	MaxAttempts       int
	InitialDelay      time.Duration
	MaxDelay          time.Duration
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		RequestsPerSecond: cfg.Meta.RequestsPerSecond,
		Burst:             cfg.Meta.RequestBurst,
		PageLimit:         cfg.Meta.PageLimit,
		MaxAttempts:       cfg.Meta.RetryMaxAttempts,
		InitialDelay:      cfg.Meta.RetryInitialDelay,
		MaxDelay:          cfg.Meta.RetryMaxDelay,
	}
}

// MetaClient fica preso a um único token durante toda a sua vida
type MetaClient struct {
	transport Transport
	token     *domain.Token
	limiter   *rate.Limiter
	opts      Options
	now       func() time.Time
}

func NewClient(transport Transport, token *domain.Token, opts Options) *MetaClient {
	return NewClientWithLimiter(transport, token, opts, NewLimiter(opts))
}

// NewClientWithLimiter permite que clientes de tokens diferentes dividam o mesmo limite local
func NewClientWithLimiter(transport Transport, token *domain.Token, opts Options, limiter *rate.Limiter) *MetaClient {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}
	if opts.InitialDelay <= 0 {
		opts.InitialDelay = time.Second
	}
	if opts.MaxDelay < opts.InitialDelay {
		opts.MaxDelay = opts.InitialDelay
	}

	return &MetaClient{
		transport: transport,
		token:     token,
		limiter:   limiter,
		opts:      opts,
		now:       time.Now,
	}
}

func NewLimiter(opts Options) *rate.Limiter {
	if opts.RequestsPerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
}

// Call faz uma chamada lógica ao Graph. Falhas temporárias são repetidas com backoff exponencial;
// falhas de autorização e erros permanentes voltam na primeira ocorrência.
func (c *MetaClient) Call(ctx context.Context, path string, params url.Values) (*Response, error) {
	query := cloneValues(params)
	query.Set("access_token", c.token.AccessToken)

	attempt := 0
	operation := func() (*Response, error) {
		attempt++

		if !c.token.Valid(c.now()) {
			return nil, backoff.Permanent(&domain.AuthorizationError{
				Path:    path,
				Message: "token fora da janela de validade",
				Err:     domain.ErrTokenExpired,
			})
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, backoff.Permanent(err)
		}

		body, err := c.transport.Request(ctx, path, query)
		if err != nil {
			if isRetryable(err) {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}

		var response Response
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, backoff.Permanent(&domain.RemoteError{
				Path:       path,
				StatusCode: 200,
				Message:    "resposta inválida: " + err.Error(),
			})
		}

		return &response, nil
	}

	notify := func(err error, wait time.Duration) {
		logrus.WithFields(logrus.Fields{
			"path":    path,
			"attempt": attempt,
			"wait":    wait.String(),
		}).WithError(err).Warn("Falha temporária na API do Meta, nova tentativa agendada")
	}

	response, err := backoff.RetryNotifyWithData[*Response](operation, c.backOff(ctx), notify)
	if err != nil {
		if attempt > 1 && isRetryable(err) {
			logrus.WithField("path", path).WithField("attempts", attempt).Error("Tentativas esgotadas na API do Meta")
		}
		return nil, err
	}

	return response, nil
}

// CallAll segue o cursor after enquanto o Graph indicar uma próxima página
func (c *MetaClient) CallAll(ctx context.Context, path string, params url.Values) ([]jsoniter.RawMessage, error) {
	query := cloneValues(params)
	if c.opts.PageLimit > 0 && query.Get("limit") == "" {
		query.Set("limit", strconv.Itoa(c.opts.PageLimit))
	}

	var data []jsoniter.RawMessage
	for {
		response, err := c.Call(ctx, path, query)
		if err != nil {
			return nil, err
		}

		data = append(data, response.Data...)

		if !response.HasNext() {
			return data, nil
		}
		query.Set("after", response.Paging.Cursors.After)
	}
}

func (c *MetaClient) backOff(ctx context.Context) backoff.BackOff {
	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = c.opts.InitialDelay
	exponential.MaxInterval = c.opts.MaxDelay
	exponential.Multiplier = 2
	exponential.RandomizationFactor = 0.1
	exponential.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exponential, uint64(c.opts.MaxAttempts-1)), ctx)
}

type retryableError interface {
	IsRetryable() bool
}

func isRetryable(err error) bool {
	var retryable retryableError
	if errors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

func cloneValues(params url.Values) url.Values {
	clone := make(url.Values, len(params)+2)
	for key, values := range params {
		clone[key] = append([]string(nil), values...)
	}
	return clone
}

func decodeAll[T any](raw []jsoniter.RawMessage) ([]T, error) {
	items := make([]T, 0, len(raw))
	for _, item := range raw {
		var decoded T
		if err := json.Unmarshal(item, &decoded); err != nil {
			return nil, err
		}
		items = append(items, decoded)
	}
	return items, nil
}
