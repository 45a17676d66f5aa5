package yahoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// YahooMarket は Yahoo Finance から銘柄データを取得する MarketRepository 実装です。
// すべてのリクエストは rate.Limiter で間隔を調整されます。
type YahooMarket struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
	now     func() time.Time

	mu    sync.Mutex
	crumb string
}

// NewYahooMarket は指定された設定とHTTPクライアントで YahooMarket を生成します。
// client には Cookie Jar を設定しておく必要があります（crumb が Cookie と紐づくため）。
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	rps := cfg.RPS
	if rps <= 0 {
		rps = 2
	}
	return &YahooMarket{
		cfg:     cfg,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		now:     time.Now,
	}
}

// ensureCrumb はセッション Cookie を取得したうえで crumb を取得し、キャッシュします。
func (y *YahooMarket) ensureCrumb(ctx context.Context) (string, error) {
	y.mu.Lock()
	defer y.mu.Unlock()
	if y.crumb != "" {
		return y.crumb, nil
	}

	// fc.yahoo.com はステータスに関わらず Cookie を発行するため、結果は無視する
	if res, err := y.send(ctx, http.MethodGet, y.cfg.CookieURL, nil); err == nil {
		drain(res)
	} else {
		slog.Warn("yahoo cookie request failed", "error", err)
	}

	res, err := y.send(ctx, http.MethodGet, y.cfg.BaseURL+"/v1/test/getcrumb", nil)
	if err != nil {
		return "", fmt.Errorf("get crumb: %w", err)
	}
	defer closeBody(res)
	b, err := io.ReadAll(io.LimitReader(res.Body, 1024))
	if err != nil {
		return "", fmt.Errorf("read crumb: %w", err)
	}
	crumb := strings.TrimSpace(string(b))
	if res.StatusCode >= 400 || crumb == "" || strings.ContainsAny(crumb, "<{ ") {
		return "", fmt.Errorf("%w (status %d)", ErrNoCrumb, res.StatusCode)
	}
	y.crumb = crumb
	return crumb, nil
}

func (y *YahooMarket) resetCrumb() {
	y.mu.Lock()
	y.crumb = ""
	y.mu.Unlock()
}

// send はレート制限を待ってからリクエストを送信します。
func (y *YahooMarket) send(ctx context.Context, method, u string, body []byte) (*http.Response, error) {
	if err := y.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", y.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return y.client.Do(req)
}

// getJSON は crumb 付きで GET し、レスポンスを out にデコードします。
func (y *YahooMarket) getJSON(ctx context.Context, endpoint string, q url.Values, out any) error {
	return y.doJSON(ctx, http.MethodGet, y.cfg.BaseURL, endpoint, q, nil, out)
}

// doJSON sends a request with the session crumb and decodes a JSON response into out.
func (y *YahooMarket) doJSON(ctx context.Context, method, base, endpoint string, q url.Values, payload any, out any) error {
	crumb, err := y.ensureCrumb(ctx)
	if err != nil {
		return err
	}
	if q == nil {
		q = url.Values{}
	}
	q.Set("crumb", crumb)
	u := fmt.Sprintf("%s%s?%s", base, endpoint, q.Encode())

	var body []byte
	if payload != nil {
		if body, err = json.Marshal(payload); err != nil {
			return err
		}
	}

	res, err := y.send(ctx, method, u, body)
	if err != nil {
		return err
	}
	defer closeBody(res)

	if res.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		if res.StatusCode == http.StatusUnauthorized {
			// 次回のリクエストで crumb を取り直す
			y.resetCrumb()
		}
		return &APIError{StatusCode: res.StatusCode, Endpoint: endpoint, Message: strings.TrimSpace(string(msg))}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}

func closeBody(res *http.Response) {
	if err := res.Body.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err)
	}
}

func drain(res *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 64<<10))
	closeBody(res)
}
