package http

import (
	"net"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// Option は NewHTTPClient の追加設定です。
type Option func(*http.Client)

// WithCookieJar はセッション Cookie を保持する Jar を設定します。
// Yahoo のように Cookie と crumb の組でアクセスを許可する API で使用します。
func WithCookieJar() Option {
	return func(c *http.Client) {
		// cookiejar.New は nil オプションではエラーを返さない
		jar, _ := cookiejar.New(nil)
		c.Jar = jar
	}
}

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTP_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout: TCP接続タイムアウト（デフォルトより短い）
//   - Dialer.KeepAlive: 再利用可能なTCP接続の維持期間
//   - MaxIdleConns: 最大アイドル接続数
//   - IdleConnTimeout: アイドル接続の維持期間
//   - TLSHandshakeTimeout: HTTPSハンドシェイクの最大時間
//   - Client.Timeout: リクエスト全体のタイムアウト（呼び出し元から渡される）
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にカスタムクライアントを使用すること
//   - バッチは逐次実行のため、ホストあたりのアイドル接続は少数で足りる
func NewHTTPClient(timeout time.Duration, opts ...Option) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	c := &http.Client{Timeout: timeout, Transport: t}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
