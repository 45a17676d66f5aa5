package jquants

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/kettleTeacues/yfinance/internal/feature/symbollist/domain/entity"
	"github.com/kettleTeacues/yfinance/internal/feature/symbollist/usecase"
	"github.com/kettleTeacues/yfinance/internal/platform/externalapi/jquants/dto"
)

// idTokenTTL は idToken をキャッシュする期間です（J-Quants の有効期限は24時間）。
const idTokenTTL = 23 * time.Hour

// ErrNoToken はトークン応答にトークンが含まれていない場合に返されます。
var ErrNoToken = errors.New("jquants: token missing in response")

// JQuantsDirectory はJ-Quants APIから上場銘柄一覧を取得するCompanyDirectory実装です。
type JQuantsDirectory struct {
	cfg    Config
	client *http.Client
	now    func() time.Time

	mu        sync.Mutex
	idToken   string
	expiresAt time.Time
}

// JQuantsDirectoryがCompanyDirectoryを実装していることをコンパイル時に検証します。
var _ usecase.CompanyDirectory = (*JQuantsDirectory)(nil)

// NewJQuantsDirectory は指定された設定とHTTPクライアントでJQuantsDirectoryの新しいインスタンスを生成します。
func NewJQuantsDirectory(cfg Config, client *http.Client) *JQuantsDirectory {
	return &JQuantsDirectory{cfg: cfg, client: client, now: time.Now}
}

// ListCompanies は上場銘柄一覧を取得します。
func (j *JQuantsDirectory) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	token, err := j.token(ctx)
	if err != nil {
		return nil, err
	}

	var body dto.ListedInfoResponse
	status, err := j.do(ctx, http.MethodGet, "/listed/info", nil, nil, token, &body)
	if status == http.StatusUnauthorized {
		j.resetToken()
	}
	if err != nil {
		return nil, err
	}

	companies := make([]entity.Company, 0, len(body.Info))
	for _, info := range body.Info {
		companies = append(companies, entity.Company{
			Code:               info.Code,
			CompanyName:        info.CompanyName,
			CompanyNameEnglish: info.CompanyNameEnglish,
			Sector17CodeName:   info.Sector17CodeName,
			Sector33CodeName:   info.Sector33CodeName,
			MarketCodeName:     info.MarketCodeName,
		})
	}
	return companies, nil
}

// token はキャッシュ済みの idToken を返します。期限切れの場合は refreshToken から取り直します。
func (j *JQuantsDirectory) token(ctx context.Context) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.idToken != "" && j.now().Before(j.expiresAt) {
		return j.idToken, nil
	}

	var auth dto.AuthUserResponse
	req := dto.AuthUserRequest{MailAddress: j.cfg.Mail, Password: j.cfg.Password}
	if _, err := j.do(ctx, http.MethodPost, "/token/auth_user", nil, req, "", &auth); err != nil {
		return "", fmt.Errorf("auth_user: %w", err)
	}
	if auth.RefreshToken == "" {
		return "", fmt.Errorf("auth_user: %w", ErrNoToken)
	}

	q := url.Values{}
	q.Set("refreshtoken", auth.RefreshToken)
	var refresh dto.AuthRefreshResponse
	if _, err := j.do(ctx, http.MethodPost, "/token/auth_refresh", q, nil, "", &refresh); err != nil {
		return "", fmt.Errorf("auth_refresh: %w", err)
	}
	if refresh.IDToken == "" {
		return "", fmt.Errorf("auth_refresh: %w", ErrNoToken)
	}

	j.idToken = refresh.IDToken
	j.expiresAt = j.now().Add(idTokenTTL)
	return j.idToken, nil
}

func (j *JQuantsDirectory) resetToken() {
	j.mu.Lock()
	j.idToken = ""
	j.mu.Unlock()
}

// do はリクエストを送信し、JSONレスポンスを out にデコードします。ステータスコードも返します。
func (j *JQuantsDirectory) do(ctx context.Context, method, path string, q url.Values, payload any, bearer string, out any) (int, error) {
	u := j.cfg.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	res, err := j.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(io.LimitReader(res.Body, 4096)).Decode(&e)
		if e.Message != "" {
			return res.StatusCode, fmt.Errorf("jquants http %d: %s", res.StatusCode, e.Message)
		}
		return res.StatusCode, fmt.Errorf("jquants http %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return res.StatusCode, fmt.Errorf("decode %s: %w", path, err)
	}
	return res.StatusCode, nil
}
