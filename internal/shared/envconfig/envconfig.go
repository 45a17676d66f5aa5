// Package envconfig は .env の読み込みと、環境変数から設定構造体への変換・検証を提供します。
package envconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadDotEnv は .env ファイルを読み込みます。ファイルが無い場合はシステムの環境変数のみを使用します。
// 既に設定されている環境変数は上書きしません。
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Info(".env not found; using system environment variables", "path", p)
				continue
			}
			slog.Warn("failed to load .env", "path", p, "error", err)
		}
	}
}

// Parse は env タグに従って cfg を埋め、validate タグで検証します。
func Parse(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
