package providers

import (
	"github.com/samber/do/v2"

	"github.com/Liban-hassan-noor/eastlify-client/internal/auth"
	"github.com/Liban-hassan-noor/eastlify-client/internal/config"
	"github.com/Liban-hassan-noor/eastlify-client/internal/logger"
)

// AuthKey is the PASETO symmetric key as hex, used by the mock backend.
type AuthKey string

// ProvideAuthKey loads or generates the mock backend's token key. A key set
// via configuration wins; otherwise one is persisted under the data
// directory so issued tokens survive restarts.
func ProvideAuthKey(i do.Injector) (AuthKey, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Mock.TokenKey != "" {
		return AuthKey(cfg.Mock.TokenKey), nil
	}

	key, err := auth.LoadOrGenerateKey(cfg.Data.Dir)
	if err != nil {
		return "", err
	}

	log.Debug("Token key loaded", "token_duration", cfg.Mock.TokenDuration)

	return AuthKey(key), nil
}

// ProvideTokenService provides the PASETO token service.
func ProvideTokenService(i do.Injector) (*auth.TokenService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	key := do.MustInvoke[AuthKey](i)

	return auth.NewTokenService(string(key), cfg.Mock.TokenDuration)
}
