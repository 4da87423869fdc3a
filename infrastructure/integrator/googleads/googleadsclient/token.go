package googleadsclient

import (
	"context"
	"net/http"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const adwordsScope = "https://www.googleapis.com/auth/adwords"

// TokenManager troca o refresh token por access tokens e os renova sob demanda
type TokenManager struct {
	mu           sync.Mutex
	conf         *oauth2.Config
	refreshToken string
	baseCtx      context.Context
	source       oauth2.TokenSource
}

func NewTokenManager(cfg config.GoogleAds, httpClient *http.Client) *TokenManager {
	endpoint := google.Endpoint
	if cfg.TokenURL != "" {
		endpoint = oauth2.Endpoint{TokenURL: cfg.TokenURL, AuthStyle: oauth2.AuthStyleInParams}
	}

	baseCtx := context.Background()
	if httpClient != nil {
		baseCtx = context.WithValue(baseCtx, oauth2.HTTPClient, httpClient)
	}

	tm := &TokenManager{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoint,
			Scopes:       []string{adwordsScope},
		},
		refreshToken: cfg.RefreshToken,
		baseCtx:      baseCtx,
	}
	tm.source = tm.newSource()

	return tm
}

func (tm *TokenManager) newSource() oauth2.TokenSource {
	return tm.conf.TokenSource(tm.baseCtx, &oauth2.Token{RefreshToken: tm.refreshToken})
}

// AccessToken devolve o token atual, renovando quando expirado
func (tm *TokenManager) AccessToken() (string, error) {
	tm.mu.Lock()
	source := tm.source
	tm.mu.Unlock()

	token, err := source.Token()
	if err != nil {
		return "", errors.Wrap(err, "erro ao renovar access token do Google Ads")
	}

	return token.AccessToken, nil
}

// Invalidate descarta o token em memória; a próxima chamada faz um novo refresh
func (tm *TokenManager) Invalidate() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	logrus.Info("Access token do Google Ads rejeitado, forçando renovação")
	tm.source = tm.newSource()
}
