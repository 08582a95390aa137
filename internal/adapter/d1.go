// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-design-gallery/internal/config"
	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/store"
	"github.com/MKhiriev/go-design-gallery/internal/utils"
)

// D1Executor runs statements against a remote database over HTTP. It keeps
// no per-statement state and is safe for concurrent use.
type D1Executor struct {
	client    *utils.HTTPClient
	queryPath string
	logger    *logger.Logger
}

// NewD1Executor constructs a [D1Executor] for the database named in cfg.
// The API token is attached to every request and never logged.
func NewD1Executor(cfg config.DB, logger *logger.Logger) (*D1Executor, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote store base url: %w", err)
	}
	if cfg.AccountID == "" || cfg.DatabaseID == "" {
		return nil, fmt.Errorf("remote store account and database ids are required")
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.APIToken).
		SetHeader("Content-Type", "application/json")

	logger.Debug().Str("func", "NewD1Executor").Str("base_url", baseURL).Msg("remote store executor created")

	return &D1Executor{
		client: client,
		queryPath: fmt.Sprintf("/accounts/%s/d1/database/%s/query",
			url.PathEscape(cfg.AccountID), url.PathEscape(cfg.DatabaseID)),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Query implements store.Executor.
func (d *D1Executor) Query(ctx context.Context, statement string, args ...any) (store.Result, error) {
	log := logger.FromContext(ctx)

	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(queryRequest{SQL: statement, Params: encodeParams(args)}).
		Post(d.queryPath)
	if err != nil {
		log.Err(err).Str("func", "*D1Executor.Query").Msg("remote store request failed")
		return store.Result{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*D1Executor.Query").Int("status", resp.StatusCode()).Msg("remote store returned error status")
		return store.Result{}, err
	}

	env, err := decodeEnvelope(resp.Body())
	if err != nil {
		log.Err(err).Str("func", "*D1Executor.Query").Msg("error decoding remote store response")
		return store.Result{}, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	if !env.Success {
		return store.Result{}, fmt.Errorf("%w: %s", ErrQueryRejected, env.Errors.String())
	}

	return env.toResult(), nil
}
