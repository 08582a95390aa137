// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Name             string   `json:"name"`
		Version          string   `json:"version"`
		Environment      string   `json:"environment"`
		Debug            bool     `json:"debug"`
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
	} `json:"app"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Storage struct {
		DB struct {
			Driver         string   `json:"driver"`
			AccountID      string   `json:"account_id"`
			DatabaseID     string   `json:"database_id"`
			APIToken       string   `json:"api_token"`
			BaseURL        string   `json:"base_url"`
			DSN            string   `json:"dsn"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"db"`

		Objects struct {
			Endpoint        string   `json:"endpoint"`
			AccountID       string   `json:"account_id"`
			Region          string   `json:"region"`
			AccessKeyID     string   `json:"access_key_id"`
			SecretAccessKey string   `json:"secret_access_key"`
			Bucket          string   `json:"bucket"`
			PublicURL       string   `json:"public_url"`
			PresignExpiry   Duration `json:"presign_expiry"`
		} `json:"objects"`
	} `json:"storage"`

	Upload struct {
		MaxFileSize  int64    `json:"max_file_size"`
		AllowedTypes []string `json:"allowed_types"`
	} `json:"upload"`

	Pagination struct {
		DefaultPageSize int `json:"default_page_size"`
		MaxPageSize     int `json:"max_page_size"`
	} `json:"pagination"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:             j.App.Name,
			Version:          j.App.Version,
			Environment:      j.App.Environment,
			Debug:            j.App.Debug,
			TokenSignKey:     j.App.TokenSignKey,
			TokenIssuer:      j.App.TokenIssuer,
			TokenDuration:    time.Duration(j.App.TokenDuration),
			PasswordHashCost: j.App.PasswordHashCost,
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				Driver:         j.Storage.DB.Driver,
				AccountID:      j.Storage.DB.AccountID,
				DatabaseID:     j.Storage.DB.DatabaseID,
				APIToken:       j.Storage.DB.APIToken,
				BaseURL:        j.Storage.DB.BaseURL,
				DSN:            j.Storage.DB.DSN,
				RequestTimeout: time.Duration(j.Storage.DB.RequestTimeout),
			},
			Objects: Objects{
				Endpoint:        j.Storage.Objects.Endpoint,
				AccountID:       j.Storage.Objects.AccountID,
				Region:          j.Storage.Objects.Region,
				AccessKeyID:     j.Storage.Objects.AccessKeyID,
				SecretAccessKey: j.Storage.Objects.SecretAccessKey,
				Bucket:          j.Storage.Objects.Bucket,
				PublicURL:       j.Storage.Objects.PublicURL,
				PresignExpiry:   time.Duration(j.Storage.Objects.PresignExpiry),
			},
		},
		Upload: Upload{
			MaxFileSize:  j.Upload.MaxFileSize,
			AllowedTypes: j.Upload.AllowedTypes,
		},
		Pagination: Pagination{
			DefaultPageSize: j.Pagination.DefaultPageSize,
			MaxPageSize:     j.Pagination.MaxPageSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
