package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// names and string durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey              string   `json:"token_sign_key"`
		TokenIssuer               string   `json:"token_issuer"`
		TokenDuration             Duration `json:"token_duration"`
		VerificationTokenDuration Duration `json:"verification_token_duration"`
		PasswordHashCost          int      `json:"password_hash_cost"`
		BaseURL                   string   `json:"base_url"`
		Version                   string   `json:"version"`
		LogLevel                  string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			ImagesDir     string `json:"images_dir"`
			MaxUploadSize  int64  `json:"max_upload_size"`
			MaxImagePixels int64  `json:"max_image_pixels"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		Host            string   `json:"host"`
		Port            int      `json:"port"`
		Username        string   `json:"username"`
		Password        string   `json:"password"`
		From            string   `json:"from"`
		Timeout         Duration `json:"timeout"`
		InsecureSkipTLS bool     `json:"insecure_skip_tls"`
	} `json:"mail,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:              jsonCfg.App.TokenSignKey,
			TokenIssuer:               jsonCfg.App.TokenIssuer,
			TokenDuration:             time.Duration(jsonCfg.App.TokenDuration),
			VerificationTokenDuration: time.Duration(jsonCfg.App.VerificationTokenDuration),
			PasswordHashCost:          jsonCfg.App.PasswordHashCost,
			BaseURL:                   jsonCfg.App.BaseURL,
			Version:                   jsonCfg.App.Version,
			LogLevel:                  jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				ImagesDir:     jsonCfg.Storage.Files.ImagesDir,
				MaxUploadSize:  jsonCfg.Storage.Files.MaxUploadSize,
				MaxImagePixels: jsonCfg.Storage.Files.MaxImagePixels,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mail: Mail{
			Host:            jsonCfg.Mail.Host,
			Port:            jsonCfg.Mail.Port,
			Username:        jsonCfg.Mail.Username,
			Password:        jsonCfg.Mail.Password,
			From:            jsonCfg.Mail.From,
			Timeout:         time.Duration(jsonCfg.Mail.Timeout),
			InsecureSkipTLS: jsonCfg.Mail.InsecureSkipTLS,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
