package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so operators can keep a readable config file.
type StructuredJSONConfig struct {
	Crypto struct {
		Mode             string `json:"mode"`
		SecretKey        string `json:"secret_key"`
		PublicKey        string `json:"public_key"`
		PrivateKey       string `json:"private_key"`
		DecoyCount       int    `json:"decoy_count"`
		MaxDepth         int    `json:"max_depth"`
		EncryptionHeader string `json:"encryption_header"`
	} `json:"crypto,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Client struct {
		BaseURL string   `json:"base_url"`
		Timeout Duration `json:"timeout"`
	} `json:"client,omitempty"`

	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`
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

	return &StructuredConfig{
		Crypto: Crypto{
			Mode:             jsonCfg.Crypto.Mode,
			SecretKey:        jsonCfg.Crypto.SecretKey,
			PublicKey:        jsonCfg.Crypto.PublicKey,
			PrivateKey:       jsonCfg.Crypto.PrivateKey,
			DecoyCount:       jsonCfg.Crypto.DecoyCount,
			MaxDepth:         jsonCfg.Crypto.MaxDepth,
			EncryptionHeader: jsonCfg.Crypto.EncryptionHeader,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Client: Client{
			BaseURL: jsonCfg.Client.BaseURL,
			Timeout: time.Duration(jsonCfg.Client.Timeout),
		},
		App: App{
			Version: jsonCfg.App.Version,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
