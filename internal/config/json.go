package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type structuredJSONConfig struct {
	API struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	Session struct {
		DBPath      string   `json:"db_path"`
		TokenLeeway Duration `json:"token_leeway"`
	} `json:"session,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg structuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			Address:        jsonCfg.API.Address,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
		},
		Session: Session{
			DBPath:      jsonCfg.Session.DBPath,
			TokenLeeway: time.Duration(jsonCfg.Session.TokenLeeway),
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
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
