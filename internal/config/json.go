package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Connect struct {
		Timeout Duration `json:"timeout"`
	} `json:"connect,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Widget struct {
		AppName     string `json:"app_name"`
		AppIcon     string `json:"app_icon"`
		ShowBalance *bool  `json:"show_balance,omitempty"`
	} `json:"widget,omitempty"`

	Workers struct {
		BalanceRefresh Duration `json:"balance_refresh"`
	} `json:"workers,omitempty"`
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
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Connect: Connect{
			Timeout: time.Duration(jsonCfg.Connect.Timeout),
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		Widget: Widget{
			AppName:     jsonCfg.Widget.AppName,
			AppIcon:     jsonCfg.Widget.AppIcon,
			ShowBalance: jsonCfg.Widget.ShowBalance,
		},
		Workers: Workers{
			BalanceRefresh: time.Duration(jsonCfg.Workers.BalanceRefresh),
		},
		JSONFilePath: "",
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
