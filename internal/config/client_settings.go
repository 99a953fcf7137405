// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

// DefaultBaseURL is the Stormpath API root used when client.baseUrl is unset.
const DefaultBaseURL = "https://api.stormpath.com/v1"

// ClientSettings is a typed view over the client section of a resolved
// Stormpath configuration. It carries what an API client needs to connect.
type ClientSettings struct {
	APIKey APIKey `mapstructure:"apiKey"`

	// BaseURL is the API root, e.g. https://api.stormpath.com/v1.
	BaseURL string `mapstructure:"baseUrl"`

	// ConnectionTimeout bounds every request. Plain numbers are seconds.
	ConnectionTimeout time.Duration `mapstructure:"connectionTimeout"`

	// AuthenticationScheme is informational; requests always use basic auth.
	AuthenticationScheme string `mapstructure:"authenticationScheme"`

	Proxy Proxy `mapstructure:"proxy"`
}

// APIKey holds the API key pair.
type APIKey struct {
	ID     string `mapstructure:"id"`
	Secret string `mapstructure:"secret"`
}

// Proxy holds optional outbound proxy settings.
type Proxy struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// URL returns the proxy URL, or an empty string when no proxy host is set.
func (p Proxy) URL() string {
	if p.Host == "" {
		return ""
	}

	u := &url.URL{Scheme: "http", Host: p.Host}
	if p.Port > 0 {
		u.Host = p.Host + ":" + strconv.Itoa(p.Port)
	}
	if p.Username != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u.String()
}

func defaultClientSettings() ClientSettings {
	return ClientSettings{
		BaseURL:              DefaultBaseURL,
		ConnectionTimeout:    30 * time.Second,
		AuthenticationScheme: "SAUTHC1",
	}
}

// DecodeClientSettings decodes the client section of cfg. Values are weakly
// typed so settings read from the environment as strings decode as well.
// Unset fields take the package defaults.
func DecodeClientSettings(cfg models.Config) (ClientSettings, error) {
	var settings ClientSettings

	section, _ := cfg.Section("client")
	if section != nil {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(secondsHookFunc()),
			WeaklyTypedInput: true,
			Result:           &settings,
			TagName:          "mapstructure",
		})
		if err != nil {
			return ClientSettings{}, fmt.Errorf("%w: %w", ErrInvalidClientSettings, err)
		}
		if err := dec.Decode(map[string]any(section)); err != nil {
			return ClientSettings{}, fmt.Errorf("%w: %w", ErrInvalidClientSettings, err)
		}
	}

	if err := mergo.Merge(&settings, defaultClientSettings()); err != nil {
		return ClientSettings{}, fmt.Errorf("error merging client settings: %w", err)
	}
	settings.BaseURL = strings.TrimRight(settings.BaseURL, "/")

	return settings, nil
}

// secondsHookFunc decodes durations. Numbers and numeric strings are seconds;
// other strings use Go duration syntax ("1m30s").
func secondsHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(time.Duration(0)) || data == nil {
			return data, nil
		}

		switch v := data.(type) {
		case time.Duration:
			return v, nil
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				return time.Duration(0), nil
			}
			if secs, err := strconv.ParseFloat(s, 64); err == nil {
				return time.Duration(secs * float64(time.Second)), nil
			}
			return cast.ToDurationE(s)
		default:
			secs, err := cast.ToFloat64E(v)
			if err != nil {
				return nil, err
			}
			return time.Duration(secs * float64(time.Second)), nil
		}
	}
}
