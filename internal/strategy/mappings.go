// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package strategy

import (
	"strings"

	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/spf13/cast"
)

// SettingsPrefix is the prefix of flat host-framework settings lifted by
// [MoveSettings], e.g. STORMPATH_API_KEY_ID.
const SettingsPrefix = "STORMPATH_"

// applicationKey is routed to application*href or application*name depending
// on its value.
const applicationKey = "APPLICATION"

// Key paths addressed directly by strategies.
const (
	PathAPIKeyID     = "client*apiKey*id"
	PathAPIKeySecret = "client*apiKey*secret"
	PathAPIKeyFile   = "client*apiKey*file"
	PathAPIKey       = "client*apiKey"
	PathAppHref      = "application*href"
	PathAppName      = "application*name"
)

// SettingsMappings maps the remainder of a STORMPATH_* flat setting to its
// key path. Names missing from the table are ignored. The table must not be
// modified at run time.
var SettingsMappings = map[string]string{
	applicationKey:       "application",
	"API_KEY_ID":         PathAPIKeyID,
	"API_KEY_SECRET":     PathAPIKeySecret,
	"API_KEY_FILE":       PathAPIKeyFile,
	"ENABLE_FACEBOOK":    "web*social*facebook*enabled",
	"ENABLE_GOOGLE":      "web*social*google*enabled",
	"FACEBOOK_LOGIN_URL": "web*social*facebook*login_url",
	"GOOGLE_LOGIN_URL":   "web*social*google*login_url",
	"CACHE":              "cache",
	"BASE_TEMPLATE":      "base_template",
	"COOKIE_DOMAIN":      "cookie*domain",
	"COOKIE_DURATION":    "cookie*duration",
}

// EnvAliases maps environment variable bodies (the part after the prefix)
// whose underscores cannot be split mechanically to their key path.
var EnvAliases = map[string]string{
	applicationKey:   "application",
	"API_KEY_ID":     PathAPIKeyID,
	"API_KEY_SECRET": PathAPIKeySecret,
	"API_KEY_FILE":   PathAPIKeyFile,
}

// KnownPaths lists canonical camel-cased key paths. An environment variable
// whose body equals the upper-cased, underscore-joined form of one of these
// paths is loaded at that path, which keeps the camel casing of keys such as
// cacheManager intact.
var KnownPaths = []string{
	PathAPIKeyID,
	PathAPIKeySecret,
	PathAPIKeyFile,
	"client*cacheManager*defaultTtl",
	"client*cacheManager*defaultTti",
	"client*cacheManager*enabled",
	"client*baseUrl",
	"client*connectionTimeout",
	"client*authenticationScheme",
	"client*proxy*port",
	"client*proxy*host",
	"client*proxy*username",
	"client*proxy*password",
	PathAppName,
	PathAppHref,
	"web*basePath",
	"web*register*enabled",
	"web*register*autoLogin",
	"web*verifyEmail*enabled",
	"web*forgotPassword*enabled",
	"web*changePassword*enabled",
	"web*spa*enabled",
	"web*spa*view",
	"skipRemoteConfig",
	"web*social*facebook*clientId",
	"web*social*facebook*clientSecret",
	"web*social*github*clientId",
	"web*social*github*clientSecret",
	"web*social*google*clientId",
	"web*social*google*clientSecret",
	"web*social*linkedin*clientId",
	"web*social*linkedin*clientSecret",
}

// envName returns the environment variable body addressing path.
func envName(path string) string {
	return strings.ToUpper(strings.ReplaceAll(path, utils.KeyDelimiter, "_"))
}

// indexPaths returns an envName → path index over KnownPaths and every leaf
// path of schema.
func indexPaths(schema models.Config) map[string]string {
	index := make(map[string]string, len(KnownPaths))
	for _, p := range KnownPaths {
		index[envName(p)] = p
	}
	walkLeaves(schema, "", func(path string) {
		if _, ok := index[envName(path)]; !ok {
			index[envName(path)] = path
		}
	})
	return index
}

func walkLeaves(cfg models.Config, prefix string, fn func(path string)) {
	for k, v := range cfg {
		path := k
		if prefix != "" {
			path = utils.JoinPath(prefix, k)
		}
		if section, ok := utils.AsMap(v); ok && len(section) > 0 {
			walkLeaves(section, path, fn)
			continue
		}
		fn(path)
	}
}

// applicationPath routes an application reference: values holding an
// http(s) URL are locators, anything else is a name.
func applicationPath(value any) string {
	s := strings.ToLower(cast.ToString(value))
	if strings.Contains(s, "http://") || strings.Contains(s, "https://") {
		return PathAppHref
	}
	return PathAppName
}
