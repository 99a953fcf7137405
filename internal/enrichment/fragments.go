package enrichment

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-stormpath-config/internal/utils"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/spf13/cast"
)

// Provider ids of directories that are not social providers.
var builtinProviders = map[string]bool{
	"stormpath": true,
	"ad":        true,
	"ldap":      true,
}

// Housekeeping fields dropped from remote resources.
const (
	fieldHref       = "href"
	fieldCreatedAt  = "createdAt"
	fieldModifiedAt = "modifiedAt"
)

// oauthPolicyFragment converts the OAuth policy of an application: keys are
// camel-cased, durations become float64 seconds and audit timestamps are
// dropped. String values are treated as ISO-8601 durations only for keys
// ending in "Ttl".
func oauthPolicyFragment(policy models.Resource) models.Config {
	out := make(models.Config, len(policy))

	for k, v := range policy {
		key := utils.ToCamelCase(k)
		if key == fieldCreatedAt || key == fieldModifiedAt {
			continue
		}

		if _, isDuration := v.(time.Duration); isDuration || strings.HasSuffix(key, "Ttl") {
			if secs, ok := utils.DurationSeconds(v); ok {
				v = secs
			}
		}
		out[key] = utils.Normalize(v)
	}

	return out
}

// socialFragment returns web.social.<providerId> for every account store
// of app that is a social directory. A callback uri is seeded unless cfg
// already configures one for the provider; remote fields win over it.
func socialFragment(cfg models.Config, app *models.Application) models.Config {
	fragment := models.Config{}

	for _, mapping := range app.AccountStoreMappings {
		dir := mapping.AccountStore.Directory
		if dir == nil || dir.Provider == nil {
			continue
		}

		remote := models.Config(utils.CamelCaseKeys(dir.Provider))
		providerID := cast.ToString(remote["providerId"])
		if providerID == "" || builtinProviders[providerID] {
			continue
		}

		delete(remote, fieldHref)
		delete(remote, fieldCreatedAt)
		delete(remote, fieldModifiedAt)
		remote["enabled"] = true

		path := utils.JoinPath("web", "social", providerID)
		entry := models.Config{}
		if _, ok := utils.GetPath(cfg, utils.JoinPath(path, "uri")); !ok {
			entry["uri"] = "/callbacks/" + providerID
		}
		utils.SetPath(fragment, path, utils.Merge(entry, remote))
	}

	return fragment
}

// defaultDirectory returns the directory behind the default account store
// of app, following a group to its directory. It returns nil when no store
// is mapped.
func defaultDirectory(app *models.Application) *models.Directory {
	mapping := app.DefaultAccountStoreMapping
	if mapping == nil {
		return nil
	}
	if group := mapping.AccountStore.Group; group != nil {
		return group.Directory
	}
	return mapping.AccountStore.Directory
}

// directoryPolicyFragment derives passwordPolicy and the enabled flags of
// the password reset and email verification workflows from dir.
func directoryPolicyFragment(dir *models.Directory) models.Config {
	if dir == nil {
		return nil
	}

	fragment := models.Config{}

	if pp := dir.PasswordPolicy; pp != nil {
		strength := models.Config(utils.CamelCaseKeys(pp.Strength))
		delete(strength, fieldHref)
		fragment["passwordPolicy"] = strength

		reset := pp.ResetEmailStatus == models.StatusEnabled
		utils.SetPath(fragment, "web*forgotPassword*enabled", reset)
		utils.SetPath(fragment, "web*changePassword*enabled", reset)
	}

	if ap := dir.AccountCreationPolicy; ap != nil {
		utils.SetPath(fragment, "web*verifyEmail*enabled", ap.VerificationEmailStatus == models.StatusEnabled)
	}

	return fragment
}
