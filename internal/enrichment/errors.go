package enrichment

const (
	MsgClientUnavailable     = "Unable to create a Stormpath client."
	MsgApplicationEmpty      = "Application cannot be empty."
	MsgApplicationHrefFormat = "Application HREF %q is not a valid Stormpath Application HREF."
	MsgNameOrHrefRequired    = "You must specify application name or href."
	MsgUnresolvedApplication = "Unable to resolve a Stormpath application."
	MsgGoogleSettings        = "You must define your Google app settings."
	MsgFacebookSettings      = "You must define your Facebook app settings."
	MsgNoDefaultAccountStore = "No default account store is mapped to the specified application. " +
		"A default account store is required for registration."
	MsgAutoLoginVerifyEmail = "Invalid configuration: stormpath.web.register.autoLogin is true, " +
		"but the default account store of the specified application has the email verification " +
		"workflow enabled. Auto login is only possible if email verification is disabled. " +
		"Please disable this workflow on this application's default account store."
	MsgCookieEmpty        = "Cookie settings cannot be empty."
	MsgCookieDomainType   = "Cookie domain must be a string."
	MsgCookieDurationType = "Cookie duration must be a duration."
)
