// Package configs reads herald settings from the environment.
//
// Settings are plain environment variables, so any process manager or shell
// profile can set them:
//
//   - HERALD_SILENT: suppress all output (bool)
//   - HERALD_UPPERCASE: upper-case header text (bool)
//   - HERALD_CAPITALIZE: title-case header text (bool)
//   - HERALD_MODE: "highlight" or "flat"
//   - HERALD_IDENTIFIER: overrides the derived identifier
//   - HERALD_NAME: overrides the formal name (the informal name follows it)
//
// Unset variables leave the corresponding value alone. LoadSettings takes
// the lookup function as a parameter so tests never touch the real
// environment:
//
//	settings, err := configs.LoadSettings(os.LookupEnv)
//	id := settings.Apply(identity.FromEnvironment())
package configs
