// Package settings resolves the layered configuration shared by Imbi
// services: a TOML config file, an optional .env file, and
// IMBI_-prefixed environment variables, with environment winning over
// the file and documented defaults filling the rest.
//
// Missing secrets (auth.jwt_secret, auth.encryption_key) are generated
// once per process with 256 bits of entropy. Credentials embedded in
// database URLs are extracted into the user/password fields and
// stripped from the URL.
//
// Most services call Get once at startup:
//
//	cfg, err := settings.Get()
//	if err != nil {
//		log.Fatal(err)
//	}
//	svc, err := auth.New(&cfg.Auth)
package settings
