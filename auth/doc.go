// Package auth is the facade over the authentication primitives shared
// by Imbi services: Argon2id password hashing (auth/password), HMAC JWT
// access and refresh tokens (auth/jwt), and authenticated encryption of
// tokens at rest (encryption), all configured from the settings
// package.
//
// Typical startup:
//
//	svc, err := auth.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//	hash, _ := svc.HashPassword(req.Password)
//	token, _ := svc.CreateAccessToken(userID, nil)
package auth
