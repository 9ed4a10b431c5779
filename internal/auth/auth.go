package auth

import (
	"encoding/base64"
	"errors"
	"net/http"
	"unicode/utf8"
)

// ErrInvalidCredentials is returned when username:apiKey is not valid UTF-8.
var ErrInvalidCredentials = errors.New("credentials are not valid UTF-8")

// BasicToken returns base64("username:apiKey") as carried in a Basic
// Authorization header.
func BasicToken(username, apiKey string) (string, error) {
	pair := username + ":" + apiKey
	if !utf8.ValidString(pair) {
		return "", ErrInvalidCredentials
	}
	return base64.StdEncoding.EncodeToString([]byte(pair)), nil
}

// Header builds the request header for the websocket upgrade.
func Header(username, apiKey string) (http.Header, error) {
	token, err := BasicToken(username, apiKey)
	if err != nil {
		return nil, err
	}
	h := http.Header{}
	h.Set("Authorization", "Basic "+token)
	return h, nil
}
