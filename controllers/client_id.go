package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	clientIDHeader = "X-Client-ID"
	clientIDCookie = "khazaana_client"

	clientCookieMaxAge = 180 * 24 * 60 * 60
)

// clientID resolves the caller's storefront identity: explicit header first,
// then cookie, otherwise a fresh id is minted and set as a cookie. Carts and
// order history are keyed on it.
func clientID(c *gin.Context) string {
	if id := c.GetHeader(clientIDHeader); id != "" {
		return id
	}
	if id, err := c.Cookie(clientIDCookie); err == nil && id != "" {
		return id
	}

	id := uuid.NewString()
	c.SetCookie(clientIDCookie, id, clientCookieMaxAge, "/", "", false, true)
	return id
}
