package soap_test

import (
	"testing"

	"catalog-bridge/core/soap"

	"github.com/stretchr/testify/assert"
)

func TestEnvelope(t *testing.T) {
	cfg := soap.Config{
		Username:   "user",
		Password:   "p<ss",
		Company:    "7",
		WebService: "3",
	}

	t.Run("NoParams", func(t *testing.T) {
		env := soap.Envelope(cfg, "tok-123", "AuthenticateUser")

		assert.Contains(t, env, `<soap12:Envelope`)
		assert.Contains(t, env, "<pUsername>user</pUsername>")
		assert.Contains(t, env, "<pPassword>p&lt;ss</pPassword>")
		assert.Contains(t, env, "<pCompany>7</pCompany>")
		assert.Contains(t, env, "<pWebService>3</pWebService>")
		assert.Contains(t, env, "<pAuthenticatedToken>tok-123</pAuthenticatedToken>")
		assert.Contains(t, env, `<AuthenticateUser xmlns="http://microsoft.com/webservices/" />`)
	})

	t.Run("WithParams", func(t *testing.T) {
		env := soap.Envelope(cfg, "tok-123", "ItemImages_funGetXMLData",
			soap.Param{Name: "intItemId", Value: "42"})

		assert.Contains(t, env, `<ItemImages_funGetXMLData xmlns="http://microsoft.com/webservices/">`)
		assert.Contains(t, env, "<intItemId>42</intItemId>")
		assert.Contains(t, env, "</ItemImages_funGetXMLData>")
	})
}
