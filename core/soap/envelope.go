package soap

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// Namespace is the XML namespace of every Nucleo web-service action.
const Namespace = "http://microsoft.com/webservices/"

// Param is a child element of the action body, e.g. intItemId.
type Param struct {
	Name  string
	Value string
}

// Envelope renders the SOAP 1.2 request envelope for an action. The header
// carries the account credentials and the session token; the body is the
// action element with optional parameters.
func Envelope(cfg Config, token, action string, params ...Param) string {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	b.WriteString(`<soap12:Envelope xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"` + "\n")
	b.WriteString(`                 xmlns:xsd="http://www.w3.org/2001/XMLSchema"` + "\n")
	b.WriteString(`                 xmlns:soap12="http://www.w3.org/2003/05/soap-envelope">` + "\n")
	b.WriteString("  <soap12:Header>\n")
	b.WriteString(`    <wsBasicQueryHeader xmlns="` + Namespace + `">` + "\n")
	writeElem(&b, "pUsername", cfg.Username)
	writeElem(&b, "pPassword", cfg.Password)
	writeElem(&b, "pCompany", cfg.Company)
	writeElem(&b, "pWebService", cfg.WebService)
	writeElem(&b, "pAuthenticatedToken", token)
	b.WriteString("    </wsBasicQueryHeader>\n")
	b.WriteString("  </soap12:Header>\n")
	b.WriteString("  <soap12:Body>\n")
	if len(params) == 0 {
		b.WriteString(`    <` + action + ` xmlns="` + Namespace + `" />` + "\n")
	} else {
		b.WriteString(`    <` + action + ` xmlns="` + Namespace + `">` + "\n")
		for _, p := range params {
			b.WriteString("      <" + p.Name + ">" + escape(p.Value) + "</" + p.Name + ">\n")
		}
		b.WriteString("    </" + action + ">\n")
	}
	b.WriteString("  </soap12:Body>\n")
	b.WriteString("</soap12:Envelope>")

	return b.String()
}

func writeElem(b *strings.Builder, name, value string) {
	b.WriteString("      <" + name + ">" + escape(value) + "</" + name + ">\n")
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
