package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"tcmshop_backend/platform/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// clientAckEmailData feeds the branded acknowledgement template.
type clientAckEmailData struct {
	BrandName    string
	BrandTag     string
	BrandPrimary string
	LogoURL      string
	SiteURL      string
	Address      string
	ContactEmail string
	Name         string
	Email        string
	QueryType    string
	Message      string
	Year         int
}

func renderClientAckHTML(lead LeadNotification, brand config.BrandConfig) (string, error) {
	name := lead.Name
	if name == "" {
		name = "there"
	}

	data := clientAckEmailData{
		BrandName:    brand.GetBrandName(),
		BrandTag:     brand.GetBrandTag(),
		BrandPrimary: brand.GetBrandPrimary(),
		LogoURL:      brand.GetLogoURL(),
		SiteURL:      brand.GetSiteURL(),
		Address:      brand.GetAddress(),
		ContactEmail: brand.GetContactEmail(),
		Name:         name,
		Email:        lead.Email,
		QueryType:    lead.QueryType,
		Message:      lead.Message,
		Year:         time.Now().Year(),
	}

	tmpl, err := template.ParseFS(templateFS, "templates/lead_ack.html")
	if err != nil {
		return "", fmt.Errorf("parse email template lead_ack.html: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template lead_ack.html: %w", err)
	}
	return buf.String(), nil
}
