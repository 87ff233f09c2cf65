package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Gallery.PageSize < 1 {
		return fmt.Errorf("gallery.page_size must be >= 1 (got %d)", c.Gallery.PageSize)
	}

	if c.Mailer.Enabled {
		if err := c.Mailer.validate(); err != nil {
			return fmt.Errorf("mailer: %w", err)
		}
	}

	return nil
}

func (m *MailerConfig) validate() error {
	if m.ServiceID == "" {
		return fmt.Errorf("service_id is required when mailer is enabled")
	}
	if m.TemplateID == "" {
		return fmt.Errorf("template_id is required when mailer is enabled")
	}
	if m.PublicKey == "" {
		return fmt.Errorf("public_key is required when mailer is enabled")
	}
	if m.AdminEmail == "" {
		return fmt.Errorf("admin_email is required when mailer is enabled")
	}
	return nil
}
