package client

import "github.com/Totarae/akamai-purge/internal/config"

func Sign(s config.Secret) string { return s.Reveal() }
