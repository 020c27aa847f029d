package config

type Secret string

func (s Secret) Reveal() string { return string(s) }

func (s Secret) String() string { return "[REDACTED]" }

func check(s Secret) bool { return s.Reveal() != "" }
