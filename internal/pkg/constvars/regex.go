package constvars

const (
	RegexHexadecimal    = `^[0-9a-fA-F]+$`
	RegexHyphenatedUUID = `^[0-9a-fA-F-]{36}$`
)
